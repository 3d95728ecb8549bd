package domain

// RequestContext carries authenticated user info resolved by the auth middleware.
type RequestContext struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}
