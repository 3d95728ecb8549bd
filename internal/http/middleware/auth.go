package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"haulhub/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey   = "userId"
	userRoleKey = "userRole"
)

// JWTAuth validates the bearer token and stores user id + role on the
// context for handlers and the role projection.
func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		if v, ok := claims["user_id"]; ok {
			switch id := v.(type) {
			case float64:
				c.Set(userIDKey, int64(id))
			case string:
				c.Set(userIDKey, id)
			}
		}
		if role, ok := claims["role"].(string); ok {
			c.Set(userRoleKey, role)
		}

		c.Next()
	}
}

// GetUserRole returns the role string the auth middleware stored, empty when
// the request is unauthenticated.
func GetUserRole(c *gin.Context) string {
	return c.GetString(userRoleKey)
}

// RequestContext builds the domain-level actor info from the gin context.
func RequestContext(c *gin.Context) domain.RequestContext {
	ctx := domain.RequestContext{Role: GetUserRole(c)}
	if v, ok := c.Get(userIDKey); ok {
		switch id := v.(type) {
		case string:
			ctx.UserID = id
		case int64:
			ctx.UserID = strconv.FormatInt(id, 10)
		}
	}
	return ctx
}
