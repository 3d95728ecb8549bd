package services

import (
	"strings"
	"time"

	"haulhub/internal/domain"
	"haulhub/internal/domain/models"
	"haulhub/internal/projection"
	"haulhub/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	UserRepo  repositories.UserRepository
	JWTSecret []byte
	TokenTTL  time.Duration
}

type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login verifies credentials against the stored bcrypt hash and issues a
// signed token carrying the user's role for downstream projection.
func (s UserService) Login(login, password string) (LoginResult, error) {
	u, err := s.UserRepo.GetByLogin(strings.TrimSpace(login))
	if err != nil {
		if domain.IsNotFound(err) {
			return LoginResult{}, domain.ValidationError{Msg: "invalid login or password"}
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, domain.ValidationError{Msg: "invalid login or password"}
	}

	ttl := s.TokenTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"role":    u.Role,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return LoginResult{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}

	return LoginResult{Token: signed, User: u}, nil
}

type RegisterInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates an account. Role defaults to Driver and must parse to a
// known role; admins are created through the user-admin surface, not here.
func (s UserService) Register(in RegisterInput) (models.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)
	if in.Email == "" || in.Username == "" {
		return models.User{}, domain.ValidationError{Field: "username", Msg: "email and username are required"}
	}
	if len(in.Password) < 8 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "must be at least 8 characters"}
	}

	role := projection.ParseRole(in.Role)
	if role == projection.RoleUnknown {
		role = projection.RoleDriver
	}
	if role == projection.RoleAdmin {
		return models.User{}, domain.ForbiddenError{Msg: "admin accounts cannot self-register"}
	}

	exists, err := s.UserRepo.ExistsByLogin(in.Email, in.Username)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "email or username already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	u := models.User{
		Name:         strings.TrimSpace(in.Name),
		Username:     in.Username,
		Email:        in.Email,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         role.String(),
		Status:       "active",
		PasswordHash: string(hash),
	}
	id, err := s.UserRepo.Insert(u)
	if err != nil {
		return models.User{}, err
	}
	u.ID = id
	return u, nil
}

// SetRole lets an admin change a user's role. The new role must parse; the
// fail-closed Unknown role is not assignable.
func (s UserService) SetRole(id int64, role, status string) error {
	parsed := projection.ParseRole(role)
	if parsed == projection.RoleUnknown {
		return domain.ValidationError{Field: "role", Msg: "unknown role"}
	}
	if strings.TrimSpace(status) == "" {
		status = "active"
	}
	return s.UserRepo.UpdateRoleStatus(id, parsed.String(), status)
}
