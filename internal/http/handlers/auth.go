package handlers

import (
	"net/http"
	"time"

	intconfig "haulhub/internal/config"
	"haulhub/internal/domain"
	"haulhub/internal/repositories"
	"haulhub/internal/services"
	"haulhub/internal/utils"

	"github.com/gin-gonic/gin"
)

var env intconfig.Env

// Init stores the environment handlers need (JWT secret, token TTL).
func Init(e intconfig.Env) {
	env = e
}

func userService() services.UserService {
	return services.UserService{
		UserRepo:  repositories.UserRepository{},
		JWTSecret: []byte(env.JWTSecret),
		TokenTTL:  time.Duration(env.JWTTTLHours) * time.Hour,
	}
}

type loginRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	login := utils.FirstNonEmpty(req.Login, req.Email)

	res, err := userService().Login(login, req.Password)
	if err != nil {
		if domain.IsValidation(err) {
			respondError(c, http.StatusUnauthorized, "unauthorized", "invalid login or password")
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": res.Token, "user": res.User})
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}

	u, err := userService().Register(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "registered", "user": u})
}
