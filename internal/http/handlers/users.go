package handlers

import (
	"net/http"
	"strconv"

	"haulhub/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/users
func GetUsers(c *gin.Context) {
	users, err := repositories.UserRepository{}.List(c.Query("role"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid id")
		return
	}
	u, err := repositories.UserRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type updateUserRequest struct {
	Role   string `json:"role"`
	Status string `json:"status"`
}

// PUT /api/users/:id — admin role/status management.
func UpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid id")
		return
	}

	var req updateUserRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := userService().SetRole(id, req.Role, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid id")
		return
	}
	if err := (repositories.UserRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
