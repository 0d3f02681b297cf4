package handlers

import (
	"net/http"

	"company-portal-backend/internal/auth"
	"company-portal-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles session-protected user endpoints
type UserHandler struct {
	users repository.UserRepositoryInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(users repository.UserRepositoryInterface) *UserHandler {
	return &UserHandler{users: users}
}

// GetCurrentUser handles GET /internal/current_user
// @Summary Return the user for the presented session token
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "Current user"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Security BearerAuth
// @Router /internal/current_user [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	claims, ok := auth.GetSessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session subject"})
		return
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserPayload(user)})
}
