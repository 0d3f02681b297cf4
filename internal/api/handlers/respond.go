package handlers

import (
	"errors"
	"net/http"

	"company-portal-backend/internal/database/models"
	apperrors "company-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// userPayload is the user shape returned on successful login or signup
type userPayload struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	LegalName     string `json:"legal_name"`
	PreferredName string `json:"preferred_name"`
}

func toUserPayload(user *models.User) userPayload {
	return userPayload{
		ID:            user.ID.String(),
		Email:         user.Email,
		Name:          user.Name,
		LegalName:     user.LegalName,
		PreferredName: user.PreferredName,
	}
}

// sessionResponse is the success envelope for login and signup endpoints
type sessionResponse struct {
	User userPayload `json:"user"`
	JWT  string      `json:"jwt"`
}

// respondError maps the domain error taxonomy onto HTTP statuses
func respondError(c *gin.Context, err error) {
	var rateErr *apperrors.RateLimitError
	var validationErr *apperrors.ValidationError

	switch {
	case errors.As(err, &rateErr):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":               rateErr.Message,
			"retry_after_seconds": int(rateErr.RetryAfter.Seconds()) + 1,
		})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": validationErr.Error(),
			"field": validationErr.Field,
		})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists. Please log in instead."})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnsupportedProvider):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
