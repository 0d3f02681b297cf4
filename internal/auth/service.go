package auth

import (
	"fmt"
	"time"

	"company-portal-backend/internal/database/models"
	apperrors "company-portal-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Service issues and validates session JWTs. It implements the
// service.SessionIssuer contract for the signup workflow.
type Service struct {
	config *AuthConfig
	google *GoogleClient
}

// SessionClaims represents JWT session token claims
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// NewService creates a new authentication service
func NewService(config *AuthConfig) (*Service, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &Service{
		config: config,
		google: NewGoogleClient(&config.Google, config.RedirectURL),
	}, nil
}

// IssueSession creates a session JWT for a completed user
func (s *Service) IssueSession(user *models.User) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.JWTIssuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateSession validates and parses a session JWT
func (s *Service) ValidateSession(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// GoogleClient returns the configured Google OAuth client
func (s *Service) GoogleClient() *GoogleClient {
	return s.google
}
