package service

import (
	"company-portal-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OTPServiceInterface defines the interface for the OTP challenge service
type OTPServiceInterface interface {
	Start(email string) (*models.User, error)
	Verify(email, code string) (*models.User, error)
}

// IdentityServiceInterface defines the interface for resolving inbound
// identity assertions to existing accounts
type IdentityServiceInterface interface {
	ResolveOTP(email string) (*models.User, error)
	ResolveFederated(email string, provider models.IdentityProvider, externalID string) (*models.User, error)
}

// InviteServiceInterface defines the interface for invite token resolution
type InviteServiceInterface interface {
	ResolveToken(token string) (*models.Company, error)
}

// SignupServiceInterface defines the interface for the signup completion
// workflow
type SignupServiceInterface interface {
	Complete(user *models.User, ipAddress string, invite *models.Company) (*models.User, error)
}

// SessionIssuer produces a session credential for a completed user. The
// issuing mechanics live in internal/auth; services only depend on this
// contract.
type SessionIssuer interface {
	IssueSession(user *models.User) (string, error)
}

// Mailer delivers OTP codes out-of-band. Delivery mechanics are outside this
// service's scope.
type Mailer interface {
	SendOTPCode(email, code string) error
}
