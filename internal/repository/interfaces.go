package repository

import (
	"time"

	"company-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateCurrentSignInAt(id uuid.UUID, at time.Time) error
	Delete(id uuid.UUID) error
}

// UserIdentityRepositoryInterface defines the interface for user identity repository operations
type UserIdentityRepositoryInterface interface {
	Create(identity *models.UserIdentity) error
	GetByProviderExternalID(provider models.IdentityProvider, externalID string) (*models.UserIdentity, error)
	GetByUserID(userID uuid.UUID) ([]models.UserIdentity, error)
}

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uuid.UUID) (*models.Company, error)
	GetAdministratorsByUserID(userID uuid.UUID) ([]models.CompanyAdministrator, error)
}

// InviteLinkRepositoryInterface defines the interface for invite link repository operations
type InviteLinkRepositoryInterface interface {
	Create(link *models.CompanyInviteLink) error
	GetByToken(token string) (*models.CompanyInviteLink, error)
}

// OtpChallengeRepositoryInterface defines the interface for OTP challenge repository operations
type OtpChallengeRepositoryInterface interface {
	Create(challenge *models.OtpChallenge) error
	GetLatestActiveByUserID(userID uuid.UUID) (*models.OtpChallenge, error)
	IncrementAttempts(id uuid.UUID) error
	Consume(id uuid.UUID, at time.Time) error
	DeleteByUserID(userID uuid.UUID) error
}

// TosAgreementRepositoryInterface defines the interface for TOS agreement repository operations
type TosAgreementRepositoryInterface interface {
	Create(agreement *models.TosAgreement) error
	GetByUserID(userID uuid.UUID) ([]models.TosAgreement, error)
}
