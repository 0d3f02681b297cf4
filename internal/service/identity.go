package service

import (
	"errors"
	"fmt"
	"time"

	"company-portal-backend/internal/database/models"
	"company-portal-backend/internal/logger"
	"company-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// IdentityService maps inbound identity assertions (an OTP-confirmed email,
// or a provider + external id pair) to at most one existing account.
type IdentityService struct {
	users      repository.UserRepositoryInterface
	identities repository.UserIdentityRepositoryInterface
}

// NewIdentityService creates a new identity service
func NewIdentityService(users repository.UserRepositoryInterface, identities repository.UserIdentityRepositoryInterface) *IdentityService {
	return &IdentityService{
		users:      users,
		identities: identities,
	}
}

// ResolveOTP looks up an account by email. Returns (nil, nil) for a new
// identity. On a match the sign-in timestamp is bumped.
func (s *IdentityService) ResolveOTP(email string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	if err := s.touchSignIn(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResolveFederated looks up an account first by (provider, external id),
// falling back to a plain email match. The fallback handles a user who
// signed up via OTP and now logs in through a provider for the first time:
// the accounts merge by email and the external id is attached.
func (s *IdentityService) ResolveFederated(email string, provider models.IdentityProvider, externalID string) (*models.User, error) {
	identity, err := s.identities.GetByProviderExternalID(provider, externalID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}

	if identity != nil {
		user, err := s.users.GetByID(identity.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load user for identity: %w", err)
		}
		if err := s.touchSignIn(user); err != nil {
			return nil, err
		}
		return user, nil
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	if err := s.attachIdentity(user, provider, externalID); err != nil {
		return nil, err
	}
	if err := s.touchSignIn(user); err != nil {
		return nil, err
	}
	return user, nil
}

// attachIdentity links the external id to an email-matched account. A
// duplicate-key failure means a concurrent login already attached it.
func (s *IdentityService) attachIdentity(user *models.User, provider models.IdentityProvider, externalID string) error {
	err := s.identities.Create(&models.UserIdentity{
		UserID:     user.ID,
		Provider:   provider,
		ExternalID: externalID,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.WithEmail(user.Email).WithField("provider", provider).
				Debug("identity already attached by concurrent login")
			return nil
		}
		return fmt.Errorf("failed to attach identity: %w", err)
	}
	return nil
}

// touchSignIn is a lightweight single-column write, independent of the
// signup transaction.
func (s *IdentityService) touchSignIn(user *models.User) error {
	now := time.Now().UTC()
	if err := s.users.UpdateCurrentSignInAt(user.ID, now); err != nil {
		return fmt.Errorf("failed to update sign-in timestamp: %w", err)
	}
	user.CurrentSignInAt = &now
	return nil
}
