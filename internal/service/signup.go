package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"company-portal-backend/internal/database/models"
	apperrors "company-portal-backend/internal/errors"
	"company-portal-backend/internal/logger"
	"company-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SignupService performs the atomic onboarding transaction that turns a
// pending or freshly-built user into an active one.
type SignupService struct {
	db        *gorm.DB
	validator *validator.Validate
}

// NewSignupService creates a new signup service
func NewSignupService(db *gorm.DB, validator *validator.Validate) *SignupService {
	return &SignupService{
		db:        db,
		validator: validator,
	}
}

// Complete finalizes a signup in a single transaction: stamp the user's
// confirmation, consent and sign-in timestamps, persist the user, append a
// TOS agreement attributed to ipAddress, and, when no invited company was
// supplied, provision a default company with an administrator link. Any
// failure rolls the whole transaction back; callers never observe a
// confirmed user without a consent row or vice versa.
//
// Not idempotent: every invocation appends a consent row. Callers short-
// circuit to plain login for already-active accounts so this is only reached
// once per account.
func (s *SignupService) Complete(user *models.User, ipAddress string, invite *models.Company) (*models.User, error) {
	now := time.Now().UTC()
	user.ConfirmedAt = &now
	user.InvitationAcceptedAt = &now
	user.CurrentSignInAt = &now
	user.Email = repository.NormalizeEmail(user.Email)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.validator.Struct(user); err != nil {
			return asValidationError(err)
		}

		if err := tx.Omit(clause.Associations).Save(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateIdentity
			}
			return fmt.Errorf("failed to persist user: %w", err)
		}

		// Identity rows are inserted explicitly rather than through
		// association save, which would swallow unique-key conflicts.
		// Federated first signups arrive with the provider link populated.
		for i := range user.Identities {
			user.Identities[i].UserID = user.ID
			if err := tx.Create(&user.Identities[i]).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperrors.ErrDuplicateIdentity
				}
				return fmt.Errorf("failed to attach identity: %w", err)
			}
		}

		agreement := &models.TosAgreement{UserID: user.ID, IPAddress: ipAddress}
		if err := tx.Create(agreement).Error; err != nil {
			return fmt.Errorf("failed to record TOS agreement: %w", err)
		}

		if invite == nil {
			company := &models.Company{
				Email:           user.Email,
				CountryCode:     models.DefaultCompanyCountryCode,
				DefaultCurrency: models.DefaultCompanyCurrency,
			}
			if err := tx.Create(company).Error; err != nil {
				return fmt.Errorf("failed to create default company: %w", err)
			}

			admin := &models.CompanyAdministrator{UserID: user.ID, CompanyID: company.ID}
			if err := tx.Create(admin).Error; err != nil {
				return fmt.Errorf("failed to create company administrator: %w", err)
			}
		}
		// With an invited company, membership arrives through the separate
		// invitation-acceptance flow; no administrator link is created here.

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithEmail(user.Email).WithField("invited", invite != nil).Info("signup completed")
	return user, nil
}

// asValidationError converts validator failures into the field-level
// ValidationError surfaced to callers.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.NewValidationError(strings.ToLower(fe.Field()), fmt.Sprintf("failed %s validation", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}
