package repository

import (
	"company-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserIdentityRepository handles database operations for federated identities
type UserIdentityRepository struct {
	db *gorm.DB
}

// NewUserIdentityRepository creates a new user identity repository
func NewUserIdentityRepository(db *gorm.DB) *UserIdentityRepository {
	return &UserIdentityRepository{db: db}
}

// Create creates a new identity link
func (r *UserIdentityRepository) Create(identity *models.UserIdentity) error {
	return r.db.Create(identity).Error
}

// GetByProviderExternalID retrieves an identity by its (provider, external id) pair
func (r *UserIdentityRepository) GetByProviderExternalID(provider models.IdentityProvider, externalID string) (*models.UserIdentity, error) {
	var identity models.UserIdentity
	err := r.db.First(&identity, "provider = ? AND external_id = ?", provider, externalID).Error
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

// GetByUserID retrieves all identities linked to a user
func (r *UserIdentityRepository) GetByUserID(userID uuid.UUID) ([]models.UserIdentity, error) {
	var identities []models.UserIdentity
	err := r.db.Where("user_id = ?", userID).Find(&identities).Error
	if err != nil {
		return nil, err
	}
	return identities, nil
}
