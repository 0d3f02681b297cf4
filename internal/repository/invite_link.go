package repository

import (
	"company-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// InviteLinkRepository handles database operations for company invite links
type InviteLinkRepository struct {
	db *gorm.DB
}

// NewInviteLinkRepository creates a new invite link repository
func NewInviteLinkRepository(db *gorm.DB) *InviteLinkRepository {
	return &InviteLinkRepository{db: db}
}

// Create creates a new invite link
func (r *InviteLinkRepository) Create(link *models.CompanyInviteLink) error {
	return r.db.Create(link).Error
}

// GetByToken retrieves an invite link by its opaque token
func (r *InviteLinkRepository) GetByToken(token string) (*models.CompanyInviteLink, error) {
	var link models.CompanyInviteLink
	err := r.db.First(&link, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}
