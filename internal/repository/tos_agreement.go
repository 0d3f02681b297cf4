package repository

import (
	"company-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TosAgreementRepository handles database operations for TOS agreements
type TosAgreementRepository struct {
	db *gorm.DB
}

// NewTosAgreementRepository creates a new TOS agreement repository
func NewTosAgreementRepository(db *gorm.DB) *TosAgreementRepository {
	return &TosAgreementRepository{db: db}
}

// Create appends a new agreement row
func (r *TosAgreementRepository) Create(agreement *models.TosAgreement) error {
	return r.db.Create(agreement).Error
}

// GetByUserID retrieves all agreements recorded for a user, oldest first
func (r *TosAgreementRepository) GetByUserID(userID uuid.UUID) ([]models.TosAgreement, error) {
	var agreements []models.TosAgreement
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&agreements).Error
	if err != nil {
		return nil, err
	}
	return agreements, nil
}
