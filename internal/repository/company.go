package repository

import (
	"company-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies and their
// administrator links
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetAdministratorsByUserID retrieves all administrator links for a user
func (r *CompanyRepository) GetAdministratorsByUserID(userID uuid.UUID) ([]models.CompanyAdministrator, error) {
	var admins []models.CompanyAdministrator
	err := r.db.Where("user_id = ?", userID).Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}
