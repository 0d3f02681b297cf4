package models

import (
	"github.com/google/uuid"
)

// CompanyAdministrator grants a user administrative rights over a company.
// Created once, alongside the default company provisioned at signup.
type CompanyAdministrator struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_company_admins_user_company"`
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;uniqueIndex:idx_company_admins_user_company"`
}

// TableName returns the table name for CompanyAdministrator
func (CompanyAdministrator) TableName() string {
	return "company_administrators"
}
