package models

import (
	"github.com/google/uuid"
)

// CompanyInviteLink is a token-identified invitation into an existing
// company. The signup flow only reads these; creation and rotation happen
// elsewhere.
type CompanyInviteLink struct {
	BaseModel
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	Token     string    `json:"token" gorm:"uniqueIndex;not null;size:64" validate:"required,max=64"`

	Company *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for CompanyInviteLink
func (CompanyInviteLink) TableName() string {
	return "company_invite_links"
}
