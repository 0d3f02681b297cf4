package models

import (
	"github.com/google/uuid"
)

// TosAgreement is immutable evidence that a user accepted the terms of
// service. One row is appended per completed signup; rows are never updated
// or deleted.
type TosAgreement struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	IPAddress string    `json:"ip_address" gorm:"not null;size:45" validate:"required,max=45"`
}

// TableName returns the table name for TosAgreement
func (TosAgreement) TableName() string {
	return "tos_agreements"
}
