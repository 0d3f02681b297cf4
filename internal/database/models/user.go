package models

import (
	"time"
)

// User represents a login identity. A user with a nil ConfirmedAt is a
// pending signup awaiting OTP verification; a non-nil ConfirmedAt marks an
// active account.
type User struct {
	BaseModel
	Email                 string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name                  string     `json:"name" gorm:"size:100" validate:"max=100"`
	LegalName             string     `json:"legal_name" gorm:"size:200" validate:"max=200"`
	PreferredName         string     `json:"preferred_name" gorm:"size:100" validate:"max=100"`
	ConfirmedAt           *time.Time `json:"confirmed_at"`
	InvitationAcceptedAt  *time.Time `json:"invitation_accepted_at"`
	CurrentSignInAt       *time.Time `json:"current_sign_in_at"`

	// Relationships
	Identities    []UserIdentity `json:"identities,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	TosAgreements []TosAgreement `json:"tos_agreements,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsConfirmed reports whether the user completed signup.
func (u *User) IsConfirmed() bool {
	return u.ConfirmedAt != nil
}
