package models

import (
	"github.com/google/uuid"
)

// IdentityProvider is the name of a supported federated identity provider.
type IdentityProvider string

const (
	ProviderGoogle IdentityProvider = "google"
)

// SupportedProvider reports whether the given provider name is known.
func SupportedProvider(name string) bool {
	return IdentityProvider(name) == ProviderGoogle
}

// UserIdentity links a user to an external identity-provider account.
// One row per (provider, external id) pair instead of a column per provider,
// so adding a provider does not change the users table.
type UserIdentity struct {
	BaseModel
	UserID     uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index"`
	Provider   IdentityProvider `json:"provider" gorm:"type:varchar(50);not null;uniqueIndex:idx_identities_provider_external_id" validate:"required"`
	ExternalID string           `json:"external_id" gorm:"not null;size:255;uniqueIndex:idx_identities_provider_external_id" validate:"required,max=255"`
}

// TableName returns the table name for UserIdentity
func (UserIdentity) TableName() string {
	return "user_identities"
}
