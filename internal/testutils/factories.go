package testutils

import (
	"fmt"
	"time"

	"company-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a pending (unconfirmed) test User with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:         fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		Name:          "Test User",
		LegalName:     "Test User Legal",
		PreferredName: "Tester",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Confirmed creates a user that has completed signup
func (f *UserFactory) Confirmed() *models.User {
	user := f.Create()
	now := time.Now().UTC()
	user.ConfirmedAt = &now
	user.InvitationAcceptedAt = &now
	user.CurrentSignInAt = &now
	return user
}

// ConfirmedWithEmail creates a confirmed user with a custom email
func (f *UserFactory) ConfirmedWithEmail(email string) *models.User {
	user := f.Confirmed()
	user.Email = email
	return user
}

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	id := uuid.New()
	return &models.Company{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:           fmt.Sprintf("company-%s@test.com", id.String()[:8]),
		CountryCode:     models.DefaultCompanyCountryCode,
		DefaultCurrency: models.DefaultCompanyCurrency,
	}
}

// WithEmail sets a custom email for the company
func (f *CompanyFactory) WithEmail(email string) *models.Company {
	company := f.Create()
	company.Email = email
	return company
}

// InviteLinkFactory provides methods to create test CompanyInviteLink data
type InviteLinkFactory struct{}

// NewInviteLinkFactory creates a new InviteLinkFactory
func NewInviteLinkFactory() *InviteLinkFactory {
	return &InviteLinkFactory{}
}

// Create creates a test invite link for the given company
func (f *InviteLinkFactory) Create(companyID uuid.UUID) *models.CompanyInviteLink {
	return &models.CompanyInviteLink{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: companyID,
		Token:     ulid.Make().String(),
	}
}

// WithToken sets a custom token for the invite link
func (f *InviteLinkFactory) WithToken(companyID uuid.UUID, token string) *models.CompanyInviteLink {
	link := f.Create(companyID)
	link.Token = token
	return link
}

// OtpChallengeFactory provides methods to create test OtpChallenge data
type OtpChallengeFactory struct{}

// NewOtpChallengeFactory creates a new OtpChallengeFactory
func NewOtpChallengeFactory() *OtpChallengeFactory {
	return &OtpChallengeFactory{}
}

// Create creates an active test challenge for the given user
func (f *OtpChallengeFactory) Create(userID uuid.UUID) *models.OtpChallenge {
	return &models.OtpChallenge{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:    userID,
		Code:      "123456",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
}

// WithCode sets a custom code for the challenge
func (f *OtpChallengeFactory) WithCode(userID uuid.UUID, code string) *models.OtpChallenge {
	challenge := f.Create(userID)
	challenge.Code = code
	return challenge
}

// Expired creates a challenge whose code can no longer be verified
func (f *OtpChallengeFactory) Expired(userID uuid.UUID) *models.OtpChallenge {
	challenge := f.Create(userID)
	challenge.ExpiresAt = time.Now().Add(-time.Minute)
	return challenge
}

// IdentityFactory provides methods to create test UserIdentity data
type IdentityFactory struct{}

// NewIdentityFactory creates a new IdentityFactory
func NewIdentityFactory() *IdentityFactory {
	return &IdentityFactory{}
}

// Create creates a test identity mapping for the given user
func (f *IdentityFactory) Create(userID uuid.UUID) *models.UserIdentity {
	id := uuid.New()
	return &models.UserIdentity{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:     userID,
		Provider:   models.ProviderGoogle,
		ExternalID: "ext-" + id.String()[:8],
	}
}

// WithExternalID sets a custom external id for the identity
func (f *IdentityFactory) WithExternalID(userID uuid.UUID, externalID string) *models.UserIdentity {
	identity := f.Create(userID)
	identity.ExternalID = externalID
	return identity
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Company      *CompanyFactory
	InviteLink   *InviteLinkFactory
	OtpChallenge *OtpChallengeFactory
	Identity     *IdentityFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Company:      NewCompanyFactory(),
		InviteLink:   NewInviteLinkFactory(),
		OtpChallenge: NewOtpChallengeFactory(),
		Identity:     NewIdentityFactory(),
	}
}
