//go:build integration
// +build integration

package service_test

import (
	"testing"
	"time"

	"company-portal-backend/internal/database/models"
	apperrors "company-portal-backend/internal/errors"
	"company-portal-backend/internal/repository"
	"company-portal-backend/internal/service"
	"company-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// captureMailer records issued codes instead of delivering them
type captureMailer struct {
	lastEmail string
	lastCode  string
}

func (m *captureMailer) SendOTPCode(email, code string) error {
	m.lastEmail = email
	m.lastCode = code
	return nil
}

// SignupFlowTestSuite exercises the full signup flows against a real
// Postgres schema
type SignupFlowTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet

	users      *repository.UserRepository
	identities *repository.UserIdentityRepository
	companies  *repository.CompanyRepository
	links      *repository.InviteLinkRepository
	challenges *repository.OtpChallengeRepository
	agreements *repository.TosAgreementRepository

	mailer   *captureMailer
	otp      *service.OTPService
	identity *service.IdentityService
	invites  *service.InviteService
	signup   *service.SignupService
}

func (suite *SignupFlowTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	db := suite.baseTestSuite.DB
	suite.users = repository.NewUserRepository(db)
	suite.identities = repository.NewUserIdentityRepository(db)
	suite.companies = repository.NewCompanyRepository(db)
	suite.links = repository.NewInviteLinkRepository(db)
	suite.challenges = repository.NewOtpChallengeRepository(db)
	suite.agreements = repository.NewTosAgreementRepository(db)
}

func (suite *SignupFlowTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *SignupFlowTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.mailer = &captureMailer{}
	suite.otp = service.NewOTPService(suite.users, suite.challenges, suite.mailer, service.OTPConfig{
		CodeTTL:        10 * time.Minute,
		ResendCooldown: 0, // no cooldown so tests can resend freely
		MaxAttempts:    3,
	})
	suite.identity = service.NewIdentityService(suite.users, suite.identities)
	suite.invites = service.NewInviteService(suite.links, suite.companies)
	suite.signup = service.NewSignupService(suite.baseTestSuite.DB, validator.New())
}

func (suite *SignupFlowTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SignupFlowTestSuite) TestOTPSignup_EndToEnd() {
	_, err := suite.otp.Start("alice@example.com")
	suite.Require().NoError(err)
	suite.Equal("alice@example.com", suite.mailer.lastEmail)
	suite.Len(suite.mailer.lastCode, models.OTPCodeLength)

	user, err := suite.otp.Verify("alice@example.com", suite.mailer.lastCode)
	suite.Require().NoError(err)

	completed, err := suite.signup.Complete(user, "203.0.113.7", nil)
	suite.Require().NoError(err)

	// Account is active with all three timestamps stamped
	suite.NotNil(completed.ConfirmedAt)
	suite.NotNil(completed.InvitationAcceptedAt)
	suite.NotNil(completed.CurrentSignInAt)

	// Consent recorded with the caller's address
	agreements, err := suite.agreements.GetByUserID(completed.ID)
	suite.Require().NoError(err)
	suite.Require().Len(agreements, 1)
	suite.Equal("203.0.113.7", agreements[0].IPAddress)

	// A default company was provisioned with the user as administrator
	admins, err := suite.companies.GetAdministratorsByUserID(completed.ID)
	suite.Require().NoError(err)
	suite.Require().Len(admins, 1)

	company, err := suite.companies.GetByID(admins[0].CompanyID)
	suite.Require().NoError(err)
	suite.Equal("alice@example.com", company.Email)
	suite.Equal(models.DefaultCompanyCountryCode, company.CountryCode)
	suite.Equal(models.DefaultCompanyCurrency, company.DefaultCurrency)
}

func (suite *SignupFlowTestSuite) TestFederatedSignup_WithInvite_JoinsExistingCompany() {
	company := suite.factories.Company.Create()
	suite.Require().NoError(suite.companies.Create(company))
	link := suite.factories.InviteLink.WithToken(company.ID, "invite-xyz")
	suite.Require().NoError(suite.links.Create(link))

	invited, err := suite.invites.ResolveToken("invite-xyz")
	suite.Require().NoError(err)
	suite.Require().NotNil(invited)
	suite.Equal(company.ID, invited.ID)

	newUser := &models.User{
		Email: "bob@example.com",
		Identities: []models.UserIdentity{
			{Provider: models.ProviderGoogle, ExternalID: "ext-bob"},
		},
	}
	completed, err := suite.signup.Complete(newUser, "203.0.113.8", invited)
	suite.Require().NoError(err)

	// Invite takes precedence: no default company was created
	admins, err := suite.companies.GetAdministratorsByUserID(completed.ID)
	suite.Require().NoError(err)
	suite.Empty(admins)

	// The identity row landed in the same transaction
	identity, err := suite.identities.GetByProviderExternalID(models.ProviderGoogle, "ext-bob")
	suite.Require().NoError(err)
	suite.Equal(completed.ID, identity.UserID)
}

func (suite *SignupFlowTestSuite) TestFederatedLogin_MergesWithOTPAccountByEmail() {
	// Carol signed up via OTP earlier
	_, err := suite.otp.Start("carol@example.com")
	suite.Require().NoError(err)
	user, err := suite.otp.Verify("carol@example.com", suite.mailer.lastCode)
	suite.Require().NoError(err)
	completed, err := suite.signup.Complete(user, "203.0.113.9", nil)
	suite.Require().NoError(err)

	// First provider login resolves by email and attaches the external id
	resolved, err := suite.identity.ResolveFederated("carol@example.com", models.ProviderGoogle, "ext-carol")
	suite.Require().NoError(err)
	suite.Require().NotNil(resolved)
	suite.Equal(completed.ID, resolved.ID)

	identity, err := suite.identities.GetByProviderExternalID(models.ProviderGoogle, "ext-carol")
	suite.Require().NoError(err)
	suite.Equal(completed.ID, identity.UserID)

	// Subsequent logins resolve directly by external id
	again, err := suite.identity.ResolveFederated("carol@example.com", models.ProviderGoogle, "ext-carol")
	suite.Require().NoError(err)
	suite.Equal(completed.ID, again.ID)
}

func (suite *SignupFlowTestSuite) TestOTPCode_SingleUse() {
	_, err := suite.otp.Start("dave@example.com")
	suite.Require().NoError(err)
	code := suite.mailer.lastCode

	_, err = suite.otp.Verify("dave@example.com", code)
	suite.Require().NoError(err)

	// The consumed code never verifies again
	_, err = suite.otp.Verify("dave@example.com", code)
	suite.ErrorIs(err, apperrors.ErrInvalidOTPCode)
}

func (suite *SignupFlowTestSuite) TestOTPVerify_AttemptCeiling() {
	_, err := suite.otp.Start("erin@example.com")
	suite.Require().NoError(err)
	code := suite.mailer.lastCode

	for i := 0; i < 3; i++ {
		_, err = suite.otp.Verify("erin@example.com", "000000")
		suite.ErrorIs(err, apperrors.ErrInvalidOTPCode)
	}

	// Ceiling reached: even the correct code is refused
	_, err = suite.otp.Verify("erin@example.com", code)
	suite.True(apperrors.IsRateLimit(err))
}

func (suite *SignupFlowTestSuite) TestOTPResend_SupersedesEarlierCode() {
	_, err := suite.otp.Start("frank@example.com")
	suite.Require().NoError(err)
	first := suite.mailer.lastCode

	_, err = suite.otp.Start("frank@example.com")
	suite.Require().NoError(err)
	second := suite.mailer.lastCode

	if first == second {
		suite.T().Skip("codes collided, cannot distinguish supersession")
	}

	// The earlier code no longer verifies
	_, err = suite.otp.Verify("frank@example.com", first)
	suite.ErrorIs(err, apperrors.ErrInvalidOTPCode)

	_, err = suite.otp.Verify("frank@example.com", second)
	suite.NoError(err)
}

func (suite *SignupFlowTestSuite) TestOTPReplayAfterCompletion_Refused() {
	_, err := suite.otp.Start("judy@example.com")
	suite.Require().NoError(err)
	first := suite.mailer.lastCode

	_, err = suite.otp.Start("judy@example.com")
	suite.Require().NoError(err)
	second := suite.mailer.lastCode

	user, err := suite.otp.Verify("judy@example.com", second)
	suite.Require().NoError(err)
	completed, err := suite.signup.Complete(user, "203.0.113.14", nil)
	suite.Require().NoError(err)

	// The earlier code is dead once the account is active
	_, err = suite.otp.Verify("judy@example.com", first)
	suite.ErrorIs(err, apperrors.ErrAccountAlreadyActive)

	// One company, one consent row; the replay completed nothing
	admins, err := suite.companies.GetAdministratorsByUserID(completed.ID)
	suite.Require().NoError(err)
	suite.Len(admins, 1)
	agreements, err := suite.agreements.GetByUserID(completed.ID)
	suite.Require().NoError(err)
	suite.Len(agreements, 1)
}

func (suite *SignupFlowTestSuite) TestStart_ExistingActiveAccount_Refused() {
	_, err := suite.otp.Start("grace@example.com")
	suite.Require().NoError(err)
	user, err := suite.otp.Verify("grace@example.com", suite.mailer.lastCode)
	suite.Require().NoError(err)
	_, err = suite.signup.Complete(user, "203.0.113.10", nil)
	suite.Require().NoError(err)

	_, err = suite.otp.Start("grace@example.com")
	suite.ErrorIs(err, apperrors.ErrAccountAlreadyActive)
}

func (suite *SignupFlowTestSuite) TestDuplicateExternalID_SurfacesDuplicateIdentity() {
	first := &models.User{
		Email: "henry@example.com",
		Identities: []models.UserIdentity{
			{Provider: models.ProviderGoogle, ExternalID: "ext-shared"},
		},
	}
	_, err := suite.signup.Complete(first, "203.0.113.11", nil)
	suite.Require().NoError(err)

	second := &models.User{
		Email: "other@example.com",
		Identities: []models.UserIdentity{
			{Provider: models.ProviderGoogle, ExternalID: "ext-shared"},
		},
	}
	_, err = suite.signup.Complete(second, "203.0.113.12", nil)
	suite.ErrorIs(err, apperrors.ErrDuplicateIdentity)

	// The losing transaction rolled back completely
	_, err = suite.users.GetByEmail("other@example.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	agreements, err := suite.agreements.GetByUserID(first.ID)
	suite.Require().NoError(err)
	suite.Len(agreements, 1)
}

func (suite *SignupFlowTestSuite) TestInviteToken_UnknownFallsBackToDefaultCompany() {
	invited, err := suite.invites.ResolveToken("no-such-token")
	suite.Require().NoError(err)
	suite.Nil(invited)

	newUser := &models.User{Email: "iris@example.com"}
	completed, err := suite.signup.Complete(newUser, "203.0.113.13", invited)
	suite.Require().NoError(err)

	admins, err := suite.companies.GetAdministratorsByUserID(completed.ID)
	suite.Require().NoError(err)
	suite.Len(admins, 1)
}

func TestSignupFlowTestSuite(t *testing.T) {
	suite.Run(t, new(SignupFlowTestSuite))
}
