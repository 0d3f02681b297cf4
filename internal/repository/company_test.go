//go:build integration

package repository

import (
	"testing"

	"company-portal-backend/internal/database/models"
	"company-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CompanyRepositoryTestSuite tests the CompanyRepository and the invite
// link repository against a real schema
type CompanyRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CompanyRepository
	links         *InviteLinkRepository
	users         *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CompanyRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewCompanyRepository(suite.baseTestSuite.DB)
	suite.links = NewInviteLinkRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CompanyRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CompanyRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CompanyRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CompanyRepositoryTestSuite) TestCreateAndGetByID() {
	company := suite.factories.Company.Create()

	suite.NoError(suite.repo.Create(company))

	found, err := suite.repo.GetByID(company.ID)
	suite.NoError(err)
	suite.Equal(company.Email, found.Email)
	suite.Equal(models.DefaultCompanyCountryCode, found.CountryCode)
	suite.Equal(models.DefaultCompanyCurrency, found.DefaultCurrency)
}

func (suite *CompanyRepositoryTestSuite) TestGetAdministratorsByUserID() {
	user := suite.factories.User.Confirmed()
	suite.NoError(suite.users.Create(user))

	company := suite.factories.Company.Create()
	suite.NoError(suite.repo.Create(company))

	admin := &models.CompanyAdministrator{UserID: user.ID, CompanyID: company.ID}
	suite.NoError(suite.baseTestSuite.DB.Create(admin).Error)

	admins, err := suite.repo.GetAdministratorsByUserID(user.ID)

	suite.NoError(err)
	suite.Len(admins, 1)
	suite.Equal(company.ID, admins[0].CompanyID)
}

func (suite *CompanyRepositoryTestSuite) TestAdministratorLink_DuplicateRejected() {
	user := suite.factories.User.Confirmed()
	suite.NoError(suite.users.Create(user))

	company := suite.factories.Company.Create()
	suite.NoError(suite.repo.Create(company))

	first := &models.CompanyAdministrator{UserID: user.ID, CompanyID: company.ID}
	suite.NoError(suite.baseTestSuite.DB.Create(first).Error)

	second := &models.CompanyAdministrator{UserID: user.ID, CompanyID: company.ID}
	err := suite.baseTestSuite.DB.Create(second).Error

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *CompanyRepositoryTestSuite) TestInviteLink_GetByToken() {
	company := suite.factories.Company.Create()
	suite.NoError(suite.repo.Create(company))

	link := suite.factories.InviteLink.WithToken(company.ID, "token-abc")
	suite.NoError(suite.links.Create(link))

	found, err := suite.links.GetByToken("token-abc")

	suite.NoError(err)
	suite.Equal(company.ID, found.CompanyID)
}

func (suite *CompanyRepositoryTestSuite) TestInviteLink_UnknownToken() {
	_, err := suite.links.GetByToken("missing-token")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestCompanyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyRepositoryTestSuite))
}
