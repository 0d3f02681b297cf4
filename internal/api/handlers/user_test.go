package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"company-portal-backend/internal/api/handlers"
	"company-portal-backend/internal/auth"
	"company-portal-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockUsers   *mocks.MockUserRepositoryInterface
	authService *auth.Service
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	authService, err := auth.NewService(&auth.AuthConfig{
		JWTSecret:   "test-secret",
		JWTIssuer:   "company-portal-backend",
		TokenTTL:    time.Hour,
		RedirectURL: "http://localhost:3000",
	})
	require.NoError(suite.T(), err)
	suite.authService = authService

	handler := handlers.NewUserHandler(suite.mockUsers)
	middleware := auth.NewMiddleware(authService)

	suite.router = gin.New()
	suite.router.GET("/internal/current_user", middleware.RequireAuth(), handler.GetCurrentUser)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) get(token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/internal/current_user", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser_Success() {
	user := testUser("me@example.com")
	token, err := suite.authService.IssueSession(user)
	require.NoError(suite.T(), err)

	suite.mockUsers.EXPECT().GetByID(user.ID).Return(user, nil)

	recorder := suite.get(token)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "me@example.com")
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser_MissingToken() {
	recorder := suite.get("")

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser_GarbageToken() {
	recorder := suite.get("not.a.jwt")

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser_DeletedUser_NotFound() {
	user := testUser("gone@example.com")
	token, err := suite.authService.IssueSession(user)
	require.NoError(suite.T(), err)

	suite.mockUsers.EXPECT().GetByID(user.ID).Return(nil, gorm.ErrRecordNotFound)

	recorder := suite.get(token)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
