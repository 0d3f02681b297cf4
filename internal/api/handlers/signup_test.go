package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"company-portal-backend/internal/api/handlers"
	"company-portal-backend/internal/database/models"
	apperrors "company-portal-backend/internal/errors"
	"company-portal-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SignupHandlerTestSuite defines the test suite for SignupHandler
type SignupHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockOTP      *mocks.MockOTPServiceInterface
	mockIdentity *mocks.MockIdentityServiceInterface
	mockSignup   *mocks.MockSignupServiceInterface
	mockSessions *mocks.MockSessionIssuer
	handler      *handlers.SignupHandler
	router       *gin.Engine
}

// SetupTest sets up the test suite
func (suite *SignupHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOTP = mocks.NewMockOTPServiceInterface(suite.ctrl)
	suite.mockIdentity = mocks.NewMockIdentityServiceInterface(suite.ctrl)
	suite.mockSignup = mocks.NewMockSignupServiceInterface(suite.ctrl)
	suite.mockSessions = mocks.NewMockSessionIssuer(suite.ctrl)
	suite.handler = handlers.NewSignupHandler(suite.mockOTP, suite.mockIdentity, suite.mockSignup, suite.mockSessions)

	suite.router = gin.New()
	suite.router.POST("/internal/signup/otp", suite.handler.SendOTP)
	suite.router.POST("/internal/login", suite.handler.Login)
}

// TearDownTest cleans up after each test
func (suite *SignupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SignupHandlerTestSuite) postJSON(url string, body interface{}) *httptest.ResponseRecorder {
	jsonBytes, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonBytes))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

func testUser(email string) *models.User {
	now := time.Now().UTC()
	return &models.User{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Email:       email,
		ConfirmedAt: &now,
	}
}

func (suite *SignupHandlerTestSuite) TestSendOTP_Success() {
	suite.mockOTP.EXPECT().Start("new@example.com").Return(&models.User{Email: "new@example.com"}, nil)

	recorder := suite.postJSON("/internal/signup/otp", gin.H{"email": "new@example.com"})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response map[string]string
	_ = json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.Equal(suite.T(), "OTP sent successfully", response["message"])
}

func (suite *SignupHandlerTestSuite) TestSendOTP_MissingEmail() {
	recorder := suite.postJSON("/internal/signup/otp", gin.H{})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "Email is required")
}

func (suite *SignupHandlerTestSuite) TestSendOTP_ActiveAccount_Conflict() {
	suite.mockOTP.EXPECT().Start("taken@example.com").Return(nil, apperrors.ErrAccountAlreadyActive)

	recorder := suite.postJSON("/internal/signup/otp", gin.H{"email": "taken@example.com"})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "already exists")
}

func (suite *SignupHandlerTestSuite) TestSendOTP_Cooldown_TooManyRequests() {
	suite.mockOTP.EXPECT().Start("eager@example.com").Return(nil,
		apperrors.NewRateLimitError("OTP was sent recently, wait before requesting another", 42*time.Second))

	recorder := suite.postJSON("/internal/signup/otp", gin.H{"email": "eager@example.com"})

	assert.Equal(suite.T(), http.StatusTooManyRequests, recorder.Code)
	var response map[string]interface{}
	_ = json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.Equal(suite.T(), float64(43), response["retry_after_seconds"])
}

func (suite *SignupHandlerTestSuite) TestLogin_Success_CreatesAccount() {
	pending := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "verify@example.com"}
	completed := testUser("verify@example.com")

	suite.mockOTP.EXPECT().Verify("verify@example.com", "123456").Return(pending, nil)
	suite.mockSignup.EXPECT().Complete(pending, gomock.Any(), nil).Return(completed, nil)
	suite.mockSessions.EXPECT().IssueSession(completed).Return("signed.jwt.token", nil)

	recorder := suite.postJSON("/internal/login", gin.H{"email": "verify@example.com", "otp_code": "123456"})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	var response map[string]interface{}
	_ = json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.Equal(suite.T(), "signed.jwt.token", response["jwt"])
	user := response["user"].(map[string]interface{})
	assert.Equal(suite.T(), "verify@example.com", user["email"])
}

func (suite *SignupHandlerTestSuite) TestLogin_MissingFields() {
	recorder := suite.postJSON("/internal/login", gin.H{"email": "verify@example.com"})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "Email and OTP code are required")
}

func (suite *SignupHandlerTestSuite) TestLogin_WrongCode_Unauthorized() {
	suite.mockOTP.EXPECT().Verify("verify@example.com", "999999").Return(nil, apperrors.ErrInvalidOTPCode)

	recorder := suite.postJSON("/internal/login", gin.H{"email": "verify@example.com", "otp_code": "999999"})

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

func (suite *SignupHandlerTestSuite) TestLogin_NoPendingSignup_NotFound() {
	suite.mockOTP.EXPECT().Verify("ghost@example.com", "123456").Return(nil, apperrors.ErrSignupSessionNotFound)

	recorder := suite.postJSON("/internal/login", gin.H{"email": "ghost@example.com", "otp_code": "123456"})

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *SignupHandlerTestSuite) TestLogin_AttemptCeiling_TooManyRequests() {
	suite.mockOTP.EXPECT().Verify("maxed@example.com", "123456").Return(nil,
		apperrors.NewRateLimitError("too many OTP attempts, request a new code", time.Minute))

	recorder := suite.postJSON("/internal/login", gin.H{"email": "maxed@example.com", "otp_code": "123456"})

	assert.Equal(suite.T(), http.StatusTooManyRequests, recorder.Code)
}

func (suite *SignupHandlerTestSuite) TestLogin_LeftoverCodeForActiveAccount_Conflict() {
	// No login fallback and no second completion: the refusal surfaces as-is
	suite.mockOTP.EXPECT().Verify("replay@example.com", "111111").Return(nil, apperrors.ErrAccountAlreadyActive)

	recorder := suite.postJSON("/internal/login", gin.H{"email": "replay@example.com", "otp_code": "111111"})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

func (suite *SignupHandlerTestSuite) TestLogin_CommitRace_FallsBackToLogin() {
	pending := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "race@example.com"}
	winner := testUser("race@example.com")

	suite.mockOTP.EXPECT().Verify("race@example.com", "123456").Return(pending, nil)
	suite.mockSignup.EXPECT().Complete(pending, gomock.Any(), nil).Return(nil, apperrors.ErrDuplicateIdentity)
	suite.mockIdentity.EXPECT().ResolveOTP("race@example.com").Return(winner, nil)
	suite.mockSessions.EXPECT().IssueSession(winner).Return("signed.jwt.token", nil)

	recorder := suite.postJSON("/internal/login", gin.H{"email": "race@example.com", "otp_code": "123456"})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *SignupHandlerTestSuite) TestLogin_ValidationFailure_Unprocessable() {
	pending := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "bad@example.com"}

	suite.mockOTP.EXPECT().Verify("bad@example.com", "123456").Return(pending, nil)
	suite.mockSignup.EXPECT().Complete(pending, gomock.Any(), nil).Return(nil,
		apperrors.NewValidationError("email", "failed email validation"))

	recorder := suite.postJSON("/internal/login", gin.H{"email": "bad@example.com", "otp_code": "123456"})

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
	var response map[string]interface{}
	_ = json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.Equal(suite.T(), "email", response["field"])
}

func TestSignupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SignupHandlerTestSuite))
}
