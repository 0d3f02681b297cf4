package handlers

import (
	"errors"
	"net/http"

	apperrors "company-portal-backend/internal/errors"
	"company-portal-backend/internal/logger"
	"company-portal-backend/internal/metrics"
	"company-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SignupHandler handles the OTP signup endpoints
type SignupHandler struct {
	otp      service.OTPServiceInterface
	identity service.IdentityServiceInterface
	signup   service.SignupServiceInterface
	sessions service.SessionIssuer
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(otp service.OTPServiceInterface, identity service.IdentityServiceInterface, signup service.SignupServiceInterface, sessions service.SessionIssuer) *SignupHandler {
	return &SignupHandler{
		otp:      otp,
		identity: identity,
		signup:   signup,
		sessions: sessions,
	}
}

// SendOTPBody represents the request body for POST /internal/signup/otp
type SendOTPBody struct {
	Email string `json:"email"`
}

// LoginBody represents the request body for POST /internal/login
type LoginBody struct {
	Email   string `json:"email"`
	OTPCode string `json:"otp_code"`
}

// SendOTP handles POST /internal/signup/otp
// @Summary Start an OTP signup
// @Description Creates or reuses a pending account for the email and sends a one-time code
// @Tags signup
// @Accept json
// @Produce json
// @Param request body SendOTPBody true "Signup email"
// @Success 200 {object} map[string]string "OTP sent"
// @Failure 400 {object} map[string]string "Missing email"
// @Failure 409 {object} map[string]string "Account already exists"
// @Failure 429 {object} map[string]interface{} "Rate limited"
// @Router /internal/signup/otp [post]
func (h *SignupHandler) SendOTP(c *gin.Context) {
	var body SendOTPBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	if _, err := h.otp.Start(body.Email); err != nil {
		respondError(c, err)
		return
	}

	metrics.OTPChallengesIssued.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

// Login handles POST /internal/login
// @Summary Verify an OTP code and complete signup
// @Description Verifies the one-time code, finalizes onboarding and returns a session JWT
// @Tags signup
// @Accept json
// @Produce json
// @Param request body LoginBody true "Email and OTP code"
// @Success 200 {object} sessionResponse "Existing account logged in"
// @Success 201 {object} sessionResponse "Account created"
// @Failure 400 {object} map[string]string "Missing fields"
// @Failure 401 {object} map[string]string "Invalid or expired code"
// @Failure 404 {object} map[string]string "No pending signup"
// @Failure 409 {object} map[string]string "Account already exists"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Failure 429 {object} map[string]interface{} "Too many attempts"
// @Router /internal/login [post]
func (h *SignupHandler) Login(c *gin.Context) {
	var body LoginBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" || body.OTPCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and OTP code are required"})
		return
	}

	user, err := h.otp.Verify(body.Email, body.OTPCode)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			metrics.OTPVerifyFailures.Inc()
		}
		respondError(c, err)
		return
	}

	completed, err := h.signup.Complete(user, c.ClientIP(), nil)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateIdentity) {
			// Lost the commit race: someone else finished signup for this
			// email. Resolve to the winning account and log in instead.
			h.loginExisting(c, body.Email)
			return
		}
		respondError(c, err)
		return
	}

	token, err := h.sessions.IssueSession(completed)
	if err != nil {
		logger.WithEmail(completed.Email).WithField("error", err).Error("failed to issue session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	metrics.SignupsCompleted.WithLabelValues("otp").Inc()
	metrics.SessionsIssued.Inc()
	c.JSON(http.StatusCreated, sessionResponse{User: toUserPayload(completed), JWT: token})
}

func (h *SignupHandler) loginExisting(c *gin.Context, email string) {
	user, err := h.identity.ResolveOTP(email)
	if err != nil || user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	token, err := h.sessions.IssueSession(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	metrics.SessionsIssued.Inc()
	c.JSON(http.StatusOK, sessionResponse{User: toUserPayload(user), JWT: token})
}
