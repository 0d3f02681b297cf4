package handlers

import (
	"errors"
	"net/http"

	"company-portal-backend/internal/auth"
	"company-portal-backend/internal/database/models"
	apperrors "company-portal-backend/internal/errors"
	"company-portal-backend/internal/logger"
	"company-portal-backend/internal/metrics"
	"company-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

// OauthHandler handles federated (identity-provider) login endpoints
type OauthHandler struct {
	identity    service.IdentityServiceInterface
	invites     service.InviteServiceInterface
	signup      service.SignupServiceInterface
	sessions    service.SessionIssuer
	authService *auth.Service
}

// NewOauthHandler creates a new oauth handler
func NewOauthHandler(identity service.IdentityServiceInterface, invites service.InviteServiceInterface, signup service.SignupServiceInterface, sessions service.SessionIssuer, authService *auth.Service) *OauthHandler {
	return &OauthHandler{
		identity:    identity,
		invites:     invites,
		signup:      signup,
		sessions:    sessions,
		authService: authService,
	}
}

// OauthBody represents the request body for POST /internal/oauth
type OauthBody struct {
	Email           string `json:"email"`
	Provider        string `json:"provider"`
	ExternalID      string `json:"external_id"`
	InvitationToken string `json:"invitation_token"`
}

// Create handles POST /internal/oauth
// @Summary Log in or sign up with a federated identity assertion
// @Description Resolves the assertion to an existing account, or completes signup for a new one
// @Tags oauth
// @Accept json
// @Produce json
// @Param request body OauthBody true "Identity assertion"
// @Success 200 {object} sessionResponse "Existing account logged in"
// @Success 201 {object} sessionResponse "Account created"
// @Failure 400 {object} map[string]string "Missing or invalid fields"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /internal/oauth [post]
func (h *OauthHandler) Create(c *gin.Context) {
	var body OauthBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}
	if body.Provider == "" {
		body.Provider = string(models.ProviderGoogle)
	}
	if !models.SupportedProvider(body.Provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrUnsupportedProvider.Error()})
		return
	}
	if body.ExternalID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "External ID is required"})
		return
	}

	h.handleFederated(c, body.Email, models.IdentityProvider(body.Provider), body.ExternalID, body.InvitationToken)
}

// AuthURL handles GET /internal/oauth/url
// @Summary Get the Google authorization URL for the server-side flow
// @Tags oauth
// @Produce json
// @Success 200 {object} map[string]string "Authorization URL"
// @Failure 503 {object} map[string]string "Provider not configured"
// @Router /internal/oauth/url [get]
func (h *OauthHandler) AuthURL(c *gin.Context) {
	google := h.authService.GoogleClient()
	if !google.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "google provider is not configured"})
		return
	}

	state, err := auth.GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"url": google.GetAuthURL(state)})
}

// Callback handles GET /internal/oauth/callback
// @Summary Complete the server-side Google OAuth flow
// @Description Exchanges the authorization code, verifies the profile, and funnels into the federated login path
// @Tags oauth
// @Produce json
// @Success 200 {object} sessionResponse "Existing account logged in"
// @Success 201 {object} sessionResponse "Account created"
// @Failure 400 {object} map[string]string "Missing code or state mismatch"
// @Router /internal/oauth/callback [get]
func (h *OauthHandler) Callback(c *gin.Context) {
	google := h.authService.GoogleClient()
	if !google.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "google provider is not configured"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code is required"})
		return
	}

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || c.Query("state") != expectedState {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State mismatch"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", true, true)

	profile, err := google.HandleCallback(c.Request.Context(), code)
	if err != nil {
		logger.New().WithField("error", err).Warn("google callback failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to authenticate with Google"})
		return
	}

	h.handleFederated(c, profile.Email, models.ProviderGoogle, profile.ID, c.Query("invitation_token"))
}

// handleFederated is the shared federated-login path: resolve to an
// existing account, or run the onboarding transaction for a new one.
func (h *OauthHandler) handleFederated(c *gin.Context, email string, provider models.IdentityProvider, externalID, invitationToken string) {
	user, err := h.identity.ResolveFederated(email, provider, externalID)
	if err != nil {
		respondError(c, err)
		return
	}
	if user != nil {
		h.respondSession(c, user, http.StatusOK)
		return
	}

	invitedCompany, err := h.invites.ResolveToken(invitationToken)
	if err != nil {
		respondError(c, err)
		return
	}

	newUser := &models.User{
		Email: email,
		Identities: []models.UserIdentity{
			{Provider: provider, ExternalID: externalID},
		},
	}

	completed, err := h.signup.Complete(newUser, c.ClientIP(), invitedCompany)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateIdentity) {
			// The commit race: another request created this account first.
			// Re-resolve and treat it as an existing-account login.
			resolved, rerr := h.identity.ResolveFederated(email, provider, externalID)
			if rerr == nil && resolved != nil {
				h.respondSession(c, resolved, http.StatusOK)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		respondError(c, err)
		return
	}

	metrics.SignupsCompleted.WithLabelValues("federated").Inc()
	h.respondSession(c, completed, http.StatusCreated)
}

func (h *OauthHandler) respondSession(c *gin.Context, user *models.User, status int) {
	token, err := h.sessions.IssueSession(user)
	if err != nil {
		logger.WithEmail(user.Email).WithField("error", err).Error("failed to issue session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	metrics.SessionsIssued.Inc()
	c.JSON(status, sessionResponse{User: toUserPayload(user), JWT: token})
}
