package routes

import (
	"log"

	"company-portal-backend/internal/api/handlers"
	"company-portal-backend/internal/api/middleware"
	"company-portal-backend/internal/auth"
	"company-portal-backend/internal/config"
	"company-portal-backend/internal/mailer"
	"company-portal-backend/internal/repository"
	"company-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	identityRepo := repository.NewUserIdentityRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	inviteLinkRepo := repository.NewInviteLinkRepository(db)
	challengeRepo := repository.NewOtpChallengeRepository(db)

	// Initialize auth
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: failed to load auth config file, falling back to app config: %v", err)
		authConfig = &auth.AuthConfig{
			JWTSecret:   cfg.JWTSecret,
			JWTIssuer:   cfg.JWTIssuer,
			TokenTTL:    cfg.JWTExpiry(),
			RedirectURL: "http://localhost:3000",
		}
	}
	authService, err := auth.NewService(authConfig)
	if err != nil {
		log.Fatalf("failed to initialize auth service: %v", err)
	}
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize services
	otpService := service.NewOTPService(userRepo, challengeRepo, mailer.NewLogMailer(), service.OTPConfig{
		CodeTTL:        cfg.OTPCodeTTL(),
		ResendCooldown: cfg.OTPResendCooldown(),
		MaxAttempts:    cfg.OTPMaxAttempts,
	})
	identityService := service.NewIdentityService(userRepo, identityRepo)
	inviteService := service.NewInviteService(inviteLinkRepo, companyRepo)
	signupService := service.NewSignupService(db, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	signupHandler := handlers.NewSignupHandler(otpService, identityService, signupService, authService)
	oauthHandler := handlers.NewOauthHandler(identityService, inviteService, signupService, authService, authService)
	userHandler := handlers.NewUserHandler(userRepo)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Metrics and swagger
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Signup and login routes
	internal := router.Group("/internal")
	{
		internal.POST("/signup/otp", middleware.RateLimitPerIP(cfg.OTPStartRatePerMinute), signupHandler.SendOTP)
		internal.POST("/login", signupHandler.Login)
		internal.POST("/oauth", oauthHandler.Create)
		internal.GET("/oauth/url", oauthHandler.AuthURL)
		internal.GET("/oauth/callback", oauthHandler.Callback)
		internal.GET("/current_user", authMiddleware.RequireAuth(), userHandler.GetCurrentUser)
	}

	return router
}
