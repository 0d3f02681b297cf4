package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTIssuer     string `mapstructure:"JWT_ISSUER"`
	JWTExpiryDays int    `mapstructure:"JWT_EXPIRY_DAYS"`

	// OTP configuration (process-wide limits, enforced against the store)
	OTPCodeTTLMinutes        int `mapstructure:"OTP_CODE_TTL_MINUTES"`
	OTPResendCooldownSeconds int `mapstructure:"OTP_RESEND_COOLDOWN_SECONDS"`
	OTPMaxAttempts           int `mapstructure:"OTP_MAX_ATTEMPTS"`

	// Edge rate limiting for the OTP start endpoint (per client IP)
	OTPStartRatePerMinute int `mapstructure:"OTP_START_RATE_PER_MINUTE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// OTPCodeTTL returns the configured OTP code lifetime.
func (c *Config) OTPCodeTTL() time.Duration {
	return time.Duration(c.OTPCodeTTLMinutes) * time.Minute
}

// OTPResendCooldown returns the configured cooldown between OTP sends.
func (c *Config) OTPResendCooldown() time.Duration {
	return time.Duration(c.OTPResendCooldownSeconds) * time.Second
}

// JWTExpiry returns the configured session lifetime.
func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpiryDays) * 24 * time.Hour
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "3001")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "company_portal")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("JWT_ISSUER", "company-portal-backend")
	viper.SetDefault("JWT_EXPIRY_DAYS", 30)

	// OTP defaults
	viper.SetDefault("OTP_CODE_TTL_MINUTES", 10)
	viper.SetDefault("OTP_RESEND_COOLDOWN_SECONDS", 60)
	viper.SetDefault("OTP_MAX_ATTEMPTS", 5)
	viper.SetDefault("OTP_START_RATE_PER_MINUTE", 10)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if config.OTPMaxAttempts < 1 {
		return fmt.Errorf("OTP_MAX_ATTEMPTS must be at least 1")
	}
	if config.OTPCodeTTLMinutes < 1 {
		return fmt.Errorf("OTP_CODE_TTL_MINUTES must be at least 1")
	}
	if config.OTPResendCooldownSeconds < 0 {
		return fmt.Errorf("OTP_RESEND_COOLDOWN_SECONDS must not be negative")
	}
	return nil
}
