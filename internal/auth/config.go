package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret   string         `yaml:"jwt_secret" json:"jwt_secret"`
	JWTIssuer   string         `yaml:"jwt_issuer" json:"jwt_issuer"`
	TokenTTL    time.Duration  `yaml:"token_ttl" json:"token_ttl"`
	RedirectURL string         `yaml:"redirect_url" json:"redirect_url"`
	Google      ProviderConfig `yaml:"google" json:"google"`
}

// ProviderConfig holds OAuth client credentials for a federated provider
type ProviderConfig struct {
	ClientID     string `yaml:"client_id" json:"client_id"`
	ClientSecret string `yaml:"client_secret" json:"client_secret"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
		// Config file not found, use defaults and environment variables
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Override sensitive values from the environment
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if redirectURL := os.Getenv("AUTH_REDIRECT_URL"); redirectURL != "" {
		config.RedirectURL = redirectURL
	}
	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" {
		config.Google.ClientID = clientID
	}
	if clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET"); clientSecret != "" {
		config.Google.ClientSecret = clientSecret
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.JWTIssuer == "" {
		return fmt.Errorf("JWT issuer is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	if c.RedirectURL == "" {
		return fmt.Errorf("redirect URL is required")
	}
	return nil
}

// setAuthDefaults sets default values for auth configuration
func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("jwt_issuer", "company-portal-backend")
	v.SetDefault("token_ttl", 30*24*time.Hour)
	v.SetDefault("redirect_url", "http://localhost:3000")
	// No default JWT secret - must be provided via environment variable
}
