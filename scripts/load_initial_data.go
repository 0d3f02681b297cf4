package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"company-portal-backend/internal/config"
	"company-portal-backend/internal/database"
	"company-portal-backend/internal/database/models"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CompanyData struct {
	Email           string `yaml:"email"`
	CountryCode     string `yaml:"country_code"`
	DefaultCurrency string `yaml:"default_currency"`
}

type InviteLinkData struct {
	CompanyEmail string `yaml:"company_email"`
	Token        string `yaml:"token,omitempty"`
}

type CompaniesFile struct {
	Companies []CompanyData `yaml:"companies"`
}

type InviteLinksFile struct {
	InviteLinks []InviteLinkData `yaml:"invite_links"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	companies, err := loadCompanies(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}

	inviteLinks, err := loadInviteLinks(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load invite links: %w", err)
	}

	companiesByEmail := make(map[string]*models.Company)
	for _, data := range companies {
		company := models.Company{
			Email:           strings.ToLower(data.Email),
			CountryCode:     data.CountryCode,
			DefaultCurrency: data.DefaultCurrency,
		}
		if company.CountryCode == "" {
			company.CountryCode = models.DefaultCompanyCountryCode
		}
		if company.DefaultCurrency == "" {
			company.DefaultCurrency = models.DefaultCompanyCurrency
		}

		// Idempotent: reuse a company already seeded with this email
		var existing models.Company
		err := db.Where("email = ?", company.Email).First(&existing).Error
		switch {
		case err == nil:
			companiesByEmail[company.Email] = &existing
			continue
		case err != gorm.ErrRecordNotFound:
			return fmt.Errorf("lookup company %s: %w", company.Email, err)
		}

		if err := db.Create(&company).Error; err != nil {
			return fmt.Errorf("create company %s: %w", company.Email, err)
		}
		companiesByEmail[company.Email] = &company
		log.Printf("Created company %s", company.Email)
	}

	for _, data := range inviteLinks {
		company, ok := companiesByEmail[strings.ToLower(data.CompanyEmail)]
		if !ok {
			return fmt.Errorf("invite link references unknown company %s", data.CompanyEmail)
		}

		token := data.Token
		if token == "" {
			token = ulid.Make().String()
		}

		var existing models.CompanyInviteLink
		err := db.Where("token = ?", token).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("lookup invite link %s: %w", token, err)
		}

		link := models.CompanyInviteLink{
			CompanyID: company.ID,
			Token:     token,
		}
		if err := db.Create(&link).Error; err != nil {
			return fmt.Errorf("create invite link for %s: %w", data.CompanyEmail, err)
		}
		log.Printf("Created invite link %s for company %s", token, company.Email)
	}

	return nil
}

func loadCompanies(dataDir string) ([]CompanyData, error) {
	var allCompanies []CompanyData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "companies") {
			var file CompaniesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCompanies = append(allCompanies, file.Companies...)
		}
		return nil
	})

	return allCompanies, err
}

func loadInviteLinks(dataDir string) ([]InviteLinkData, error) {
	var allLinks []InviteLinkData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "invite_links") {
			var file InviteLinksFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allLinks = append(allLinks, file.InviteLinks...)
		}
		return nil
	})

	return allLinks, err
}
