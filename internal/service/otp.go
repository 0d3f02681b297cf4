package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"company-portal-backend/internal/database/models"
	apperrors "company-portal-backend/internal/errors"
	"company-portal-backend/internal/logger"
	"company-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// OTPConfig holds the process-wide OTP limits
type OTPConfig struct {
	CodeTTL        time.Duration
	ResendCooldown time.Duration
	MaxAttempts    int
}

// OTPService issues and verifies single-use email codes bound to pending
// signups. All challenge state lives in the store; nothing is kept in
// process.
type OTPService struct {
	users      repository.UserRepositoryInterface
	challenges repository.OtpChallengeRepositoryInterface
	mailer     Mailer
	cfg        OTPConfig
}

// NewOTPService creates a new OTP service
func NewOTPService(users repository.UserRepositoryInterface, challenges repository.OtpChallengeRepositoryInterface, mailer Mailer, cfg OTPConfig) *OTPService {
	return &OTPService{
		users:      users,
		challenges: challenges,
		mailer:     mailer,
		cfg:        cfg,
	}
}

// Start begins an OTP signup for the email. An active account with this
// email fails the call; a pending one is reused. A fresh code supersedes any
// earlier challenge, subject to the resend cooldown.
func (s *OTPService) Start(email string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	if user != nil && user.IsConfirmed() {
		return nil, apperrors.ErrAccountAlreadyActive
	}

	if user == nil {
		user = &models.User{Email: repository.NormalizeEmail(email)}
		if err := s.users.Create(user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost a creation race; the other request owns the pending row now.
				return nil, apperrors.NewRateLimitError("OTP already being issued for this email", s.cfg.ResendCooldown)
			}
			return nil, fmt.Errorf("failed to create pending user: %w", err)
		}
	}

	latest, err := s.challenges.GetLatestActiveByUserID(user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up active challenge: %w", err)
	}
	if latest != nil {
		if wait := s.cfg.ResendCooldown - time.Since(latest.CreatedAt); wait > 0 {
			return nil, apperrors.NewRateLimitError("OTP was sent recently, wait before requesting another", wait)
		}
		// The fresh code supersedes anything still outstanding; earlier
		// codes must stop verifying the moment a new one is issued.
		if err := s.challenges.DeleteByUserID(user.ID); err != nil {
			return nil, fmt.Errorf("failed to supersede earlier challenges: %w", err)
		}
	}

	code, err := generateOTPCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	challenge := &models.OtpChallenge{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().UTC().Add(s.cfg.CodeTTL),
	}
	if err := s.challenges.Create(challenge); err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	if err := s.mailer.SendOTPCode(user.Email, code); err != nil {
		return nil, fmt.Errorf("failed to deliver OTP code: %w", err)
	}

	logger.WithEmail(user.Email).Info("OTP challenge issued")
	return user, nil
}

// Verify checks a submitted code against the most recently issued challenge.
// Only a successful verification consumes the challenge; a wrong attempt
// leaves it live for a correct retry up to the attempt ceiling. On success
// the pending user is returned for signup completion, after a final check
// that no concurrent flow activated the same email.
func (s *OTPService) Verify(email, code string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSignupSessionNotFound
		}
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	// An active account has no signup session; a code left over from its
	// signup must not verify again.
	if user.IsConfirmed() {
		return nil, apperrors.ErrAccountAlreadyActive
	}

	challenge, err := s.challenges.GetLatestActiveByUserID(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidOTPCode
		}
		return nil, fmt.Errorf("failed to look up active challenge: %w", err)
	}

	if challenge.Attempts >= s.cfg.MaxAttempts {
		return nil, apperrors.NewRateLimitError("too many OTP attempts, request a new code", s.cfg.ResendCooldown)
	}

	now := time.Now().UTC()
	if challenge.Code != code || challenge.Expired(now) {
		if err := s.challenges.IncrementAttempts(challenge.ID); err != nil {
			return nil, fmt.Errorf("failed to record failed attempt: %w", err)
		}
		return nil, apperrors.ErrInvalidOTPCode
	}

	if err := s.challenges.Consume(challenge.ID, now); err != nil {
		return nil, fmt.Errorf("failed to consume challenge: %w", err)
	}

	// Another flow may have completed signup for this email while the code
	// was in flight. If a distinct active account now holds the email, the
	// pending row is obsolete.
	existing, err := s.users.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to re-check existing user: %w", err)
	}
	if existing != nil && existing.ID != user.ID && existing.IsConfirmed() {
		if err := s.discardPending(user); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrAccountAlreadyActive
	}

	logger.WithEmail(user.Email).Info("OTP challenge verified")
	return user, nil
}

func (s *OTPService) discardPending(user *models.User) error {
	if err := s.challenges.DeleteByUserID(user.ID); err != nil {
		return fmt.Errorf("failed to discard pending challenges: %w", err)
	}
	if err := s.users.Delete(user.ID); err != nil {
		return fmt.Errorf("failed to discard pending user: %w", err)
	}
	return nil
}

// generateOTPCode produces a fixed-length numeric code from crypto/rand.
func generateOTPCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < models.OTPCodeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", models.OTPCodeLength, n), nil
}
