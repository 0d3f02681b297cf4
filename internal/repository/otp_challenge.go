package repository

import (
	"time"

	"company-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OtpChallengeRepository handles database operations for OTP challenges
type OtpChallengeRepository struct {
	db *gorm.DB
}

// NewOtpChallengeRepository creates a new OTP challenge repository
func NewOtpChallengeRepository(db *gorm.DB) *OtpChallengeRepository {
	return &OtpChallengeRepository{db: db}
}

// Create creates a new challenge. The fresh row supersedes any earlier one
// for the same user because verification reads only the latest.
func (r *OtpChallengeRepository) Create(challenge *models.OtpChallenge) error {
	return r.db.Create(challenge).Error
}

// GetLatestActiveByUserID retrieves the most recently issued unconsumed
// challenge for a user. Expiry is checked by the caller at verify time, so
// expired rows are returned rather than filtered out.
func (r *OtpChallengeRepository) GetLatestActiveByUserID(userID uuid.UUID) (*models.OtpChallenge, error) {
	var challenge models.OtpChallenge
	err := r.db.Where("user_id = ? AND consumed_at IS NULL", userID).
		Order("created_at DESC").
		First(&challenge).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

// IncrementAttempts bumps the attempt counter after a failed verify
func (r *OtpChallengeRepository) IncrementAttempts(id uuid.UUID) error {
	return r.db.Model(&models.OtpChallenge{}).Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + 1")).Error
}

// Consume marks a challenge as used. A consumed challenge never verifies
// again.
func (r *OtpChallengeRepository) Consume(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.OtpChallenge{}).Where("id = ?", id).
		Update("consumed_at", at).Error
}

// DeleteByUserID removes all challenges for a user, used when a pending
// signup is discarded
func (r *OtpChallengeRepository) DeleteByUserID(userID uuid.UUID) error {
	return r.db.Delete(&models.OtpChallenge{}, "user_id = ?", userID).Error
}
