package models

import (
	"time"

	"github.com/google/uuid"
)

// OTPCodeLength is the number of digits in a one-time code.
const OTPCodeLength = 6

// OtpChallenge is a time-boxed, attempt-limited single-use code bound to a
// pending user. The latest unconsumed row for a user is the active
// challenge; a resend supersedes it with a fresh row.
type OtpChallenge struct {
	BaseModel
	UserID     uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Code       string     `json:"-" gorm:"not null;size:6"`
	Attempts   int        `json:"attempts" gorm:"not null;default:0"`
	ExpiresAt  time.Time  `json:"expires_at" gorm:"not null"`
	ConsumedAt *time.Time `json:"consumed_at"`
}

// TableName returns the table name for OtpChallenge
func (OtpChallenge) TableName() string {
	return "otp_challenges"
}

// Expired reports whether the challenge is past its expiry at the given time.
func (c *OtpChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
