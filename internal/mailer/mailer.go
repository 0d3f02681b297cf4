package mailer

import (
	"company-portal-backend/internal/logger"
)

// LogMailer writes OTP codes to the application log instead of sending
// email. Used in development and tests; production wires a real delivery
// backend behind the same service.Mailer contract.
type LogMailer struct{}

// NewLogMailer creates a new log-backed mailer
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// SendOTPCode logs the code for the given recipient
func (m *LogMailer) SendOTPCode(email, code string) error {
	logger.WithEmail(email).WithField("code", code).Info("OTP code issued (log mailer)")
	return nil
}
