package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SignupsCompleted counts finished onboarding transactions by flow
	// ("otp" or "federated").
	SignupsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signups_completed_total",
		Help: "Number of completed signups by flow",
	}, []string{"flow"})

	// OTPChallengesIssued counts issued OTP codes.
	OTPChallengesIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "otp_challenges_issued_total",
		Help: "Number of OTP challenges issued",
	})

	// OTPVerifyFailures counts rejected OTP verification attempts.
	OTPVerifyFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "otp_verify_failures_total",
		Help: "Number of failed OTP verification attempts",
	})

	// SessionsIssued counts issued session credentials.
	SessionsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sessions_issued_total",
		Help: "Number of session tokens issued",
	})
)
