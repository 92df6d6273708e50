package domain

import "time"

type OutcomeKind int

const (
	OutcomeRejected OutcomeKind = iota
	OutcomeLocked
	OutcomeRequiresTwoFactor
	OutcomeRequiresVerification
	OutcomeSuccess
)

// LoginOutcome is the terminal state of one pass through the login flow.
// Exactly one of the optional fields is populated, according to Kind.
type LoginOutcome struct {
	Kind         OutcomeKind
	User         *Identity
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	ChallengeRef string
	RetryAfter   time.Duration
}
