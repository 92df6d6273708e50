package domain

import "time"

type AccountStatus string

const (
	AccountActive              AccountStatus = "active"
	AccountSuspended           AccountStatus = "suspended"
	AccountLocked              AccountStatus = "locked"
	AccountPendingVerification AccountStatus = "pending_verification"
)

// Identity is the read model of a credential identity. It is owned by the
// Credential Store; this service only reads it and asks for token version bumps.
type Identity struct {
	ID               string
	Email            string
	PasswordHash     string
	AccountStatus    AccountStatus
	EmailVerified    bool
	TwoFactorEnabled bool
	Roles            []string
	TokenVersion     int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
