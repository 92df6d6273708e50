package domain

import (
	"context"
	"time"
)

// CredentialStore is the external owner of identities and password hashes.
// Lookups return (nil, nil) when the identity does not exist.
type CredentialStore interface {
	FindByID(ctx context.Context, id string) (*Identity, error)
	FindByEmail(ctx context.Context, email string) (*Identity, error)
	CheckPassword(ctx context.Context, id, password string) (bool, error)
	VerifyTwoFactorCode(ctx context.Context, id, code string) (bool, error)
	UpdatePassword(ctx context.Context, id, newPassword string) error
	IncrementTokenVersion(ctx context.Context, id string) (int, error)
}

type RefreshTokenStore interface {
	Insert(ctx context.Context, rec *RefreshTokenRecord) error
	GetByTokenID(ctx context.Context, tokenID string) (*RefreshTokenRecord, error)
	// ConsumeRotation marks tokenID as rotated to successorID, but only if the
	// record is still unconsumed and unrevoked. It reports whether this caller
	// won the update; a false result with no error is the reuse signal.
	ConsumeRotation(ctx context.Context, tokenID, successorID string) (bool, error)
	Revoke(ctx context.Context, tokenID, reason string) error
	RevokeFamily(ctx context.Context, familyID, reason string) error
	RevokeAllForUser(ctx context.Context, userID, reason string) error
	RevokeDevice(ctx context.Context, userID, deviceID, reason string) error
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type LoginAttemptStore interface {
	Record(ctx context.Context, attempt *LoginAttempt) error
	// RecentByUser returns attempts since the given time, newest first.
	RecentByUser(ctx context.Context, userID string, since time.Time) ([]LoginAttempt, error)
}

type SecurityAlertStore interface {
	Insert(ctx context.Context, alert *SecurityAlert) error
}

type TrustedDeviceStore interface {
	Upsert(ctx context.Context, userID, deviceID, ip string) error
}

// Location is the geo provider's answer for one IP. Known is false when the
// provider could not resolve the address; an unknown location contributes no
// novelty signal.
type Location struct {
	Country string
	City    string
	Proxy   bool
	Known   bool
}

func (l Location) String() string {
	if !l.Known {
		return ""
	}
	if l.City == "" {
		return l.Country
	}
	return l.Country + "/" + l.City
}

type GeoProvider interface {
	Locate(ctx context.Context, ip string) (Location, error)
}

type NotificationSender interface {
	SendAlert(ctx context.Context, userID string, alert *SecurityAlert) error
}

type BreachChecker interface {
	IsCompromised(ctx context.Context, password string) (bool, error)
}
