package domain

import "time"

// RefreshTokenRecord is one row per issued refresh token. Rotation marks the old
// row consumed (RotatedTo set) and inserts a successor sharing the family.
type RefreshTokenRecord struct {
	TokenID       string
	UserID        string
	DeviceID      string
	FamilyID      string
	IssuedAt      time.Time
	ExpiresAt     time.Time
	RotatedTo     string
	Revoked       bool
	RevokedReason string
}

// Consumed reports whether the record has already been spent by a rotation.
func (r *RefreshTokenRecord) Consumed() bool {
	return r.RotatedTo != ""
}

func (r *RefreshTokenRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
