package domain

import "time"

// LoginAttempt is an append-only audit row. The lockout tracker derives
// "failures since last success" from it and the risk engine uses the recent
// window for device and location novelty. Location is captured at attempt time
// so history never needs re-resolving through the geo provider.
type LoginAttempt struct {
	ID         string
	UserID     string
	IPAddress  string
	DeviceID   string
	Location   string
	Successful bool
	CreatedAt  time.Time
}
