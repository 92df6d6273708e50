package domain

import "time"

type AlertType string

const (
	AlertSuspiciousActivity AlertType = "suspicious_activity"
	AlertNewDeviceLogin     AlertType = "new_device_login"
	AlertAccountLocked      AlertType = "account_locked"
	AlertTokenReuseDetected AlertType = "token_reuse_detected"
	AlertPasswordChanged    AlertType = "password_changed"
)

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// Notifiable reports whether the severity warrants pushing through the
// notification sender. Lower severities are persisted silently.
func (s AlertSeverity) Notifiable() bool {
	return s == SeverityHigh || s == SeverityCritical
}

type SecurityAlert struct {
	ID        string
	UserID    string
	Type      AlertType
	Severity  AlertSeverity
	Message   string
	Resolved  bool
	CreatedAt time.Time
}
