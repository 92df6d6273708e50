package service

import (
	"context"
	"time"

	"github.com/communityride/auth-service/internal/auth/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AlertEmitter persists security alerts and pushes the severe ones to the
// notification sender. Persistence and delivery are independent: a dead
// sender never fails the caller.
type AlertEmitter struct {
	store    domain.SecurityAlertStore
	notifier domain.NotificationSender
	logger   zerolog.Logger
}

func NewAlertEmitter(store domain.SecurityAlertStore, notifier domain.NotificationSender, logger zerolog.Logger) *AlertEmitter {
	return &AlertEmitter{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

func (e *AlertEmitter) Emit(ctx context.Context, userID string, typ domain.AlertType, severity domain.AlertSeverity, message string) error {
	alert := &domain.SecurityAlert{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		Severity:  severity,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := e.store.Insert(ctx, alert); err != nil {
		return err
	}

	e.logger.Info().
		Str("user_id", userID).
		Str("type", string(typ)).
		Str("severity", string(severity)).
		Msg("security alert raised")

	if severity.Notifiable() && e.notifier != nil {
		if err := e.notifier.SendAlert(ctx, userID, alert); err != nil {
			e.logger.Warn().Err(err).
				Str("user_id", userID).
				Str("type", string(typ)).
				Msg("alert notification delivery failed")
		}
	}

	return nil
}
