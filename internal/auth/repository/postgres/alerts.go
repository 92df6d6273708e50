package postgres

import (
	"context"
	"fmt"

	"github.com/communityride/auth-service/internal/auth/domain"
)

type AlertRepository struct {
	db DB
}

func NewAlertRepository(db DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Insert(ctx context.Context, alert *domain.SecurityAlert) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO security_alerts (id, user_id, alert_type, severity, message, resolved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, alert.ID, alert.UserID, string(alert.Type), string(alert.Severity),
		alert.Message, alert.Resolved, alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert security alert: %w", err)
	}
	return nil
}
