package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/communityride/auth-service/internal/auth/domain"
)

type AttemptRepository struct {
	db DB
}

func NewAttemptRepository(db DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

func (r *AttemptRepository) Record(ctx context.Context, attempt *domain.LoginAttempt) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_attempts (id, user_id, ip_address, device_id, location, successful, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, attempt.ID, attempt.UserID, attempt.IPAddress, attempt.DeviceID,
		attempt.Location, attempt.Successful, attempt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}
	return nil
}

func (r *AttemptRepository) RecentByUser(ctx context.Context, userID string, since time.Time) ([]domain.LoginAttempt, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, ip_address, device_id, location, successful, created_at
		FROM login_attempts
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at DESC
	`, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query login attempts: %w", err)
	}
	defer rows.Close()

	var attempts []domain.LoginAttempt
	for rows.Next() {
		var a domain.LoginAttempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.IPAddress, &a.DeviceID,
			&a.Location, &a.Successful, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan login attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read login attempts: %w", err)
	}

	return attempts, nil
}

type TrustedDeviceRepository struct {
	db DB
}

func NewTrustedDeviceRepository(db DB) *TrustedDeviceRepository {
	return &TrustedDeviceRepository{db: db}
}

func (r *TrustedDeviceRepository) Upsert(ctx context.Context, userID, deviceID, ip string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO trusted_devices (user_id, device_id, ip_address, last_seen, created_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (user_id, device_id)
		DO UPDATE SET
			last_seen = now(),
			ip_address = EXCLUDED.ip_address
	`, userID, deviceID, ip)
	if err != nil {
		return fmt.Errorf("failed to upsert trusted device: %w", err)
	}
	return nil
}
