package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/communityride/auth-service/internal/auth/domain"
	"github.com/jackc/pgx/v5"
)

type LedgerRepository struct {
	db DB
}

func NewLedgerRepository(db DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) Insert(ctx context.Context, rec *domain.RefreshTokenRecord) error {
	query := `INSERT INTO refresh_tokens (token_id, user_id, device_id, family_id, issued_at, expires_at, revoked, revoked_reason)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		rec.TokenID, rec.UserID, rec.DeviceID, rec.FamilyID,
		rec.IssuedAt, rec.ExpiresAt, rec.Revoked, rec.RevokedReason)
	if err != nil {
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}
	return nil
}

func (r *LedgerRepository) GetByTokenID(ctx context.Context, tokenID string) (*domain.RefreshTokenRecord, error) {
	query := `
		SELECT token_id, user_id, device_id, family_id, issued_at, expires_at, rotated_to, revoked, revoked_reason
		FROM refresh_tokens
		WHERE token_id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, tokenID)

	var rec domain.RefreshTokenRecord
	var rotatedTo sql.NullString
	err := row.Scan(&rec.TokenID, &rec.UserID, &rec.DeviceID, &rec.FamilyID,
		&rec.IssuedAt, &rec.ExpiresAt, &rotatedTo, &rec.Revoked, &rec.RevokedReason)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	rec.RotatedTo = rotatedTo.String

	return &rec, nil
}

// ConsumeRotation is the single-winner step of rotation: a conditional update
// that only touches a row still unspent and unrevoked. Concurrent calls for
// the same token see at most one affected row between them.
func (r *LedgerRepository) ConsumeRotation(ctx context.Context, tokenID, successorID string) (bool, error) {
	query := `
		UPDATE refresh_tokens
		SET rotated_to = $2
		WHERE token_id = $1 AND rotated_to IS NULL AND revoked = FALSE
	`
	tag, err := r.db.Exec(ctx, query, tokenID, successorID)
	if err != nil {
		return false, fmt.Errorf("failed to consume refresh token: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *LedgerRepository) Revoke(ctx context.Context, tokenID, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked = TRUE, revoked_reason = $2
		WHERE token_id = $1 AND revoked = FALSE
	`, tokenID, reason)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (r *LedgerRepository) RevokeFamily(ctx context.Context, familyID, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked = TRUE, revoked_reason = $2
		WHERE family_id = $1 AND revoked = FALSE
	`, familyID, reason)
	if err != nil {
		return fmt.Errorf("failed to revoke token family: %w", err)
	}
	return nil
}

func (r *LedgerRepository) RevokeAllForUser(ctx context.Context, userID, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked = TRUE, revoked_reason = $2
		WHERE user_id = $1 AND revoked = FALSE AND expires_at > now()
	`, userID, reason)
	if err != nil {
		return fmt.Errorf("failed to revoke tokens for user: %w", err)
	}
	return nil
}

func (r *LedgerRepository) RevokeDevice(ctx context.Context, userID, deviceID, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked = TRUE, revoked_reason = $3
		WHERE user_id = $1 AND device_id = $2 AND revoked = FALSE AND expires_at > now()
	`, userID, deviceID, reason)
	if err != nil {
		return fmt.Errorf("failed to revoke tokens for device: %w", err)
	}
	return nil
}

func (r *LedgerRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired refresh tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
