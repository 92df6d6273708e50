package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/communityride/auth-service/internal/auth/domain"
	"github.com/communityride/auth-service/internal/platform/totp"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// CredentialRepository is the Postgres-backed implementation of the external
// credential store interface. The service layer never depends on it directly;
// any identity backend satisfying domain.CredentialStore would do.
type CredentialRepository struct {
	db DB
}

func NewCredentialRepository(db DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

const identityColumns = `id, email, password_hash, account_status, email_verified, two_factor_enabled, roles, token_version, created_at, updated_at`

func (r *CredentialRepository) FindByID(ctx context.Context, id string) (*domain.Identity, error) {
	return r.findOne(ctx, `SELECT `+identityColumns+` FROM users WHERE id = $1 LIMIT 1;`, id)
}

func (r *CredentialRepository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	return r.findOne(ctx, `SELECT `+identityColumns+` FROM users WHERE email = $1 LIMIT 1;`, email)
}

func (r *CredentialRepository) findOne(ctx context.Context, query string, arg any) (*domain.Identity, error) {
	row := r.db.QueryRow(ctx, query, arg)

	var u domain.Identity
	var status string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &status, &u.EmailVerified,
		&u.TwoFactorEnabled, &u.Roles, &u.TokenVersion, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}
	u.AccountStatus = domain.AccountStatus(status)

	return &u, nil
}

func (r *CredentialRepository) CheckPassword(ctx context.Context, id, password string) (bool, error) {
	var hash string
	err := r.db.QueryRow(ctx, `SELECT password_hash FROM users WHERE id = $1 LIMIT 1;`, id).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get password hash: %w", err)
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}

func (r *CredentialRepository) VerifyTwoFactorCode(ctx context.Context, id, code string) (bool, error) {
	var secret sql.NullString
	err := r.db.QueryRow(ctx, `SELECT two_factor_secret FROM users WHERE id = $1 LIMIT 1;`, id).Scan(&secret)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get two-factor secret: %w", err)
	}
	if !secret.Valid || secret.String == "" {
		return false, nil
	}

	return totp.Verify(secret.String, code, time.Now())
}

func (r *CredentialRepository) UpdatePassword(ctx context.Context, id, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1
	`, id, string(hash))
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (r *CredentialRepository) IncrementTokenVersion(ctx context.Context, id string) (int, error) {
	var version int
	err := r.db.QueryRow(ctx, `
		UPDATE users SET token_version = token_version + 1, updated_at = now()
		WHERE id = $1
		RETURNING token_version
	`, id).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to increment token version: %w", err)
	}
	return version, nil
}
