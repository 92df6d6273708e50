package service

import (
	"context"
	"fmt"
	"time"

	"github.com/communityride/auth-service/internal/auth/domain"
	autherror "github.com/communityride/auth-service/internal/errors"
	"github.com/google/uuid"
)

const (
	reasonReuseDetected = "token reuse detected"
	reasonLogout        = "logout"
	reasonUserRevoked   = "revoked for user"
)

// Ledger owns the lifecycle of refresh token records: issuance, single-use
// rotation with reuse detection, and revocation.
type Ledger struct {
	store      domain.RefreshTokenStore
	codec      TokenGenerator
	refreshTTL time.Duration
}

func NewLedger(store domain.RefreshTokenStore, codec TokenGenerator, refreshTTL time.Duration) *Ledger {
	return &Ledger{
		store:      store,
		codec:      codec,
		refreshTTL: refreshTTL,
	}
}

// Issue creates the first token of a new family.
func (l *Ledger) Issue(ctx context.Context, userID, deviceID string) (*domain.RefreshTokenRecord, error) {
	tokenID, err := l.codec.NewRefreshTokenID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rec := &domain.RefreshTokenRecord{
		TokenID:   tokenID,
		UserID:    userID,
		DeviceID:  deviceID,
		FamilyID:  uuid.NewString(),
		IssuedAt:  now,
		ExpiresAt: now.Add(l.refreshTTL),
	}

	if err := l.store.Insert(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rec, nil
}

// Rotate exchanges tokenID for a successor in the same family. The returned
// record pointer is the prior record when one exists, so callers can act on
// its family after a reuse error. Two rotations racing on the same token are
// settled by the store's conditional update: exactly one wins.
func (l *Ledger) Rotate(ctx context.Context, tokenID string) (*domain.RefreshTokenRecord, *domain.RefreshTokenRecord, error) {
	rec, err := l.store.GetByTokenID(ctx, tokenID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, autherror.ErrTokenNotFound
	}

	if rec.Revoked || rec.Consumed() {
		return nil, rec, autherror.ErrTokenReused
	}
	if rec.Expired(time.Now()) {
		return nil, rec, autherror.ErrTokenExpired
	}

	successorID, err := l.codec.NewRefreshTokenID()
	if err != nil {
		return nil, rec, err
	}

	won, err := l.store.ConsumeRotation(ctx, tokenID, successorID)
	if err != nil {
		return nil, rec, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if !won {
		// Lost the conditional update: someone else already spent this token.
		return nil, rec, autherror.ErrTokenReused
	}

	now := time.Now()
	successor := &domain.RefreshTokenRecord{
		TokenID:   successorID,
		UserID:    rec.UserID,
		DeviceID:  rec.DeviceID,
		FamilyID:  rec.FamilyID,
		IssuedAt:  now,
		ExpiresAt: now.Add(l.refreshTTL),
	}

	if err := l.store.Insert(ctx, successor); err != nil {
		return nil, rec, fmt.Errorf("failed to store rotated refresh token: %w", err)
	}

	return successor, rec, nil
}

func (l *Ledger) RevokeOne(ctx context.Context, tokenID, reason string) error {
	return l.store.Revoke(ctx, tokenID, reason)
}

// RevokeFamily kills the whole rotation chain, not just one token. Used when
// reuse is detected.
func (l *Ledger) RevokeFamily(ctx context.Context, familyID, reason string) error {
	return l.store.RevokeFamily(ctx, familyID, reason)
}

func (l *Ledger) RevokeAllForUser(ctx context.Context, userID, reason string) error {
	return l.store.RevokeAllForUser(ctx, userID, reason)
}

func (l *Ledger) RevokeDevice(ctx context.Context, userID, deviceID, reason string) error {
	return l.store.RevokeDevice(ctx, userID, deviceID, reason)
}

// SweepExpired deletes records that expired before the cutoff. Storage
// hygiene only; expired tokens are already rejected at use time.
func (l *Ledger) SweepExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	return l.store.DeleteExpiredBefore(ctx, cutoff)
}
