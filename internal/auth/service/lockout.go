package service

import (
	"context"
	"time"

	"github.com/communityride/auth-service/internal/auth/domain"
	"github.com/google/uuid"
)

// how far back to look when counting failures since the last success
const lockoutHistoryWindow = 24 * time.Hour

// LockoutTracker derives lockout state from the durable attempt log. Nothing
// is stored beyond the append-only attempts: the failure counter is computed
// as "failures since last success", so a successful login resets it for free.
type LockoutTracker struct {
	attempts  domain.LoginAttemptStore
	threshold int
	duration  time.Duration
	now       func() time.Time
}

func NewLockoutTracker(attempts domain.LoginAttemptStore, threshold int, duration time.Duration) *LockoutTracker {
	return &LockoutTracker{
		attempts:  attempts,
		threshold: threshold,
		duration:  duration,
		now:       time.Now,
	}
}

func (t *LockoutTracker) RecordAttempt(ctx context.Context, attempt *domain.LoginAttempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = t.now()
	}
	return t.attempts.Record(ctx, attempt)
}

func (t *LockoutTracker) IsLockedOut(ctx context.Context, userID string) (bool, error) {
	locked, _, err := t.Status(ctx, userID)
	return locked, err
}

func (t *LockoutTracker) RetryAfter(ctx context.Context, userID string) (time.Duration, error) {
	_, retry, err := t.Status(ctx, userID)
	return retry, err
}

// Status reports whether the account is locked and how long until it unlocks.
// The lockout window runs from the most recent failure, not the first, so an
// automated retry loop keeps pushing its own wait forward.
func (t *LockoutTracker) Status(ctx context.Context, userID string) (bool, time.Duration, error) {
	now := t.now()
	recent, err := t.attempts.RecentByUser(ctx, userID, now.Add(-lockoutHistoryWindow))
	if err != nil {
		return false, 0, err
	}

	failures := 0
	var lastFailure time.Time
	for _, a := range recent { // newest first
		if a.Successful {
			break
		}
		failures++
		if a.CreatedAt.After(lastFailure) {
			lastFailure = a.CreatedAt
		}
	}

	if failures < t.threshold {
		return false, 0, nil
	}

	unlockAt := lastFailure.Add(t.duration)
	if !now.Before(unlockAt) {
		return false, 0, nil
	}

	return true, unlockAt.Sub(now), nil
}
