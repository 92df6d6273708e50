package service

import (
	"context"
	"strings"
	"time"

	"github.com/communityride/auth-service/internal/auth/domain"
	"github.com/communityride/auth-service/internal/auth/dto"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LoginFlow is the login state machine: credential check, lockout check, risk
// evaluation, the 2FA and email-verification gates, and finally token
// issuance. Every exit is one of the LoginOutcome terminals; errors are
// reserved for infrastructure faults.
type LoginFlow struct {
	credentials domain.CredentialStore
	attempts    domain.LoginAttemptStore
	devices     domain.TrustedDeviceStore
	lockout     *LockoutTracker
	risk        *RiskEngine
	ledger      *Ledger
	codec       TokenGenerator
	alerts      *AlertEmitter
	riskWindow  time.Duration
	logger      zerolog.Logger
}

func NewLoginFlow(
	credentials domain.CredentialStore,
	attempts domain.LoginAttemptStore,
	devices domain.TrustedDeviceStore,
	lockout *LockoutTracker,
	risk *RiskEngine,
	ledger *Ledger,
	codec TokenGenerator,
	alerts *AlertEmitter,
	riskWindow time.Duration,
	logger zerolog.Logger,
) *LoginFlow {
	return &LoginFlow{
		credentials: credentials,
		attempts:    attempts,
		devices:     devices,
		lockout:     lockout,
		risk:        risk,
		ledger:      ledger,
		codec:       codec,
		alerts:      alerts,
		riskWindow:  riskWindow,
		logger:      logger,
	}
}

func (f *LoginFlow) Run(ctx context.Context, input dto.LoginInput) (*domain.LoginOutcome, error) {
	user, err := f.credentials.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	// Unknown email, suspended and locked accounts all look identical to the
	// caller: no enumeration through the login endpoint.
	if user == nil || user.AccountStatus != domain.AccountActive {
		return &domain.LoginOutcome{Kind: domain.OutcomeRejected}, nil
	}

	// Lockout is consulted before the password check so a locked account
	// answers in the same time whether or not the password is right.
	if outcome, err := f.lockoutGate(ctx, user.ID); outcome != nil || err != nil {
		return outcome, err
	}

	ok, err := f.credentials.CheckPassword(ctx, user.ID, input.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		if err := f.recordFailure(ctx, user.ID, input.IPAddress, input.DeviceID); err != nil {
			return nil, err
		}
		return &domain.LoginOutcome{Kind: domain.OutcomeRejected}, nil
	}

	// Re-check after the password: the counter may have crossed the
	// threshold between the first gate and now.
	if outcome, err := f.lockoutGate(ctx, user.ID); outcome != nil || err != nil {
		return outcome, err
	}

	lc, err := f.buildContext(ctx, user.ID, input.IPAddress, input.DeviceID)
	if err != nil {
		return nil, err
	}

	score, signals := f.risk.Score(lc)
	tier := f.risk.Classify(score)
	f.evaluateRisk(ctx, user.ID, score, signals, tier)

	if user.TwoFactorEnabled {
		return &domain.LoginOutcome{
			Kind:         domain.OutcomeRequiresTwoFactor,
			ChallengeRef: uuid.NewString(),
		}, nil
	}

	return f.finish(ctx, user, input.DeviceID, input.IPAddress, lc.Location)
}

// Resume re-enters the machine at the verification gate after an external
// step (2FA code check) succeeded.
func (f *LoginFlow) Resume(ctx context.Context, user *domain.Identity, deviceID, ip string) (*domain.LoginOutcome, error) {
	loc := f.risk.Locate(ctx, ip)
	return f.finish(ctx, user, deviceID, ip, loc)
}

func (f *LoginFlow) lockoutGate(ctx context.Context, userID string) (*domain.LoginOutcome, error) {
	locked, retryAfter, err := f.lockout.Status(ctx, userID)
	if err != nil {
		return nil, err
	}
	if locked {
		return &domain.LoginOutcome{Kind: domain.OutcomeLocked, RetryAfter: retryAfter}, nil
	}
	return nil, nil
}

func (f *LoginFlow) recordFailure(ctx context.Context, userID, ip, deviceID string) error {
	if err := f.lockout.RecordAttempt(ctx, &domain.LoginAttempt{
		UserID:    userID,
		IPAddress: ip,
		DeviceID:  deviceID,
	}); err != nil {
		return err
	}

	// If this failure tipped the account into lockout, raise the alert once.
	locked, _, err := f.lockout.Status(ctx, userID)
	if err != nil {
		return err
	}
	if locked {
		if err := f.alerts.Emit(ctx, userID, domain.AlertAccountLocked, domain.SeverityHigh,
			"account locked after repeated failed login attempts"); err != nil {
			f.logger.Error().Err(err).Str("user_id", userID).Msg("failed to persist lockout alert")
		}
	}

	return nil
}

func (f *LoginFlow) buildContext(ctx context.Context, userID, ip, deviceID string) (LoginContext, error) {
	now := time.Now()
	history, err := f.attempts.RecentByUser(ctx, userID, now.Add(-f.riskWindow))
	if err != nil {
		return LoginContext{}, err
	}

	return LoginContext{
		UserID:         userID,
		IPAddress:      ip,
		DeviceID:       deviceID,
		Timestamp:      now,
		Location:       f.risk.Locate(ctx, ip),
		RecentAttempts: history,
	}, nil
}

// evaluateRisk raises alerts for elevated tiers. It never blocks the login:
// a high score flags the attempt, it does not deny it.
func (f *LoginFlow) evaluateRisk(ctx context.Context, userID string, score int, signals []string, tier RiskTier) {
	if tier == RiskLow {
		return
	}

	severity := domain.SeverityMedium
	if tier == RiskHigh {
		severity = domain.SeverityHigh
	}

	msg := "elevated login risk: " + strings.Join(signals, ", ")
	if err := f.alerts.Emit(ctx, userID, domain.AlertSuspiciousActivity, severity, msg); err != nil {
		f.logger.Error().Err(err).Str("user_id", userID).Int("score", score).
			Msg("failed to persist suspicious activity alert")
	}

	for _, s := range signals {
		if s != SignalNewDevice {
			continue
		}
		if err := f.alerts.Emit(ctx, userID, domain.AlertNewDeviceLogin, domain.SeverityMedium,
			"login from a device not seen before"); err != nil {
			f.logger.Error().Err(err).Str("user_id", userID).Msg("failed to persist new device alert")
		}
	}
}

func (f *LoginFlow) finish(ctx context.Context, user *domain.Identity, deviceID, ip string, loc domain.Location) (*domain.LoginOutcome, error) {
	if !user.EmailVerified {
		return &domain.LoginOutcome{Kind: domain.OutcomeRequiresVerification, User: user}, nil
	}

	if err := f.lockout.RecordAttempt(ctx, &domain.LoginAttempt{
		UserID:     user.ID,
		IPAddress:  ip,
		DeviceID:   deviceID,
		Location:   loc.String(),
		Successful: true,
	}); err != nil {
		return nil, err
	}

	if deviceID != "" {
		if err := f.devices.Upsert(ctx, user.ID, deviceID, ip); err != nil {
			f.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to upsert trusted device")
		}
	}

	refresh, err := f.ledger.Issue(ctx, user.ID, deviceID)
	if err != nil {
		return nil, err
	}

	access, expiresAt, err := f.codec.IssueAccessToken(user.ID, user.Roles, user.TokenVersion)
	if err != nil {
		return nil, err
	}

	return &domain.LoginOutcome{
		Kind:         domain.OutcomeSuccess,
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh.TokenID,
		ExpiresAt:    expiresAt,
	}, nil
}
