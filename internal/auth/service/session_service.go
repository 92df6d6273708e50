package service

import (
	"context"
	"errors"
	"time"

	"github.com/communityride/auth-service/internal/auth/domain"
	"github.com/communityride/auth-service/internal/auth/dto"
	autherror "github.com/communityride/auth-service/internal/errors"
	"github.com/rs/zerolog"
)

// SessionService is the public face of the auth core: login, refresh, logout
// and revocation, composed from the flow, ledger, codec and alert emitter.
type SessionService struct {
	flow        *LoginFlow
	credentials domain.CredentialStore
	lockout     *LockoutTracker
	ledger      *Ledger
	codec       TokenGenerator
	alerts      *AlertEmitter
	breach      domain.BreachChecker
	logger      zerolog.Logger
}

func NewSessionService(
	flow *LoginFlow,
	credentials domain.CredentialStore,
	lockout *LockoutTracker,
	ledger *Ledger,
	codec TokenGenerator,
	alerts *AlertEmitter,
	breach domain.BreachChecker,
	logger zerolog.Logger,
) *SessionService {
	return &SessionService{
		flow:        flow,
		credentials: credentials,
		lockout:     lockout,
		ledger:      ledger,
		codec:       codec,
		alerts:      alerts,
		breach:      breach,
		logger:      logger,
	}
}

func (s *SessionService) Login(ctx context.Context, input dto.LoginInput) (*domain.LoginOutcome, error) {
	return s.flow.Run(ctx, input)
}

// TwoFactorLogin verifies the one-time code and, on success, re-enters the
// login flow at the verification gate.
func (s *SessionService) TwoFactorLogin(ctx context.Context, input dto.TwoFactorLoginInput) (*domain.LoginOutcome, error) {
	user, err := s.credentials.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.AccountStatus != domain.AccountActive {
		return &domain.LoginOutcome{Kind: domain.OutcomeRejected}, nil
	}

	locked, retryAfter, err := s.lockout.Status(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if locked {
		return &domain.LoginOutcome{Kind: domain.OutcomeLocked, RetryAfter: retryAfter}, nil
	}

	ok, err := s.credentials.VerifyTwoFactorCode(ctx, user.ID, input.Code)
	if err != nil {
		return nil, err
	}
	if !ok {
		if err := s.lockout.RecordAttempt(ctx, &domain.LoginAttempt{
			UserID:    user.ID,
			IPAddress: input.IPAddress,
			DeviceID:  input.DeviceID,
		}); err != nil {
			return nil, err
		}
		return &domain.LoginOutcome{Kind: domain.OutcomeRejected}, nil
	}

	return s.flow.Resume(ctx, user, input.DeviceID, input.IPAddress)
}

// Refresh rotates the presented token and mints a fresh access token. A
// replayed token poisons its whole family: every sibling is revoked and a
// TokenReuseDetected alert is raised before the caller sees a rejection.
func (s *SessionService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	successor, prior, err := s.ledger.Rotate(ctx, input.RefreshToken)
	if err != nil {
		if errors.Is(err, autherror.ErrTokenReused) && prior != nil {
			s.onReuseDetected(ctx, prior)
		}
		if isExpectedTokenError(err) {
			// Expiry, revocation and replay all collapse to one answer.
			return nil, autherror.ErrInvalidToken
		}
		return nil, err
	}

	user, err := s.credentials.FindByID(ctx, successor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.AccountStatus != domain.AccountActive {
		return nil, autherror.ErrInvalidToken
	}

	access, expiresAt, err := s.codec.IssueAccessToken(user.ID, user.Roles, user.TokenVersion)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: successor.TokenID,
		ExpiresAt:    expiresAt,
	}, nil
}

// Logout revokes refresh tokens for the device, or every device when none is
// given. Already-revoked tokens make it a no-op, never an error.
func (s *SessionService) Logout(ctx context.Context, userID, deviceID string) error {
	if deviceID == "" {
		return s.ledger.RevokeAllForUser(ctx, userID, reasonLogout)
	}
	return s.ledger.RevokeDevice(ctx, userID, deviceID, reasonLogout)
}

func (s *SessionService) RevokeToken(ctx context.Context, tokenID string) error {
	return s.ledger.RevokeOne(ctx, tokenID, reasonUserRevoked)
}

// RevokeAll revokes every refresh token for the user and bumps the identity's
// token version so outstanding access tokens die before their natural expiry.
func (s *SessionService) RevokeAll(ctx context.Context, userID string) error {
	if err := s.ledger.RevokeAllForUser(ctx, userID, reasonUserRevoked); err != nil {
		return err
	}
	if _, err := s.credentials.IncrementTokenVersion(ctx, userID); err != nil {
		return err
	}
	return nil
}

// VerifyAccess validates a bearer token against both the signature and the
// live identity: a stale token version or inactive account invalidates an
// otherwise well-formed token.
func (s *SessionService) VerifyAccess(ctx context.Context, token string) (*AccessClaims, error) {
	claims, err := s.codec.VerifyAccessToken(token)
	if err != nil {
		return nil, autherror.ErrInvalidToken
	}

	user, err := s.credentials.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil || user.AccountStatus != domain.AccountActive || user.TokenVersion != claims.TokenVersion {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}

// ChangePassword verifies the current password, refuses breached
// replacements, then rotates the credential and kills every session.
func (s *SessionService) ChangePassword(ctx context.Context, userID string, input dto.ChangePasswordInput) error {
	user, err := s.credentials.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || user.AccountStatus != domain.AccountActive {
		return autherror.ErrInvalidCredentials
	}

	ok, err := s.credentials.CheckPassword(ctx, userID, input.CurrentPassword)
	if err != nil {
		return err
	}
	if !ok {
		return autherror.ErrInvalidCredentials
	}

	if s.breach != nil {
		compromised, err := s.breach.IsCompromised(ctx, input.NewPassword)
		if err != nil {
			// Breach lookup is advisory; an unreachable checker does not
			// block a password change.
			s.logger.Warn().Err(err).Msg("breach check failed, skipping")
		} else if compromised {
			return autherror.ErrPasswordCompromised
		}
	}

	if err := s.credentials.UpdatePassword(ctx, userID, input.NewPassword); err != nil {
		return err
	}

	if err := s.RevokeAll(ctx, userID); err != nil {
		return err
	}

	if err := s.alerts.Emit(ctx, userID, domain.AlertPasswordChanged, domain.SeverityHigh,
		"password changed, all sessions revoked"); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to persist password change alert")
	}

	return nil
}

// SweepExpired deletes refresh token rows that expired before the cutoff.
func (s *SessionService) SweepExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	return s.ledger.SweepExpired(ctx, time.Now().Add(-olderThan))
}

func (s *SessionService) onReuseDetected(ctx context.Context, prior *domain.RefreshTokenRecord) {
	if err := s.ledger.RevokeFamily(ctx, prior.FamilyID, reasonReuseDetected); err != nil {
		s.logger.Error().Err(err).
			Str("family_id", prior.FamilyID).
			Msg("failed to revoke token family after reuse")
	}

	if err := s.alerts.Emit(ctx, prior.UserID, domain.AlertTokenReuseDetected, domain.SeverityCritical,
		"a previously rotated refresh token was replayed"); err != nil {
		s.logger.Error().Err(err).Str("user_id", prior.UserID).Msg("failed to persist token reuse alert")
	}
}

func isExpectedTokenError(err error) bool {
	return errors.Is(err, autherror.ErrTokenNotFound) ||
		errors.Is(err, autherror.ErrTokenExpired) ||
		errors.Is(err, autherror.ErrTokenReused)
}
