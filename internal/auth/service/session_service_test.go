package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/communityride/auth-service/internal/auth/domain"
	"github.com/communityride/auth-service/internal/auth/dto"
	"github.com/communityride/auth-service/internal/auth/service"
	autherror "github.com/communityride/auth-service/internal/errors"
	"github.com/communityride/auth-service/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	cred     *mocks.MockCredentialStore
	attempts *mocks.MockLoginAttemptStore
	devices  *mocks.MockTrustedDeviceStore
	alerts   *mocks.MockSecurityAlertStore
	notifier *mocks.MockNotificationSender
	breach   *mocks.MockBreachChecker
	store    *fakeTokenStore
	codec    *service.TokenCodec
	sessions *service.SessionService
}

func newSessionFixture(ctrl *gomock.Controller) *sessionFixture {
	f := &sessionFixture{
		cred:     mocks.NewMockCredentialStore(ctrl),
		attempts: mocks.NewMockLoginAttemptStore(ctrl),
		devices:  mocks.NewMockTrustedDeviceStore(ctrl),
		alerts:   mocks.NewMockSecurityAlertStore(ctrl),
		notifier: mocks.NewMockNotificationSender(ctrl),
		breach:   mocks.NewMockBreachChecker(ctrl),
		store:    newFakeTokenStore(),
	}

	cfg := riskConfig()
	cfg.RiskWindow = 90 * 24 * time.Hour

	f.codec = service.NewTokenCodec("session-test-secret", 15*time.Minute, time.Hour)
	ledger := service.NewLedger(f.store, f.codec, time.Hour)
	lockout := service.NewLockoutTracker(f.attempts, 5, 15*time.Minute)
	risk := service.NewRiskEngine(nil, cfg, zerolog.Nop())
	emitter := service.NewAlertEmitter(f.alerts, f.notifier, zerolog.Nop())
	flow := service.NewLoginFlow(f.cred, f.attempts, f.devices, lockout, risk, ledger, f.codec, emitter, cfg.RiskWindow, zerolog.Nop())
	f.sessions = service.NewSessionService(flow, f.cred, lockout, ledger, f.codec, emitter, f.breach, zerolog.Nop())

	return f
}

func activeUser() *domain.Identity {
	return &domain.Identity{
		ID:            "user-1",
		Email:         "rider@example.com",
		AccountStatus: domain.AccountActive,
		EmailVerified: true,
		Roles:         []string{"user"},
		TokenVersion:  2,
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	user := activeUser()

	f.cred.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	f.attempts.EXPECT().RecentByUser(gomock.Any(), user.ID, gomock.Any()).Return(nil, nil).AnyTimes()
	f.cred.EXPECT().CheckPassword(gomock.Any(), user.ID, "correct-password").Return(true, nil)
	f.attempts.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.LoginAttempt) error {
			assert.True(t, a.Successful)
			assert.Equal(t, user.ID, a.UserID)
			return nil
		})
	f.devices.EXPECT().Upsert(gomock.Any(), user.ID, "dev-1", "203.0.113.9").Return(nil)

	before := time.Now()
	outcome, err := f.sessions.Login(context.Background(), dto.LoginInput{
		Email:     user.Email,
		Password:  "correct-password",
		DeviceID:  "dev-1",
		IPAddress: "203.0.113.9",
	})
	require.NoError(t, err)

	require.Equal(t, domain.OutcomeSuccess, outcome.Kind)
	assert.NotEmpty(t, outcome.AccessToken)
	assert.NotEmpty(t, outcome.RefreshToken)
	assert.WithinDuration(t, before.Add(15*time.Minute), outcome.ExpiresAt, 2*time.Second)

	claims, err := f.codec.VerifyAccessToken(outcome.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.TokenVersion, claims.TokenVersion)

	rec, err := f.store.GetByTokenID(context.Background(), outcome.RefreshToken)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "dev-1", rec.DeviceID)
}

func TestSessionService_Login_Rejected(t *testing.T) {
	tests := []struct {
		name string
		user *domain.Identity
	}{
		{name: "unknown email", user: nil},
		{name: "suspended account", user: &domain.Identity{
			ID: "user-1", Email: "rider@example.com", AccountStatus: domain.AccountSuspended,
		}},
		{name: "pending verification status", user: &domain.Identity{
			ID: "user-1", Email: "rider@example.com", AccountStatus: domain.AccountPendingVerification,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newSessionFixture(ctrl)
			f.cred.EXPECT().FindByEmail(gomock.Any(), "rider@example.com").Return(tt.user, nil)

			outcome, err := f.sessions.Login(context.Background(), dto.LoginInput{
				Email: "rider@example.com", Password: "whatever",
			})
			require.NoError(t, err)
			assert.Equal(t, domain.OutcomeRejected, outcome.Kind)
		})
	}
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	user := activeUser()

	f.cred.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	f.attempts.EXPECT().RecentByUser(gomock.Any(), user.ID, gomock.Any()).Return(nil, nil).AnyTimes()
	f.cred.EXPECT().CheckPassword(gomock.Any(), user.ID, "wrong").Return(false, nil)
	f.attempts.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.LoginAttempt) error {
			assert.False(t, a.Successful)
			return nil
		})

	outcome, err := f.sessions.Login(context.Background(), dto.LoginInput{
		Email: user.Email, Password: "wrong",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRejected, outcome.Kind)
}

// Correct credentials do not bypass an active lockout.
func TestSessionService_Login_LockedDespiteValidPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	user := activeUser()

	f.cred.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	f.attempts.EXPECT().RecentByUser(gomock.Any(), user.ID, gomock.Any()).
		Return(failuresEndingAt(5, time.Now()), nil)

	outcome, err := f.sessions.Login(context.Background(), dto.LoginInput{
		Email: user.Email, Password: "correct-password",
	})
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeLocked, outcome.Kind)
	assert.Greater(t, outcome.RetryAfter, time.Duration(0))
}

func TestSessionService_Login_TwoFactorGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	user := activeUser()
	user.TwoFactorEnabled = true

	f.cred.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	f.attempts.EXPECT().RecentByUser(gomock.Any(), user.ID, gomock.Any()).Return(nil, nil).AnyTimes()
	f.cred.EXPECT().CheckPassword(gomock.Any(), user.ID, "correct-password").Return(true, nil)

	outcome, err := f.sessions.Login(context.Background(), dto.LoginInput{
		Email: user.Email, Password: "correct-password",
	})
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeRequiresTwoFactor, outcome.Kind)
	assert.NotEmpty(t, outcome.ChallengeRef)
	assert.Empty(t, outcome.AccessToken)
}

func TestSessionService_Login_VerificationGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	user := activeUser()
	user.EmailVerified = false

	f.cred.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	f.attempts.EXPECT().RecentByUser(gomock.Any(), user.ID, gomock.Any()).Return(nil, nil).AnyTimes()
	f.cred.EXPECT().CheckPassword(gomock.Any(), user.ID, "correct-password").Return(true, nil)

	outcome, err := f.sessions.Login(context.Background(), dto.LoginInput{
		Email: user.Email, Password: "correct-password",
	})
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeRequiresVerification, outcome.Kind)
	require.NotNil(t, outcome.User)
	assert.Empty(t, outcome.AccessToken)
	assert.Empty(t, outcome.RefreshToken)
}

func TestSessionService_TwoFactorLogin(t *testing.T) {
	t.Run("valid code issues tokens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newSessionFixture(ctrl)
		user := activeUser()
		user.TwoFactorEnabled = true

		f.cred.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		f.attempts.EXPECT().RecentByUser(gomock.Any(), user.ID, gomock.Any()).Return(nil, nil).AnyTimes()
		f.cred.EXPECT().VerifyTwoFactorCode(gomock.Any(), user.ID, "123456").Return(true, nil)
		f.attempts.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
		f.devices.EXPECT().Upsert(gomock.Any(), user.ID, "dev-1", gomock.Any()).Return(nil)

		outcome, err := f.sessions.TwoFactorLogin(context.Background(), dto.TwoFactorLoginInput{
			Email: user.Email, Code: "123456", DeviceID: "dev-1",
		})
		require.NoError(t, err)
		require.Equal(t, domain.OutcomeSuccess, outcome.Kind)
		assert.NotEmpty(t, outcome.AccessToken)
		assert.NotEmpty(t, outcome.RefreshToken)
	})

	t.Run("invalid code is rejected and recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newSessionFixture(ctrl)
		user := activeUser()
		user.TwoFactorEnabled = true

		f.cred.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		f.attempts.EXPECT().RecentByUser(gomock.Any(), user.ID, gomock.Any()).Return(nil, nil)
		f.cred.EXPECT().VerifyTwoFactorCode(gomock.Any(), user.ID, "000000").Return(false, nil)
		f.attempts.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a *domain.LoginAttempt) error {
				assert.False(t, a.Successful)
				return nil
			})

		outcome, err := f.sessions.TwoFactorLogin(context.Background(), dto.TwoFactorLoginInput{
			Email: user.Email, Code: "000000",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeRejected, outcome.Kind)
	})
}

func (f *sessionFixture) seedRefreshToken(t *testing.T, userID, deviceID string) *domain.RefreshTokenRecord {
	t.Helper()
	ledger := service.NewLedger(f.store, f.codec, time.Hour)
	rec, err := ledger.Issue(context.Background(), userID, deviceID)
	require.NoError(t, err)
	return rec
}

func TestSessionService_Refresh_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	user := activeUser()
	first := f.seedRefreshToken(t, user.ID, "dev-1")

	f.cred.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

	tokens, err := f.sessions.Refresh(context.Background(), dto.RefreshInput{RefreshToken: first.TokenID})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEqual(t, first.TokenID, tokens.RefreshToken)

	// old token is consumed, successor shares the family
	old, err := f.store.GetByTokenID(context.Background(), first.TokenID)
	require.NoError(t, err)
	assert.Equal(t, tokens.RefreshToken, old.RotatedTo)
}

// A replayed refresh token poisons its entire family: the replay is rejected,
// an alert fires, and even the legitimate newest token stops working.
func TestSessionService_Refresh_ReusePoisonsFamily(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	user := activeUser()
	first := f.seedRefreshToken(t, user.ID, "dev-1")

	f.cred.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

	rotated, err := f.sessions.Refresh(context.Background(), dto.RefreshInput{RefreshToken: first.TokenID})
	require.NoError(t, err)

	var emitted []*domain.SecurityAlert
	f.alerts.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.SecurityAlert) error {
			emitted = append(emitted, a)
			return nil
		}).AnyTimes()
	// delivery failure must not change the outcome
	f.notifier.EXPECT().SendAlert(gomock.Any(), user.ID, gomock.Any()).
		Return(errors.New("smtp down")).AnyTimes()

	_, err = f.sessions.Refresh(context.Background(), dto.RefreshInput{RefreshToken: first.TokenID})
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)

	require.NotEmpty(t, emitted)
	assert.Equal(t, domain.AlertTokenReuseDetected, emitted[0].Type)
	assert.Equal(t, domain.SeverityCritical, emitted[0].Severity)

	// follow-up refresh on the legitimate latest token also fails
	_, err = f.sessions.Refresh(context.Background(), dto.RefreshInput{RefreshToken: rotated.RefreshToken})
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestSessionService_Refresh_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)

	_, err := f.sessions.Refresh(context.Background(), dto.RefreshInput{RefreshToken: "no-such-token"})
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestSessionService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	user := activeUser()
	phone := f.seedRefreshToken(t, user.ID, "phone")
	laptop := f.seedRefreshToken(t, user.ID, "laptop")

	// device-scoped logout only kills that device's tokens
	require.NoError(t, f.sessions.Logout(context.Background(), user.ID, "phone"))

	rec, err := f.store.GetByTokenID(context.Background(), phone.TokenID)
	require.NoError(t, err)
	assert.True(t, rec.Revoked)

	rec, err = f.store.GetByTokenID(context.Background(), laptop.TokenID)
	require.NoError(t, err)
	assert.False(t, rec.Revoked)

	// logging out twice is a no-op the second time
	require.NoError(t, f.sessions.Logout(context.Background(), user.ID, "phone"))

	// no device: everything goes
	require.NoError(t, f.sessions.Logout(context.Background(), user.ID, ""))
	rec, err = f.store.GetByTokenID(context.Background(), laptop.TokenID)
	require.NoError(t, err)
	assert.True(t, rec.Revoked)

	require.NoError(t, f.sessions.Logout(context.Background(), user.ID, ""))
}

// Global revocation kills refresh tokens and, through the version bump,
// outstanding access tokens as well.
func TestSessionService_RevokeAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	user := activeUser()
	rec := f.seedRefreshToken(t, user.ID, "dev-1")

	access, _, err := f.codec.IssueAccessToken(user.ID, user.Roles, user.TokenVersion)
	require.NoError(t, err)

	f.cred.EXPECT().IncrementTokenVersion(gomock.Any(), user.ID).Return(user.TokenVersion+1, nil)
	require.NoError(t, f.sessions.RevokeAll(context.Background(), user.ID))

	stored, err := f.store.GetByTokenID(context.Background(), rec.TokenID)
	require.NoError(t, err)
	assert.True(t, stored.Revoked)

	bumped := activeUser()
	bumped.TokenVersion = user.TokenVersion + 1
	f.cred.EXPECT().FindByID(gomock.Any(), user.ID).Return(bumped, nil)

	_, err = f.sessions.VerifyAccess(context.Background(), access)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestSessionService_VerifyAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSessionFixture(ctrl)
	user := activeUser()

	access, _, err := f.codec.IssueAccessToken(user.ID, user.Roles, user.TokenVersion)
	require.NoError(t, err)

	f.cred.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

	claims, err := f.sessions.VerifyAccess(context.Background(), access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.Roles, claims.Roles)
}

func TestSessionService_ChangePassword(t *testing.T) {
	t.Run("success revokes sessions and alerts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newSessionFixture(ctrl)
		user := activeUser()
		rec := f.seedRefreshToken(t, user.ID, "dev-1")

		f.cred.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		f.cred.EXPECT().CheckPassword(gomock.Any(), user.ID, "old-password").Return(true, nil)
		f.breach.EXPECT().IsCompromised(gomock.Any(), "new-password-42").Return(false, nil)
		f.cred.EXPECT().UpdatePassword(gomock.Any(), user.ID, "new-password-42").Return(nil)
		f.cred.EXPECT().IncrementTokenVersion(gomock.Any(), user.ID).Return(3, nil)
		f.alerts.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a *domain.SecurityAlert) error {
				assert.Equal(t, domain.AlertPasswordChanged, a.Type)
				return nil
			})
		f.notifier.EXPECT().SendAlert(gomock.Any(), user.ID, gomock.Any()).Return(nil)

		err := f.sessions.ChangePassword(context.Background(), user.ID, dto.ChangePasswordInput{
			CurrentPassword: "old-password", NewPassword: "new-password-42",
		})
		require.NoError(t, err)

		stored, err := f.store.GetByTokenID(context.Background(), rec.TokenID)
		require.NoError(t, err)
		assert.True(t, stored.Revoked)
	})

	t.Run("breached password is refused before any mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newSessionFixture(ctrl)
		user := activeUser()

		f.cred.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		f.cred.EXPECT().CheckPassword(gomock.Any(), user.ID, "old-password").Return(true, nil)
		f.breach.EXPECT().IsCompromised(gomock.Any(), "password123").Return(true, nil)

		err := f.sessions.ChangePassword(context.Background(), user.ID, dto.ChangePasswordInput{
			CurrentPassword: "old-password", NewPassword: "password123",
		})
		assert.ErrorIs(t, err, autherror.ErrPasswordCompromised)
	})

	t.Run("wrong current password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newSessionFixture(ctrl)
		user := activeUser()

		f.cred.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		f.cred.EXPECT().CheckPassword(gomock.Any(), user.ID, "wrong").Return(false, nil)

		err := f.sessions.ChangePassword(context.Background(), user.ID, dto.ChangePasswordInput{
			CurrentPassword: "wrong", NewPassword: "new-password-42",
		})
		assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	})
}
