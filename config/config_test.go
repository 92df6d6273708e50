package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/auth")
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://localhost:5432/auth", cfg.DBURL)
	assert.Equal(t, "test-secret", cfg.AccessTokenSecret)

	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)

	assert.Equal(t, 5, cfg.LockoutThreshold)
	assert.Equal(t, 15*time.Minute, cfg.LockoutDuration)

	assert.Equal(t, 20, cfg.RiskWeights.NewDevice)
	assert.Equal(t, 15, cfg.RiskWeights.NewLocation)
	assert.Equal(t, 10, cfg.RiskWeights.OddHour)
	assert.Equal(t, 25, cfg.RiskWeights.RecentFailure)
	assert.Equal(t, 5, cfg.RiskWeights.VPN)
	assert.Equal(t, 25, cfg.RiskMediumScore)
	assert.Equal(t, 50, cfg.RiskHighScore)
	assert.Equal(t, 90*24*time.Hour, cfg.RiskWindow)
	assert.Equal(t, 30*time.Minute, cfg.FailureWindow)

	assert.Equal(t, 500*time.Millisecond, cfg.GeoTimeout)
	assert.Equal(t, "https://api.pwnedpasswords.com", cfg.BreachCheckerURL)
	assert.Equal(t, 30*24*time.Hour, cfg.RetentionSweepAge)
	assert.Equal(t, time.Hour, cfg.RetentionSweepTick)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/auth")
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_EXPIRY_MIN", "5")
	t.Setenv("LOCKOUT_THRESHOLD", "3")
	t.Setenv("RISK_HIGH_SCORE", "60")
	t.Setenv("GEO_TIMEOUT_MS", "250")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 3, cfg.LockoutThreshold)
	assert.Equal(t, 60, cfg.RiskHighScore)
	assert.Equal(t, 250*time.Millisecond, cfg.GeoTimeout)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/auth")
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	t.Setenv("LOCKOUT_THRESHOLD", "not-a-number")

	cfg := Load()
	assert.Equal(t, 5, cfg.LockoutThreshold)
}
