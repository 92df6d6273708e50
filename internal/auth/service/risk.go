package service

import (
	"context"
	"time"

	"github.com/communityride/auth-service/config"
	"github.com/communityride/auth-service/internal/auth/domain"
	"github.com/rs/zerolog"
)

type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

const (
	SignalNewDevice     = "new_device"
	SignalNewLocation   = "new_location"
	SignalOddHour       = "odd_hour"
	SignalRecentFailure = "recent_failure"
	SignalVPN           = "vpn"
)

// minimum successful logins before the hour-of-day pattern is trusted
const oddHourMinHistory = 3

// LoginContext is everything the risk engine needs to score one attempt.
// Location is resolved by the caller (via Locate) so Score itself does no I/O
// and stays deterministic for a given history window.
type LoginContext struct {
	UserID         string
	IPAddress      string
	DeviceID       string
	Timestamp      time.Time
	Location       domain.Location
	RecentAttempts []domain.LoginAttempt
}

// RiskEngine turns a login context into an additive score. Signals are summed,
// never averaged, so one strong signal plus one weak one crosses into the
// elevated tiers even if neither would alone.
type RiskEngine struct {
	geo           domain.GeoProvider
	weights       config.RiskWeights
	mediumScore   int
	highScore     int
	failureWindow time.Duration
	geoTimeout    time.Duration
	logger        zerolog.Logger
}

func NewRiskEngine(geo domain.GeoProvider, cfg *config.Config, logger zerolog.Logger) *RiskEngine {
	return &RiskEngine{
		geo:           geo,
		weights:       cfg.RiskWeights,
		mediumScore:   cfg.RiskMediumScore,
		highScore:     cfg.RiskHighScore,
		failureWindow: cfg.FailureWindow,
		geoTimeout:    cfg.GeoTimeout,
		logger:        logger,
	}
}

// Locate resolves an IP through the geo provider with a hard timeout. Any
// failure degrades to an unknown location; it never blocks or fails a login.
func (e *RiskEngine) Locate(ctx context.Context, ip string) domain.Location {
	if e.geo == nil || ip == "" {
		return domain.Location{}
	}

	ctx, cancel := context.WithTimeout(ctx, e.geoTimeout)
	defer cancel()

	loc, err := e.geo.Locate(ctx, ip)
	if err != nil {
		e.logger.Debug().Err(err).Str("ip", ip).Msg("geo lookup failed, treating location as unknown")
		return domain.Location{}
	}
	return loc
}

func (e *RiskEngine) Score(lc LoginContext) (int, []string) {
	score := 0
	var signals []string

	if lc.DeviceID != "" && e.isNewDevice(lc) {
		score += e.weights.NewDevice
		signals = append(signals, SignalNewDevice)
	}
	if lc.Location.Known && e.isNewLocation(lc) {
		score += e.weights.NewLocation
		signals = append(signals, SignalNewLocation)
	}
	if e.isOddHour(lc) {
		score += e.weights.OddHour
		signals = append(signals, SignalOddHour)
	}
	if e.hasRecentFailure(lc) {
		score += e.weights.RecentFailure
		signals = append(signals, SignalRecentFailure)
	}
	if lc.Location.Proxy {
		score += e.weights.VPN
		signals = append(signals, SignalVPN)
	}

	return score, signals
}

func (e *RiskEngine) Classify(score int) RiskTier {
	switch {
	case score >= e.highScore:
		return RiskHigh
	case score >= e.mediumScore:
		return RiskMedium
	default:
		return RiskLow
	}
}

func (e *RiskEngine) isNewDevice(lc LoginContext) bool {
	for _, a := range lc.RecentAttempts {
		if a.Successful && a.DeviceID == lc.DeviceID {
			return false
		}
	}
	return true
}

func (e *RiskEngine) isNewLocation(lc LoginContext) bool {
	current := lc.Location.String()
	for _, a := range lc.RecentAttempts {
		if a.Successful && a.Location == current {
			return false
		}
	}
	return true
}

// isOddHour fires when the attempt's hour of day never appears among the
// user's successful logins. Requires a minimum history so a new account is
// not penalised for having no pattern yet.
func (e *RiskEngine) isOddHour(lc LoginContext) bool {
	var seen [24]bool
	successes := 0
	for _, a := range lc.RecentAttempts {
		if a.Successful {
			seen[a.CreatedAt.UTC().Hour()] = true
			successes++
		}
	}
	if successes < oddHourMinHistory {
		return false
	}
	return !seen[lc.Timestamp.UTC().Hour()]
}

// hasRecentFailure contributes once regardless of how many failures are in
// the window.
func (e *RiskEngine) hasRecentFailure(lc LoginContext) bool {
	cutoff := lc.Timestamp.Add(-e.failureWindow)
	for _, a := range lc.RecentAttempts {
		if !a.Successful && a.CreatedAt.After(cutoff) && !a.CreatedAt.After(lc.Timestamp) {
			return true
		}
	}
	return false
}
