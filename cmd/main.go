package main

import (
	"context"
	"os"
	"time"

	"github.com/communityride/auth-service/config"
	"github.com/communityride/auth-service/db"
	"github.com/communityride/auth-service/internal/auth/domain"
	"github.com/communityride/auth-service/internal/auth/handler"
	repo "github.com/communityride/auth-service/internal/auth/repository/postgres"
	"github.com/communityride/auth-service/internal/auth/service"
	"github.com/communityride/auth-service/internal/platform/breach"
	"github.com/communityride/auth-service/internal/platform/geo"
	"github.com/communityride/auth-service/internal/platform/notify"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	cfg := config.Load()

	if err := db.Migrate(cfg.DBURL); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	pool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	credentials := repo.NewCredentialRepository(pool)
	ledgerRepo := repo.NewLedgerRepository(pool)
	attempts := repo.NewAttemptRepository(pool)
	alertsRepo := repo.NewAlertRepository(pool)
	devices := repo.NewTrustedDeviceRepository(pool)

	var geoProvider *geo.Client
	if cfg.GeoProviderURL != "" {
		geoProvider = geo.NewClient(cfg.GeoProviderURL)
	}
	var notifier *notify.Sender
	if cfg.NotificationURL != "" {
		notifier = notify.NewSender(cfg.NotificationURL)
	}
	breachChecker := breach.NewClient(cfg.BreachCheckerURL)

	codec := service.NewTokenCodec(cfg.AccessTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	ledger := service.NewLedger(ledgerRepo, codec, cfg.RefreshTokenTTL)
	lockout := service.NewLockoutTracker(attempts, cfg.LockoutThreshold, cfg.LockoutDuration)
	risk := service.NewRiskEngine(noNilGeo(geoProvider), cfg, logger)
	alerts := service.NewAlertEmitter(alertsRepo, noNilNotifier(notifier), logger)
	flow := service.NewLoginFlow(credentials, attempts, devices, lockout, risk, ledger, codec, alerts, cfg.RiskWindow, logger)
	sessions := service.NewSessionService(flow, credentials, lockout, ledger, codec, alerts, breachChecker, logger)

	go retentionSweep(sessions, cfg, logger)

	app := fiber.New()
	authHandler := handler.NewAuthHandler(sessions, logger)
	handler.RegisterRoutes(app, authHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// noNilGeo keeps a nil *geo.Client from becoming a non-nil interface value.
func noNilGeo(c *geo.Client) domain.GeoProvider {
	if c == nil {
		return nil
	}
	return c
}

func noNilNotifier(s *notify.Sender) domain.NotificationSender {
	if s == nil {
		return nil
	}
	return s
}

func retentionSweep(sessions *service.SessionService, cfg *config.Config, logger zerolog.Logger) {
	ticker := time.NewTicker(cfg.RetentionSweepTick)
	defer ticker.Stop()

	for range ticker.C {
		n, err := sessions.SweepExpired(context.Background(), cfg.RetentionSweepAge)
		if err != nil {
			logger.Warn().Err(err).Msg("retention sweep failed")
			continue
		}
		if n > 0 {
			logger.Info().Int64("deleted", n).Msg("retention sweep")
		}
	}
}
