package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// RiskWeights are the additive points per triggered signal. The score is a
// plain sum; thresholds below turn it into a tier.
type RiskWeights struct {
	NewDevice     int
	NewLocation   int
	OddHour       int
	RecentFailure int
	VPN           int
}

type Config struct {
	Env  string
	Port string

	DBURL string

	AccessTokenSecret string
	AccessTokenTTL    time.Duration
	RefreshTokenTTL   time.Duration

	LockoutThreshold int
	LockoutDuration  time.Duration

	RiskWeights     RiskWeights
	RiskMediumScore int
	RiskHighScore   int
	RiskWindow      time.Duration
	FailureWindow   time.Duration

	GeoProviderURL     string
	GeoTimeout         time.Duration
	NotificationURL    string
	BreachCheckerURL   string
	RetentionSweepAge  time.Duration
	RetentionSweepTick time.Duration
}

func Load() *Config {
	return &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DBURL: mustGetEnv("DB_URL"),

		AccessTokenSecret: mustGetEnv("ACCESS_TOKEN_SECRET"),
		AccessTokenTTL:    getEnvAsMinutes("ACCESS_TOKEN_EXPIRY_MIN", 15),
		RefreshTokenTTL:   getEnvAsMinutes("REFRESH_TOKEN_EXPIRY_MIN", 10080),

		LockoutThreshold: getEnvAsInt("LOCKOUT_THRESHOLD", 5),
		LockoutDuration:  getEnvAsMinutes("LOCKOUT_DURATION_MIN", 15),

		RiskWeights: RiskWeights{
			NewDevice:     getEnvAsInt("RISK_WEIGHT_NEW_DEVICE", 20),
			NewLocation:   getEnvAsInt("RISK_WEIGHT_NEW_LOCATION", 15),
			OddHour:       getEnvAsInt("RISK_WEIGHT_ODD_HOUR", 10),
			RecentFailure: getEnvAsInt("RISK_WEIGHT_RECENT_FAILURE", 25),
			VPN:           getEnvAsInt("RISK_WEIGHT_VPN", 5),
		},
		RiskMediumScore: getEnvAsInt("RISK_MEDIUM_SCORE", 25),
		RiskHighScore:   getEnvAsInt("RISK_HIGH_SCORE", 50),
		RiskWindow:      getEnvAsMinutes("RISK_WINDOW_MIN", 90*24*60),
		FailureWindow:   getEnvAsMinutes("FAILURE_WINDOW_MIN", 30),

		GeoProviderURL:     getEnv("GEO_PROVIDER_URL", ""),
		GeoTimeout:         time.Duration(getEnvAsInt("GEO_TIMEOUT_MS", 500)) * time.Millisecond,
		NotificationURL:    getEnv("NOTIFICATION_URL", ""),
		BreachCheckerURL:   getEnv("BREACH_CHECKER_URL", "https://api.pwnedpasswords.com"),
		RetentionSweepAge:  getEnvAsMinutes("RETENTION_SWEEP_AGE_MIN", 30*24*60),
		RetentionSweepTick: getEnvAsMinutes("RETENTION_SWEEP_TICK_MIN", 60),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsMinutes(key string, defaultVal int) time.Duration {
	return time.Duration(getEnvAsInt(key, defaultVal)) * time.Minute
}
