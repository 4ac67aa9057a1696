package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port                   string
	GinMode                string
	AllowedOrigins         []string
	MaxSessions            int
	SessionTTL             time.Duration
	SessionUnattachedTTL   time.Duration
	SessionCleanupInterval time.Duration
	WSReadTimeout          time.Duration
	WSPingInterval         time.Duration
}

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")
	ginMode := GetEnv("GIN_MODE", "release")

	// the page is served by this process, so its own origin is always allowed
	allowedOrigins := []string{
		"http://localhost:" + port,
		"http://127.0.0.1:" + port,
	}
	if extras := GetEnv("ALLOWED_ORIGINS", ""); extras != "" {
		for _, origin := range strings.Split(extras, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	maxSessions := GetEnvAsInt("MAX_SESSIONS", 1000)
	sessionTTLMin := GetEnvAsInt("SESSION_TTL_MINUTES", 60)
	unattachedTTLMin := GetEnvAsInt("SESSION_UNATTACHED_TTL_MINUTES", 5)
	cleanupIntervalMin := GetEnvAsInt("SESSION_CLEANUP_INTERVAL_MINUTES", 10)
	wsReadTimeoutSec := GetEnvAsInt("WS_READ_TIMEOUT_SECONDS", 60)
	wsPingIntervalSec := GetEnvAsInt("WS_PING_INTERVAL_SECONDS", 30)

	// a ping needs a whole second of slack before the read deadline
	if wsReadTimeoutSec < 2 {
		log.Printf("WS_READ_TIMEOUT_SECONDS (%d) must be at least 2, using defaults", wsReadTimeoutSec)
		wsReadTimeoutSec, wsPingIntervalSec = 60, 30
	}
	if wsPingIntervalSec >= wsReadTimeoutSec {
		log.Printf("WS_PING_INTERVAL_SECONDS (%d) must be below WS_READ_TIMEOUT_SECONDS (%d), using %d",
			wsPingIntervalSec, wsReadTimeoutSec, wsReadTimeoutSec/2)
		wsPingIntervalSec = wsReadTimeoutSec / 2
	}

	return &Config{
		Port:                   port,
		GinMode:                ginMode,
		AllowedOrigins:         allowedOrigins,
		MaxSessions:            maxSessions,
		SessionTTL:             time.Duration(sessionTTLMin) * time.Minute,
		SessionUnattachedTTL:   time.Duration(unattachedTTLMin) * time.Minute,
		SessionCleanupInterval: time.Duration(cleanupIntervalMin) * time.Minute,
		WSReadTimeout:          time.Duration(wsReadTimeoutSec) * time.Second,
		WSPingInterval:         time.Duration(wsPingIntervalSec) * time.Second,
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvAsInt falls back to defaultValue for missing, malformed or
// non-positive values.
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
