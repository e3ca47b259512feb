package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// Shift capacity in minutes, by day type. Saturdays run the long shift.
	RegularShiftMinutes  int
	SaturdayShiftMinutes int
}

// Load reads the configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:                 envString("PORT", ":8080"),
		DBPath:               envString("DB_PATH", "./data/planning.db"),
		JWTSecret:            envString("JWT_SECRET", "change-me-in-production"),
		RegularShiftMinutes:  envInt("REGULAR_SHIFT_MINUTES", 434),
		SaturdayShiftMinutes: envInt("SATURDAY_SHIFT_MINUTES", 651),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
