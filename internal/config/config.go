// Package config loads application configuration from environment
// variables, optionally seeded from a .env file.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Database settings are only required when
// the booking source is "mysql"; the default "http" source needs only the
// booking API base URL.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	BookingSource     string        // "http" or "mysql"
	BookingAPIBaseURL string        // base URL of the booking service REST API
	BookingAPITimeout time.Duration // per-request timeout for booking API calls

	DBUser string // booking database username (mysql source only)
	DBPass string // booking database password (optional)
	DBHost string // booking database host
	DBPort string // booking database port
	DBName string // booking database name
}

// Load reads configuration from the environment.  A .env file is applied
// first when present.  Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using system environment")
	}

	cfg := Config{
		Env:               must("APP_ENV"),
		Port:              must("APP_PORT"),
		BookingSource:     envStr("BOOKING_SOURCE", "http"),
		BookingAPIBaseURL: envStr("BOOKING_API_BASE_URL", "http://localhost:7153"),
		BookingAPITimeout: envDur("BOOKING_API_TIMEOUT", 5*time.Second),
	}

	if cfg.BookingSource == "mysql" {
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS")
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
