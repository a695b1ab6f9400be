package config

import (
	"fmt"
	"os"
	"strings"
)

// Config carries everything the server needs from the environment. It is
// built once in main and passed down; nothing reads the environment after
// startup.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	DatabaseURL      string

	JWTSecret      string
	Port           string
	AllowedOrigins []string
}

// FromEnv reads the recognized environment variables, applying the local
// development defaults where unset. JWT_SECRET has no default.
func FromEnv() (*Config, error) {
	cfg := &Config{
		PostgresHost:     "localhost",
		PostgresPort:     "5432",
		PostgresUser:     "postgres",
		PostgresPassword: "postgres",
		PostgresDB:       "zenith",
		Port:             "5000",
		AllowedOrigins:   []string{"http://localhost:3000"},
	}

	if v := os.Getenv("PGHOST"); v != "" {
		cfg.PostgresHost = v
	}
	if v := os.Getenv("PGPORT"); v != "" {
		cfg.PostgresPort = v
	}
	if v := os.Getenv("PGUSER"); v != "" {
		cfg.PostgresUser = v
	}
	if v := os.Getenv("PGPASSWORD"); v != "" {
		cfg.PostgresPassword = v
	}
	if v := os.Getenv("PGDATABASE"); v != "" {
		cfg.PostgresDB = v
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

// ConnString returns the Postgres connection string, preferring a full
// DATABASE_URL when one was provided.
func (c *Config) ConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}
