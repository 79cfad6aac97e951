package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort      string
	DatabaseDSN   string
	JWTSecret     string
	ResetSecret   string // shared secret checked on forgot-password
	SuperEmail    string
	SuperPassword string
	CORSOrigins   string
	TokenTTL      time.Duration
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=hrm port=5432 sslmode=disable"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		ResetSecret:   getEnv("RESET_SECRET", ""),
		SuperEmail:    getEnv("SUPER_EMAIL", ""),
		SuperPassword: getEnv("SUPER_PASSWORD", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		TokenTTL:      24 * time.Hour,
	}

	if hours, err := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "24")); err == nil && hours > 0 {
		cfg.TokenTTL = time.Duration(hours) * time.Hour
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment variable is not set. It is required to sign tokens.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters.")
	}
	if cfg.ResetSecret == "" {
		log.Fatal("[FATAL] RESET_SECRET environment variable is not set. It is required for password resets.")
	}
	if cfg.SuperEmail == "" || cfg.SuperPassword == "" {
		log.Println("[WARN] SUPER_EMAIL/SUPER_PASSWORD not set, no superuser account will be seeded.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
