package config

import (
	"fmt"
	"os"
)

// Config collects every environment knob the process reads. Deployment
// variance (origins, credentials) lives here, not in the core packages.
type Config struct {
	Port        string
	DatabaseURL string
	CORSOrigins string
	// AuthRequired guards mutating inventory routes with JWT auth.
	AuthRequired bool
	// Migrations switches from AutoMigrate to versioned SQL migrations.
	Migrations bool
}

func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "3000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:4200, http://localhost:3000"),
		AuthRequired: boolEnv("AUTH_REQUIRED"),
		Migrations:   boolEnv("MIGRATIONS"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_NAME", "thrifty"),
		)
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func boolEnv(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes":
		return true
	}
	return false
}
