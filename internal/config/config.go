package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string
	TokenTTL  time.Duration
	LogFile   string
}

func Load() Config {
	// Optional .env for local development; real deployments set env directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "userbase.db" // sqlite file in project root
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
		log.Printf("[config] JWT_SECRET not set, using insecure development default")
	}
	ttl := 24 * time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			log.Printf("[config] invalid TOKEN_TTL %q, keeping default %s", raw, ttl)
		} else {
			ttl = d
		}
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, JWTSecret: secret, TokenTTL: ttl, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s TOKEN_TTL=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.TokenTTL, cfg.LogFile)
	return cfg
}
