package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func Load() App {
	// .env is a dev convenience; absence is fine.
	_ = godotenv.Load()

	cfg := App{
		Port:                 getenv("APP_PORT", "8080"),
		DatabaseURL:          must("DATABASE_URL"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		OperatorPasswordHash: os.Getenv("OPERATOR_PASSWORD_HASH"),
		Env:                  getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
