package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Env struct {
	ServiceName string
	AppAddr     string
	GinMode     string
	LoggerLevel string

	DBHost string
	DBPort int
	DBUser string
	DBPass string
	DBName string

	JWTSecret   string
	JWTTTLHours int

	CORSAllowedOrigins []string
}

// LoadEnv reads configuration from .env (when present) and the process environment.
func LoadEnv() Env {
	_ = godotenv.Load(".env")

	env := Env{}

	env.ServiceName = cast.ToString(getOrDefault("SERVICE_NAME", "haulhub"))
	env.AppAddr = cast.ToString(getOrDefault("APP_ADDR", ":8080"))
	env.GinMode = cast.ToString(getOrDefault("GIN_MODE", ""))
	env.LoggerLevel = cast.ToString(getOrDefault("LOGGER_LEVEL", "info"))

	env.DBHost = cast.ToString(getOrDefault("DB_HOST", "127.0.0.1"))
	env.DBPort = cast.ToInt(getOrDefault("DB_PORT", 3306))
	env.DBUser = cast.ToString(getOrDefault("DB_USER", "root"))
	env.DBPass = cast.ToString(getOrDefault("DB_PASS", ""))
	env.DBName = cast.ToString(getOrDefault("DB_NAME", "haulhub"))

	env.JWTSecret = cast.ToString(getOrDefault("JWT_SECRET", "change-me-in-production"))
	env.JWTTTLHours = cast.ToInt(getOrDefault("JWT_TTL_HOURS", 24))

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSAllowedOrigins = append(env.CORSAllowedOrigins, o)
			}
		}
	}
	if len(env.CORSAllowedOrigins) == 0 {
		env.CORSAllowedOrigins = []string{
			"http://localhost:4200",
			"http://127.0.0.1:4200",
			"http://localhost:5173",
		}
	}

	return env
}

func getOrDefault(key string, def any) any {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}
