package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings. Every field has a development
// default; the admin credentials and session secret must be overridden
// for any real deployment.
type Config struct {
	Port               string
	DataDir            string
	SessionSecret      string
	AdminUsername      string
	AdminPassword      string
	CorsAllowedOrigins []string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:               getEnv("PORT", "8080"),
		DataDir:            getEnv("DATA_DIR", "data"),
		SessionSecret:      getEnv("SESSION_SECRET", "portfolio-secret"),
		AdminUsername:      getEnv("ADMIN_USERNAME", "vwolf"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "prueba"),
		CorsAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
