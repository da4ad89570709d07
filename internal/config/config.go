package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr string

	DBDriver string
	DBDSN    string

	// Optional LLM normalizer for exotic duration answers. Disabled when
	// the API key is empty; grading then runs on the local parser alone.
	NormalizerBaseURL string
	NormalizerAPIKey  string
	NormalizerModel   string
	NormalizerTimeout time.Duration

	JWTSecret string

	AdminUser     string
	AdminPassHash string // bcrypt

	CORSOrigins []string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr: addr,
		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DB_DSN", ""),

		NormalizerBaseURL: envOr("NORMALIZER_BASE_URL", "https://api.anthropic.com"),
		NormalizerAPIKey:  os.Getenv("NORMALIZER_API_KEY"),
		NormalizerModel:   envOr("NORMALIZER_MODEL", "claude-sonnet-4-20250514"),
		NormalizerTimeout: envDuration("NORMALIZER_TIMEOUT", 10*time.Second),

		JWTSecret: envOr("JWT_SECRET", "dev-secret-change-me"),

		AdminUser:     envOr("ADMIN_USER", "admin"),
		AdminPassHash: envOr("ADMIN_PASS_HASH", "$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"),

		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
