package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr          string
	DatabaseURL   string
	SessionSecret string
	GeminiAPIKey  string
	GeminiBaseURL string
}

// Load reads configuration from environment variables.
// DATABASE_URL and GEMINI_API_KEY are optional: without them the server runs
// with in-memory repositories and a disabled assist service respectively.
func Load() Config {
	addr := os.Getenv("URBANSTEP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "urbanstep-dev-secret"
	}

	return Config{
		Addr:          addr,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: secret,
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
	}
}
