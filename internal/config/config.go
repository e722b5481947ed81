package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is loaded once in main and passed down; nothing else reads the
// environment.
type Config struct {
	Port           string
	AllowedOrigins []string
	LogLevel       string
	LogPretty      bool
	WordsDir       string
}

// Load reads a .env file when present, then the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "5000"),
		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogPretty:      getEnv("LOG_PRETTY", "") == "true",
		WordsDir:       getEnv("WORDS_DIR", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
