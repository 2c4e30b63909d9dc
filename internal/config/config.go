package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectID    string
	Port         string
	LogLevel     string
	ChromiumPath string
	PDFTimeout   time.Duration
}

// New reads configuration from the environment. A local .env file is
// loaded first when present; real environment variables win over it.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		ProjectID:    os.Getenv("PROJECTID"),
		Port:         getEnv("PORT", "8080"),
		LogLevel:     os.Getenv("LOGLEVEL"),
		ChromiumPath: os.Getenv("CHROMIUMPATH"),
		PDFTimeout:   getDuration("PDFTIMEOUT", 15*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
