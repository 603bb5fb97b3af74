package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the environment configuration read once at startup.
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string
	GiphyURL string
	LogFile  string
}

// Load reads .env if present, then the environment. Missing required values
// are a startup failure.
func Load() (*Config, error) {
	// A missing .env file is fine; the process environment is used as-is.
	godotenv.Load()

	cfg := &Config{
		Port:     os.Getenv("PORT"),
		MongoURI: os.Getenv("MONGOURI"),
		MongoDB:  os.Getenv("MONGODB"),
		GiphyURL: os.Getenv("GIPHYURL"),
		LogFile:  os.Getenv("LOG_FILE"),
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT is required")
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGOURI is required")
	}
	if cfg.GiphyURL == "" {
		return nil, fmt.Errorf("GIPHYURL is required")
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "vetrant"
	}

	return cfg, nil
}
