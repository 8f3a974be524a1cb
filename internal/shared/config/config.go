package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	// Optional dataset to load on boot so the API is immediately useful.
	DatasetPath string

	// Idle chat sessions older than this are pruned by the janitor.
	SessionTTL time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		Env:         os.Getenv("ENV"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DatasetPath: os.Getenv("DATASET_PATH"),
		SessionTTL:  24 * time.Hour,
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if raw := os.Getenv("SESSION_TTL_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			log.Printf("⚠️ Invalid SESSION_TTL_MINUTES %q, keeping default", raw)
		} else {
			cfg.SessionTTL = time.Duration(minutes) * time.Minute
		}
	}

	return cfg
}
