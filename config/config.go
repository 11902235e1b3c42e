// config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	TelegramToken string
	DatabasePath  string
	DraftTTL      time.Duration
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Warn("⚠️ No .env file found, falling back to process environment")
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "bot.db"
	}

	// An abandoned question draft is kept this long before it is forgotten.
	draftTTL := 30 * time.Minute
	if val, ok := os.LookupEnv("DRAFT_TTL_MINUTES"); ok {
		if minutes, err := strconv.Atoi(val); err == nil && minutes > 0 {
			draftTTL = time.Duration(minutes) * time.Minute
		}
	}

	return &Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		DatabasePath:  dbPath,
		DraftTTL:      draftTTL,
	}
}
