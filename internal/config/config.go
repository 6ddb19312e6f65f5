package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var ErrMissingBotToken = errors.New("TELEGRAM_BOT_TOKEN is not set")

type Config struct {
	AppPort       string
	LogLevel      string
	SeedDemo      bool
	BotToken      string
	TelegramDebug bool
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) *Config {
	port := getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	level := getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	return &Config{
		AppPort:       port,
		LogLevel:      level,
		SeedDemo:      isTrue(getenv("SEED_DEMO")),
		BotToken:      strings.TrimSpace(getenv("TELEGRAM_BOT_TOKEN")),
		TelegramDebug: isTrue(getenv("TELEGRAM_DEBUG")),
	}
}

// RequireBotToken is checked only by the Telegram front end.
func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return ErrMissingBotToken
	}
	return nil
}

func isTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
