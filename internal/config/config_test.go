package config

import (
	"errors"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg := fromEnv(envMap(nil))

	if cfg.AppPort != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.AppPort)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default level info, got %q", cfg.LogLevel)
	}
	if cfg.SeedDemo || cfg.TelegramDebug {
		t.Error("boolean options must default to false")
	}
	if !errors.Is(cfg.RequireBotToken(), ErrMissingBotToken) {
		t.Error("expected missing bot token error")
	}
}

func TestOverrides(t *testing.T) {
	cfg := fromEnv(envMap(map[string]string{
		"APP_PORT":           "9090",
		"LOG_LEVEL":          "debug",
		"SEED_DEMO":          "TRUE",
		"TELEGRAM_BOT_TOKEN": " 123:abc ",
		"TELEGRAM_DEBUG":     "1",
	}))

	if cfg.AppPort != "9090" || cfg.LogLevel != "debug" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if !cfg.SeedDemo || !cfg.TelegramDebug {
		t.Errorf("boolean overrides not applied: %+v", cfg)
	}
	if cfg.BotToken != "123:abc" {
		t.Errorf("token not trimmed: %q", cfg.BotToken)
	}
	if err := cfg.RequireBotToken(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
