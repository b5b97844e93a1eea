package config

import (
	"fmt"
	"os"
	"time"

	"storefront/internal/i18n"
)

type Config struct {
	Addr               string
	BaseURL            string
	SessionTTL         time.Duration
	TransitionDuration time.Duration
	DefaultLanguage    i18n.Language
}

func Load() (*Config, error) {
	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	transition, err := time.ParseDuration(getEnv("TRANSITION_DURATION", "300ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRANSITION_DURATION: %w", err)
	}

	lang, err := i18n.ParseLanguage(getEnv("DEFAULT_LANGUAGE", string(i18n.English)))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_LANGUAGE: %w", err)
	}

	cfg := &Config{
		Addr:               getEnv("STOREFRONT_ADDR", ":8080"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:8080"),
		SessionTTL:         sessionTTL,
		TransitionDuration: transition,
		DefaultLanguage:    lang,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("STOREFRONT_ADDR is required")
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be greater than 0")
	}

	if c.TransitionDuration <= 0 {
		return fmt.Errorf("TRANSITION_DURATION must be greater than 0")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
