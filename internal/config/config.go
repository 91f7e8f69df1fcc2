package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	Port          string        `yaml:"port"`
	DBPath        string        `yaml:"db_path"`
	SecretKey     string        `yaml:"secret_key"`
	Variant       string        `yaml:"variant"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	RetentionCron string        `yaml:"retention_cron"`
	LogLevel      string        `yaml:"log_level"`
	Environment   string        `yaml:"environment"`
}

// Load reads configuration from an optional YAML file (OVELLA_CONFIG), a .env
// file if present, and environment variables. Env values override the file.
func Load() (*AppConfig, error) {
	// godotenv.Load never overrides variables already set in the environment.
	_ = godotenv.Load()

	cfg := defaults()

	if configPath := strings.TrimSpace(os.Getenv("OVELLA_CONFIG")); configPath != "" {
		if err := cfg.applyFile(configPath); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.SecretKey = getEnv("SECRET_KEY", cfg.SecretKey)
	cfg.Variant = strings.ToLower(getEnv("VARIANT", cfg.Variant))
	cfg.RetentionCron = getEnv("RETENTION_CRON", cfg.RetentionCron)
	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", cfg.LogLevel))
	cfg.Environment = strings.ToLower(getEnv("ENVIRONMENT", cfg.Environment))

	if rawTTL := strings.TrimSpace(os.Getenv("SESSION_TTL")); rawTTL != "" {
		ttl, err := time.ParseDuration(rawTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = ttl
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *AppConfig {
	return &AppConfig{
		Port:          "8080",
		DBPath:        filepath.Join("data", "ovella.db"),
		SecretKey:     "change_me_in_production",
		Variant:       "enriched",
		SessionTTL:    24 * time.Hour,
		RetentionCron: "@hourly",
		LogLevel:      "info",
		Environment:   "development",
	}
}

func (cfg *AppConfig) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (cfg *AppConfig) validate() error {
	switch cfg.Variant {
	case "classic", "enriched":
	default:
		return fmt.Errorf("unknown variant %q (expected classic or enriched)", cfg.Variant)
	}
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive, got %s", cfg.SessionTTL)
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return fmt.Errorf("port must not be empty")
	}
	return nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
