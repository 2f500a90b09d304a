package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Backend     BackendConfig
	Redis       RedisConfig
	Cart        CartConfig
}

// BackendConfig is used to call the remote CocoSmart API for orders and
// finance records.
type BackendConfig struct {
	BaseURL string // e.g. https://api.cocosmart.lk
	Token   string // bearer token forwarded on every call
}

// RedisConfig locates the cart key-value store. An empty address means the
// server runs with an in-memory cart only.
type RedisConfig struct {
	URL      string // REDIS_URL takes precedence when set
	Addr     string
	Password string
}

type CartConfig struct {
	Key      string // storage key the serialized cart lives under
	Currency string // ISO 4217 display currency
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CART_KEY", "cart")
	viper.SetDefault("CURRENCY", "LKR")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Backend: BackendConfig{
			BaseURL: strings.TrimSpace(getEnvOrViper("BACKEND_BASE_URL", "")),
			Token:   strings.TrimSpace(getEnvOrViper("BACKEND_TOKEN", "")),
		},
		Redis: RedisConfig{
			URL:      strings.TrimSpace(getEnvOrViper("REDIS_URL", "")),
			Addr:     strings.TrimSpace(getEnvOrViper("REDIS_ADDR", "")),
			Password: getEnvOrViper("REDIS_PASSWORD", ""),
		},
		Cart: CartConfig{
			Key:      getEnvOrViper("CART_KEY", "cart"),
			Currency: getEnvOrViper("CURRENCY", "LKR"),
		},
	}

	// Validate required fields
	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if cfg.Backend.Token == "" {
		return nil, fmt.Errorf("BACKEND_TOKEN is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
