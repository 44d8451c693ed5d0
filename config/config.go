package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PayPal PayPalConfig
	Server ServerConfig
	Redis  RedisConfig
}

type PayPalConfig struct {
	ClientID     string
	ClientSecret string
	Environment  string
}

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	URL string
}

// Load reads configuration from the environment. A missing client id is a
// visible misconfiguration, not a crash: the server still starts so /api/health
// can report the state.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		PayPal: PayPalConfig{
			ClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
			ClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
			Environment:  os.Getenv("PAYPAL_ENVIRONMENT"),
		},
		Server: ServerConfig{
			Port: os.Getenv("SERVER_PORT"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
	}

	if cfg.PayPal.Environment == "" {
		cfg.PayPal.Environment = "sandbox"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}

	if cfg.PayPal.ClientID == "" {
		log.Printf("Warning: PAYPAL_CLIENT_ID is not set, processor calls will fail")
	}
	if cfg.PayPal.ClientSecret == "" {
		log.Printf("Warning: PAYPAL_CLIENT_SECRET is not set, processor calls will fail")
	}

	return cfg
}

// Mode reports the environment selector exposed on /api/health and /api/config.
func (c *Config) Mode() string {
	return c.PayPal.Environment
}
