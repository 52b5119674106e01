package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all environment configuration for the bot.
type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	SessionBackend string `envconfig:"SESSION_BACKEND" default:"memory"` // memory, redis or postgres

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	Sender            string `envconfig:"SENDER" default:"wablas"` // wablas or twilio
	WablasBaseURL     string `envconfig:"WABLAS_BASE_URL"`
	WablasAPIKey      string `envconfig:"WABLAS_API_KEY"`
	WablasSecretKey   string `envconfig:"WABLAS_SECRET_KEY"`
	WablasPhoneNumber string `envconfig:"WABLAS_PHONE_NUMBER"`

	TwilioAccountSID   string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken    string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppFrom string `envconfig:"TWILIO_WHATSAPP_FROM"`

	SpreadsheetWebhook string `envconfig:"SPREADSHEET_WEBHOOK"`
}

// Load reads configuration from the environment, loading a .env file first
// when one is present (local development).
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found - using environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}
