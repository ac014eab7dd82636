package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/karunya-trust/donation_backend/internal/core/domain"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// DonationLatency is the artificial delay the donation service adds per
	// call when simulating a network backend. Zero disables it.
	DonationLatency time.Duration

	// RateLimit is an ulule/limiter formatted rate (e.g. "20-M") applied to
	// the public donation-creation endpoint.
	RateLimit string

	CORSAllowedOrigins []string

	PosthogAPIKey string

	// Organization holds the fixed issuing-organization details printed on
	// every donation receipt.
	Organization domain.Organization
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DONATION_LATENCY", "500ms")
	viper.SetDefault("RATE_LIMIT", "20-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.SetDefault("ORG_NAME", "Karunya Charitable Trust")
	viper.SetDefault("ORG_ADDRESS", "12 Temple Road, Chennai 600004, Tamil Nadu")
	viper.SetDefault("ORG_CONTACT", "+91 44 2345 6789")
	viper.SetDefault("ORG_EMAIL", "office@karunyatrust.org")
	viper.SetDefault("ORG_TAX_PAN", "AAATK1234F")
	viper.SetDefault("ORG_REGISTRATION_NO", "TN/CH/2014/0123")
	viper.SetDefault("ORG_REPRESENTATIVE", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("PGSQL_URL not set, using the in-memory donation store.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	latencyStr := viper.GetString("DONATION_LATENCY")
	latency, err := time.ParseDuration(latencyStr)
	if err != nil {
		latency = 500 * time.Millisecond
		log.Printf("Warning: Invalid value for DONATION_LATENCY ('%s'). Defaulting to %s.\n", latencyStr, latency)
	}
	cfg.DonationLatency = latency

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.Organization = domain.Organization{
		Name:           viper.GetString("ORG_NAME"),
		Address:        viper.GetString("ORG_ADDRESS"),
		Contact:        viper.GetString("ORG_CONTACT"),
		Email:          viper.GetString("ORG_EMAIL"),
		TaxPAN:         viper.GetString("ORG_TAX_PAN"),
		RegistrationNo: viper.GetString("ORG_REGISTRATION_NO"),
		Representative: viper.GetString("ORG_REPRESENTATIVE"),
	}

	return cfg, nil
}
