package config

import (
	"fmt"
	"os"
	"strings"
)

type StripeConfig struct {
	SecretKey      string
	StarterPriceID string
	ProPriceID     string
	WebhookSecret  string
}

type Config struct {
	Stripe    StripeConfig
	ClientURL string
	Port      string
	AppEnv    string
}

func LoadConfig() *Config {
	return &Config{
		Stripe: StripeConfig{
			SecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
			StarterPriceID: os.Getenv("STRIPE_STARTER_PRICE_ID"),
			ProPriceID:     os.Getenv("STRIPE_PRO_PRICE_ID"),
			WebhookSecret:  os.Getenv("STRIPE_WEBHOOK_SECRET"),
		},
		ClientURL: getEnv("CLIENT_URL", "http://localhost:3001"),
		Port:      getEnv("PORT", "3000"),
		AppEnv:    getEnv("APP_ENV", "development"),
	}
}

// Validate reports every missing required variable in one error so a
// misconfigured deployment shows the whole problem at startup, not one
// variable at a time.
func (c *Config) Validate() error {
	var missing []string

	if c.Stripe.SecretKey == "" {
		missing = append(missing, "STRIPE_SECRET_KEY")
	}
	if c.Stripe.StarterPriceID == "" {
		missing = append(missing, "STRIPE_STARTER_PRICE_ID")
	}
	if c.Stripe.ProPriceID == "" {
		missing = append(missing, "STRIPE_PRO_PRICE_ID")
	}
	if c.Stripe.WebhookSecret == "" {
		missing = append(missing, "STRIPE_WEBHOOK_SECRET")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
