package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds all process-wide configuration, loaded once at startup and
// passed into each component.
type Config struct {
	StripeSecretKey      string
	StripePublishableKey string
	AdminToken           string
	RecaptchaSecret      string
	WebhookSecret        string
	DatabasePath         string
	Port                 string
}

// Load reads configuration from .env and the environment. The Stripe keys are
// mandatory; everything else has a default or is optional.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	viper.ReadInConfig()

	viper.BindEnv("stripe.secret_key", "STRIPE_SECRET_KEY")
	viper.BindEnv("stripe.publishable_key", "STRIPE_PUBLISHABLE_KEY")
	viper.BindEnv("stripe.webhook_secret", "STRIPE_WEBHOOK_SECRET")
	viper.BindEnv("admin.token", "ADMIN_TOKEN")
	viper.BindEnv("recaptcha.secret", "RECAPTCHA_SECRET")
	viper.BindEnv("database.path", "DATABASE_PATH")
	viper.BindEnv("server.port", "PORT")

	viper.SetDefault("admin.token", "change_this_admin_token")
	viper.SetDefault("database.path", "customers.db")
	viper.SetDefault("server.port", "4242")

	cfg := &Config{
		StripeSecretKey:      viper.GetString("stripe.secret_key"),
		StripePublishableKey: viper.GetString("stripe.publishable_key"),
		AdminToken:           viper.GetString("admin.token"),
		RecaptchaSecret:      viper.GetString("recaptcha.secret"),
		WebhookSecret:        viper.GetString("stripe.webhook_secret"),
		DatabasePath:         viper.GetString("database.path"),
		Port:                 viper.GetString("server.port"),
	}

	if cfg.StripeSecretKey == "" || cfg.StripePublishableKey == "" {
		return nil, errors.New("set STRIPE_SECRET_KEY and STRIPE_PUBLISHABLE_KEY in environment")
	}

	return cfg, nil
}
