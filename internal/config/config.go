package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Env      string
	LogLevel string
	Demo     DemoConfig
}

// DemoConfig holds settings for the demo walkthrough
type DemoConfig struct {
	Currency string
	Country  string
	City     string
}

// Load reads configuration from environment variables and returns a Config struct
func Load() (*Config, error) {
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("DEMO_CURRENCY", "USD")
	viper.SetDefault("DEMO_COUNTRY", "Ukraine")
	viper.SetDefault("DEMO_CITY", "Kyiv")

	config := &Config{
		Env:      viper.GetString("ENV"),
		LogLevel: viper.GetString("LOG_LEVEL"),
		Demo: DemoConfig{
			Currency: viper.GetString("DEMO_CURRENCY"),
			Country:  viper.GetString("DEMO_COUNTRY"),
			City:     viper.GetString("DEMO_CITY"),
		},
	}

	return config, nil
}
