// Package config loads the moneyfmt configuration.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by [Load].
const EnvPrefix = "MONEYFMT"

// Config holds the command line configuration.
type Config struct {
	// Locale overrides the process locale, e.g. "de-DE". Empty means the environment.
	Locale string `mapstructure:"locale"`
	// CurrencyFile is a YAML or CSV file replacing the built-in currency definitions.
	CurrencyFile string `mapstructure:"currency_file"`
	LogLevel     string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Production   bool   `mapstructure:"production"`
}

// Load reads the configuration from, in increasing priority, defaults,
// the optional config file, a .env file in the working directory and the
// MONEYFMT_* environment variables.
func Load(file string) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("locale", "")
	v.SetDefault("currency_file", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("production", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}
