// internal/config/config.go
// Package config provides configuration loading, validation, and server defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// Config holds the application's configuration, loaded from config/.env.
type Config struct {
	LedgerURL        string `validate:"required,url"`
	LedgerUsername   string `validate:"required"`
	LedgerPassword   string `validate:"required"`
	FacilityURL      string `validate:"required,url"`
	FacilityUsername string `validate:"required"`
	FacilityPassword string `validate:"required"`
	FacilityPath     string `validate:"required"`
	CurrencyPath     string `validate:"required"`
	APIHost          string `validate:"required"`
	Port             int    `validate:"required,min=1,max=65535"`
	APIToken         string `validate:"required"`
}

// Load loads and validates the full application configuration.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile("config/.env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetDefault("API_HOST", "127.0.0.1")
	v.SetDefault("PORT", 5000)
	v.SetDefault("FACILITY_PATH", DefaultFacilityPath)
	v.SetDefault("CURRENCY_PATH", DefaultCurrencyPath)

	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if !errors.As(err, &cfgErr) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	appConfig := &Config{
		LedgerURL:        v.GetString("LEDGER_URL"),
		LedgerUsername:   v.GetString("LEDGER_USERNAME"),
		LedgerPassword:   v.GetString("LEDGER_PASSWORD"),
		FacilityURL:      v.GetString("FACILITY_URL"),
		FacilityUsername: v.GetString("FACILITY_USERNAME"),
		FacilityPassword: v.GetString("FACILITY_PASSWORD"),
		FacilityPath:     v.GetString("FACILITY_PATH"),
		CurrencyPath:     v.GetString("CURRENCY_PATH"),
		APIHost:          v.GetString("API_HOST"),
		Port:             v.GetInt("PORT"),
		APIToken:         v.GetString("API_TOKEN"),
	}

	if err := validate.Struct(appConfig); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return appConfig, nil
}
