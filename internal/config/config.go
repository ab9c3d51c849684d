package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Budgie"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Storage struct {
		// DataDir holds the per-user transaction files, generated reports,
		// and the username log.
		DataDir   string `envconfig:"DATA_DIR" default:"./data"`
		UsersFile string `envconfig:"USERS_FILE" default:"users.txt"`
	}

	Report struct {
		CurrencySymbol string `envconfig:"CURRENCY_SYMBOL" default:"Rs."`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
