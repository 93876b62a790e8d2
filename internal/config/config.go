// internal/config/config.go
//
// Server configuration parsed from the environment. godotenv (loaded in
// main) makes these settable from a .env file during development.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr     string `env:"HTTP_ADDR" envDefault:":8090"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	// Catalog sources; when both are empty the embedded sample is used.
	CatalogFile string `env:"CATALOG_FILE"`
	CatalogDB   string `env:"CATALOG_DB"`

	// DailySalt seeds daily answer selection. Changing it reshuffles
	// which station each calendar day maps to.
	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	// Base pixel dimensions of the full map image, derived from the
	// asset's intrinsic size. Fixed per deployment.
	MapBaseW float64 `env:"MAP_BASE_W" envDefault:"3200"`
	MapBaseH float64 `env:"MAP_BASE_H" envDefault:"2100"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
