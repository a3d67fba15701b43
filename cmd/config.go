package cmd

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment defaults for the data flags, so a deployment
// can pin its export paths once (SALESCOPE_ORDERS, SALESCOPE_ITEMS, ...)
// instead of repeating them on every invocation.
type Config struct {
	Orders string `default:"orders.csv"`
	Items  string `default:"order_items.csv"`
	DB     string
	Seed   int64
	Raw    bool
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("salescope", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
