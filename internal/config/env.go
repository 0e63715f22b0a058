package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from MINDFORGE_* environment variables via the
// struct's `env` tags. A variable that cannot be converted to the field
// type (for example a non-numeric MINDFORGE_PORT) is an error.
func parseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
