// Package config loads command configuration and handles fatal exits.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the commands.
const EnvPrefix = "GREED_"

// ParseEnv loads configuration from environment variables.
//
// Field tags omit EnvPrefix: `env:"LANG"` reads GREED_LANG.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
