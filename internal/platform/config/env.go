// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by mythic.nexus
// binaries. Struct tags omit it.
const EnvPrefix = "MYTHIC_NEXUS_"

// ParseEnv fills target from MYTHIC_NEXUS_* environment variables, applying
// envDefault tags for unset keys.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
