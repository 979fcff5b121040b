package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mjimenezh/coursekeeper/internal/flagx"
)

// parseEnv overlays Config with values from the environment.
//
// A .env file is loaded first when one is named via the -e/-envfile flags
// or when a ./.env exists; a missing file is not an error. Variables
// already set in the process environment win over the file, which is
// godotenv's default behavior.
func parseEnv(cfg *Config) error {
	if envFile := flagx.EnvFileFlags(); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}
