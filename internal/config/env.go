package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a StructuredConfig from the process environment. Variables
// are matched through the env/envPrefix tags, so REMOTE_BASE_URL lands in
// Remote.BaseURL. Unset variables leave zero values for the merge step.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
