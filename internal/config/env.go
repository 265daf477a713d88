// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. The mapping is declared
// entirely through the `env` and `envPrefix` struct tags on [StructuredConfig]
// and its nested sections, so this function stays schema-free.
//
// env.Parse only fails when a present variable cannot be converted to its
// field type (for example a malformed duration); absent variables simply
// leave the zero value in place.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
