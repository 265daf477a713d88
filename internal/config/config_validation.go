// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.RateLimit.Window <= 0 || cfg.RateLimit.Max <= 0 {
		return fmt.Errorf("%w: window and max must be positive", ErrInvalidRateLimitConfigs)
	}

	switch cfg.RateLimit.Store {
	case "memory":
	case "redis":
		if cfg.Storage.Redis.Address == "" {
			return fmt.Errorf("%w: redis store selected but no redis address configured", ErrInvalidRateLimitConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidRateLimitConfigs, cfg.RateLimit.Store)
	}

	return nil
}
