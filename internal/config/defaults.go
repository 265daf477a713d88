package config

import "time"

// defaultConfig returns the fallback values merged in last. Secrets and the
// database DSN intentionally have no defaults; their absence is caught by
// validate.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:           EnvProduction,
			LogLevel:      "info",
			TokenIssuer:   "go-user-api",
			TokenDuration: 168 * time.Hour,
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
		},
		HTTP: HTTP{
			BodyLimitBytes: 1 << 20, // 1 MiB
		},
		RateLimit: RateLimit{
			Window:        time.Minute,
			Max:           120,
			SweepInterval: time.Minute,
			Store:         "memory",
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: 5,
			},
		},
	}
}
