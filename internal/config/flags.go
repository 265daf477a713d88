package config

import (
	"flag"
	"strings"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-env runtime environment (development|production)
//	-log-level minimum log level (debug|info|warn|error)
//	-cors-origins comma-separated list of allowed CORS origins
//	-body-limit maximum request body size in bytes
//	-docs enable the /docs route
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "168h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit-window rate limit window (e.g., "1m")
//	-rate-limit-max allowed requests per key per window
//	-rate-limit-sweep interval between sweeps of expired counters
//	-rate-limit-store counter backend (memory|redis)
//	-redis-address redis address host:port
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var appEnv string
	var logLevel string
	var corsOrigins string
	var bodyLimit int64
	var enableDocs bool
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var rateLimitWindow time.Duration
	var rateLimitMax int
	var rateLimitSweep time.Duration
	var rateLimitStore string
	var redisAddress string

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&appEnv, "env", "", "Runtime environment (development|production)")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level")
	flag.StringVar(&corsOrigins, "cors-origins", "", "Comma-separated allowed CORS origins")
	flag.Int64Var(&bodyLimit, "body-limit", 0, "Maximum request body size in bytes")
	flag.BoolVar(&enableDocs, "docs", false, "Enable the /docs route")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Rate limit window (e.g., 1m)")
	flag.IntVar(&rateLimitMax, "rate-limit-max", 0, "Allowed requests per key per window")
	flag.DurationVar(&rateLimitSweep, "rate-limit-sweep", 0, "Interval between sweeps of expired counters")
	flag.StringVar(&rateLimitStore, "rate-limit-store", "", "Rate limit counter backend (memory|redis)")
	flag.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")

	flag.Parse()

	var origins []string
	if corsOrigins != "" {
		origins = strings.Split(corsOrigins, ",")
	}

	return &StructuredConfig{
		App: App{
			Env:           appEnv,
			LogLevel:      logLevel,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		HTTP: HTTP{
			CORSOrigins:    origins,
			BodyLimitBytes: bodyLimit,
			EnableDocs:     enableDocs,
		},
		RateLimit: RateLimit{
			Window:        rateLimitWindow,
			Max:           rateLimitMax,
			SweepInterval: rateLimitSweep,
			Store:         rateLimitStore,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Redis: Redis{
				Address: redisAddress,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
