// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment
//     (the default `.env` is read automatically and is optional).
//   - Load parses the environment into any struct using `env` tags and
//     caches the result per type, so every type is parsed once.
//   - MustLoad panics instead of returning an error.
//   - ForceReload parses a type again after LoadEnv changed the environment.
//   - ResetCache drops every cached value, which is handy in tests.
//
// # Usage
//
//	var cfg validator.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// validator.LoadConfig reads its Config through this package, loading
// extra .env files with LoadEnv and ForceReload when asked to.
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrNilPointer,
// ErrConfigNotLoaded and ErrLoadingEnvFile, so they can be matched with
// errors.Is.
package config
