// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - An optional `.env` file (or an explicit list of files) is loaded into
//     the process environment first. Existing variables always win.
//   - The environment is parsed into any struct using `env`, `envDefault`
//     and `required` field tags. Nested structs are parsed recursively, so a
//     service config can embed the configs of the packages it wires.
//
// # Usage
//
//	type Config struct {
//		Server httpserver.Config
//		Mongo  mongo.Config
//	}
//
//	cfg, err := config.Load[Config]()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Errors
//
// Parse failures (missing required variables, values that do not fit the
// field type) are joined with ErrParsingConfig. Unreadable explicit env files
// are joined with ErrLoadingEnvFile. Use errors.Is to tell them apart.
package config
