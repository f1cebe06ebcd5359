package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when no explicit env files are given.
// A missing default file is not an error.
const DefaultEnvFile = ".env"

// Option configures Load.
type Option func(*options)

type options struct {
	files    []string
	explicit bool
	environ  map[string]string
}

// WithEnvFiles replaces the default .env lookup with the given files.
// Unlike the default file, explicitly listed files must exist.
// Variables already present in the process environment are never overridden.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = files
		o.explicit = true
	}
}

// WithEnvironment parses from the given map instead of the process
// environment. No env files are read in this mode. Mostly useful in tests.
func WithEnvironment(environ map[string]string) Option {
	return func(o *options) { o.environ = environ }
}

// Load parses environment variables into a new value of T using the
// `env`, `envDefault` and `required` struct tags of caarlos0/env.
//
// Example:
//
//	type ServerConfig struct {
//		Host string `env:"HOST" envDefault:"127.0.0.1"`
//		Port uint16 `env:"PORT" envDefault:"3000"`
//		DSN  string `env:"DATABASE_URL,required"`
//	}
//
//	cfg, err := config.Load[ServerConfig]()
//	if err != nil {
//		// missing DATABASE_URL or malformed PORT
//	}
func Load[T any](opts ...Option) (T, error) {
	o := &options{files: []string{DefaultEnvFile}}
	for _, opt := range opts {
		opt(o)
	}

	if o.environ == nil {
		if err := loadEnvFiles(o.files, o.explicit); err != nil {
			var zero T
			return zero, err
		}
	}

	v, err := env.ParseAsWithOptions[T](env.Options{
		Environment: o.environ,
	})
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return v, nil
}

func loadEnvFiles(files []string, strict bool) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if !strict && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", f, err))
		}
	}
	return nil
}
