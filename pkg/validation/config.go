package validation

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds engine defaults sourced from the environment, so deployments
// can tune validation behavior without code changes.
type Config struct {
	// DebounceInterval is how long input must stay stable before a
	// debounced evaluation runs.
	DebounceInterval time.Duration `env:"VALIDATION_DEBOUNCE_INTERVAL" envDefault:"300ms"`

	// FailureMode selects fail_fast or collect_all evaluation.
	FailureMode string `env:"VALIDATION_FAILURE_MODE" envDefault:"fail_fast"`
}

var defaultEnvLoaded sync.Once

// LoadConfig reads Config from environment variables, loading a .env file
// first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if _, err := ParseFailureMode(cfg.FailureMode); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// EngineOptions converts the config into options for NewEngine.
func (c Config) EngineOptions() ([]Option, error) {
	mode, err := ParseFailureMode(c.FailureMode)
	if err != nil {
		return nil, err
	}
	return []Option{
		WithDebounce(c.DebounceInterval),
		WithFailureMode(mode),
	}, nil
}
