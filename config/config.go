// Package config centralises runtime configuration for the padic CLI and batch
// runner.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings contains the runtime configuration tree loaded from defaults,
// an optional yaml file, and environment overrides.
type Settings struct {
	// DefaultPrime is the modulus applied when a case or flag names none.
	DefaultPrime int64 `yaml:"defaultPrime"`
	// DefaultPrecision is the digit budget applied when none is named.
	DefaultPrecision int `yaml:"defaultPrecision"`
	// Workers bounds batch-runner goroutines; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the default configuration.
func Default() Settings {
	return Settings{
		DefaultPrime:     5,
		DefaultPrecision: 20,
		Workers:          0,
		Verbose:          false,
	}
}

// FromEnv loads configuration values from PADIC_* environment variables,
// overriding defaults.
func FromEnv() Settings {
	cfg := Default()
	if v := strings.TrimSpace(os.Getenv("PADIC_PRIME")); v != "" {
		if p, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.DefaultPrime = p
		}
	}
	if v := strings.TrimSpace(os.Getenv("PADIC_PRECISION")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DefaultPrecision = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("PADIC_WORKERS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("PADIC_VERBOSE")); v != "" {
		cfg.Verbose = v == "1" || strings.EqualFold(v, "true")
	}
	return cfg
}

// LoadOrDefault reads settings from a yaml file layered over FromEnv. The
// second return reports whether the file existed.
func LoadOrDefault(path string) (Settings, bool, error) {
	cfg := FromEnv()
	if strings.TrimSpace(path) == "" {
		return cfg, false, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, false, nil
		}
		return cfg, false, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, true, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, true, err
	}
	return cfg, true, nil
}

// Validate rejects out-of-range settings before any conversion starts.
func (s Settings) Validate() error {
	if s.DefaultPrime < 2 {
		return fmt.Errorf("defaultPrime must be at least 2, got %d", s.DefaultPrime)
	}
	if s.DefaultPrecision <= 0 {
		return fmt.Errorf("defaultPrecision must be positive, got %d", s.DefaultPrecision)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", s.Workers)
	}
	return nil
}

// EffectiveWorkers resolves the worker bound, defaulting to GOMAXPROCS.
func (s Settings) EffectiveWorkers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.GOMAXPROCS(0)
}
