package config

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

const defaultTelemetryInterval = time.Second

var ErrInvalid = errors.New("invalid config")

// Default returns the settings used when no config file is given.
func Default() *Harness {
	cfg := &Harness{}
	cfg.AdjustConfig()
	return cfg
}

// AdjustConfig fills unset fields with defaults.
func (cfg *Harness) AdjustConfig() {
	if cfg.Rounds == 0 {
		cfg.Rounds = DefaultRounds
	}
	if cfg.BlockSize == 0 {
		cfg.BlockSize = DefaultBlockSize
	}
	if cfg.Seed == 0 {
		cfg.Seed = DefaultSeed
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = LogFormatConsole
	}
	if cfg.Telemetry.Enabled() && cfg.Telemetry.Interval <= 0 {
		cfg.Telemetry.Interval = defaultTelemetryInterval
	}
}

// Validate reports the first setting that cannot drive a run.
func (cfg *Harness) Validate() error {
	if cfg.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalid, cfg.Rounds)
	}
	if cfg.BlockSize < 1 {
		return fmt.Errorf("%w: block_size must be positive, got %d", ErrInvalid, cfg.BlockSize)
	}
	switch cfg.Log.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log.format must be %q or %q, got %q", ErrInvalid, LogFormatConsole, LogFormatJSON, cfg.Log.Format)
	}
	return nil
}

func LoadConfig(path string) (*Harness, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg *Harness
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	if cfg == nil {
		cfg = &Harness{}
	}
	cfg.AdjustConfig()

	return cfg, nil
}
