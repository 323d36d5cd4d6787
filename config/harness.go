package config

import "time"

const (
	DefaultRounds    = 10
	DefaultBlockSize = 10 * 1024 * 1024
	DefaultSeed      = 0x123456789abcdef0
)

// Harness groups the benchmark settings.
// Optional sections are disabled by leaving them nil.
type Harness struct {
	// Rounds is the number of units of work (rounds, tasks or pipeline stages).
	Rounds int `yaml:"rounds"`

	// BlockSize is the number of values per generated block.
	BlockSize int `yaml:"block_size"`

	// Seed initializes the shared generator. Zero means DefaultSeed.
	Seed uint64 `yaml:"seed"`

	Log LogCfg `yaml:"log"`

	// Telemetry enables the periodic progress reporter on stderr.
	// If nil, only the final run summary is logged.
	Telemetry *TelemetryCfg `yaml:"telemetry"`

	// DataParallel tunes the pool used by the "rayon" mode.
	// If nil, the pool is sized to GOMAXPROCS.
	DataParallel *DataParallelCfg `yaml:"data_parallel"`
}

type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

type LogCfg struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `yaml:"level"`

	// Format selects human-readable console output or JSON lines.
	Format LogFormat `yaml:"format"`
}

type TelemetryCfg struct {
	// Interval between progress lines. Example: "1s".
	Interval time.Duration `yaml:"interval"`
}

func (cfg *TelemetryCfg) Enabled() bool {
	return cfg != nil
}

type DataParallelCfg struct {
	// Workers bounds concurrent map workers; <=0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

func (cfg *DataParallelCfg) Enabled() bool {
	return cfg != nil
}
