package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/pdx-cs-rust/parallel"
	"github.com/pdx-cs-rust/parallel/config"
	"github.com/pdx-cs-rust/parallel/internal/telemetry"
	"io"
	"io/fs"
	"os"
)

const (
	exitOK     = 0
	exitFault  = 1
	exitConfig = 2
)

// configEnv names the variable holding an optional YAML config path.
const configEnv = "PARALLEL_CONFIG"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	mode, err := parseArgs(args, cfg)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	logger, err := telemetry.NewLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	if err = parallel.New(cfg, logger, stdout).Run(context.Background(), mode); err != nil {
		logger.Error().Err(err).Msg("run failed")
		return exitFault
	}
	return exitOK
}

// loadConfig reads .env (if any), then the YAML file named by PARALLEL_CONFIG (if set).
func loadConfig() (*config.Harness, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	path := os.Getenv(configEnv)
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadConfig(path)
}
