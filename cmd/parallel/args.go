package main

import (
	"errors"
	"fmt"
	"github.com/pdx-cs-rust/parallel/config"
	"github.com/pdx-cs-rust/parallel/internal/strategy"
	"strconv"
)

const usage = "usage: parallel <mode> [round-count] [block-size]"

var errUsage = errors.New(usage)

// parseArgs reads "<mode> [round-count] [block-size]" and overrides cfg accordingly.
func parseArgs(args []string, cfg *config.Harness) (strategy.Mode, error) {
	if len(args) < 1 || len(args) > 3 {
		return "", errUsage
	}

	mode, err := strategy.ParseMode(args[0])
	if err != nil {
		return "", err
	}

	if len(args) > 1 {
		if cfg.Rounds, err = parsePositive("round-count", args[1]); err != nil {
			return "", err
		}
	}
	if len(args) > 2 {
		if cfg.BlockSize, err = parsePositive("block-size", args[2]); err != nil {
			return "", err
		}
	}
	return mode, nil
}

func parsePositive(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, s, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s must be positive, got %d: %w", name, n, config.ErrInvalid)
	}
	return n, nil
}
