// Package parallel runs the same random-block statistics workload under
// different concurrency topologies so they can be compared side by side.
package parallel

import (
	"context"
	"fmt"
	"github.com/pdx-cs-rust/parallel/config"
	"github.com/pdx-cs-rust/parallel/internal/block"
	"github.com/pdx-cs-rust/parallel/internal/shared/bytes"
	"github.com/pdx-cs-rust/parallel/internal/shared/random"
	"github.com/pdx-cs-rust/parallel/internal/strategy"
	"github.com/pdx-cs-rust/parallel/internal/telemetry"
	"github.com/rs/zerolog"
	"io"
	"time"
)

type Mode = strategy.Mode

type Harness struct {
	cfg      *config.Harness
	logger   zerolog.Logger
	sink     strategy.Sink
	rng      *random.Shared
	counters *strategy.Counters
}

// New builds a harness writing one result line per unit of work to out.
// cfg is expected to be adjusted and validated.
func New(cfg *config.Harness, logger zerolog.Logger, out io.Writer) *Harness {
	return &Harness{
		cfg:      cfg,
		logger:   logger,
		sink:     strategy.NewWriterSink(out),
		rng:      random.NewShared(cfg.Seed),
		counters: strategy.NewCounters(),
	}
}

// Run executes mode with the configured rounds and block size.
// ctx bounds only the progress reporter; strategy work always runs to completion.
func (h *Harness) Run(ctx context.Context, mode Mode) error {
	var workers int
	if h.cfg.DataParallel.Enabled() {
		workers = h.cfg.DataParallel.Workers
	}

	s, err := strategy.New(mode, strategy.Deps{
		Rng:      h.rng,
		Sink:     h.sink,
		Logger:   h.logger,
		Counters: h.counters,
		Workers:  workers,
	})
	if err != nil {
		return err
	}

	blockBytes := block.Bytes(h.cfg.BlockSize)
	reporter := telemetry.New(ctx, h.cfg.Telemetry, h.logger, h.rng, h.counters, blockBytes)
	defer func() { _ = reporter.Close() }()

	h.logger.Info().
		Str("mode", string(mode)).
		Int("rounds", h.cfg.Rounds).
		Int("block_size", h.cfg.BlockSize).
		Str("block_mem", bytes.FmtMem(blockBytes)).
		Msg("run started")

	start := time.Now()
	err = s.Run(h.cfg.Rounds, h.cfg.BlockSize)
	elapsed := time.Since(start)

	draws, retries := h.rng.Metrics()
	blocks, merges, reductions, handoffs := h.counters.Metrics()
	h.logger.Info().
		Str("mode", string(mode)).
		Dur("elapsed", elapsed).
		Int64("draws", draws).
		Int64("cas_retries", retries).
		Int64("blocks", blocks).
		Int64("merges", merges).
		Int64("reductions", reductions).
		Int64("handoffs", handoffs).
		Str("throughput", bytes.FmtRate(uint64(max(blocks, 0))*blockBytes, elapsed)).
		Bool("ok", err == nil).
		Msg("run finished")

	if err != nil {
		return fmt.Errorf("run %s: %w", mode, err)
	}
	return nil
}

// Metrics returns cumulative work counters since the harness was built.
func (h *Harness) Metrics() (draws, retries, blocks, merges, reductions, handoffs int64) {
	draws, retries = h.rng.Metrics()
	blocks, merges, reductions, handoffs = h.counters.Metrics()
	return
}
