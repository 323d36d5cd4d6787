package telemetry

import (
	"context"
	"github.com/pdx-cs-rust/parallel/config"
	"github.com/pdx-cs-rust/parallel/internal/shared/bytes"
	"github.com/rs/zerolog"
	"sync"
	"time"
)

type Reporter interface {
	Interval() time.Duration
	Close() error
}

// Progress logs per-interval counter deltas while a run is in flight.
type Progress struct {
	ctx        context.Context
	cancel     context.CancelFunc
	logger     zerolog.Logger
	sampler    sampler
	interval   time.Duration
	blockBytes uint64
	wg         sync.WaitGroup
}

func New(
	ctx context.Context,
	cfg *config.TelemetryCfg,
	logger zerolog.Logger,
	gen GeneratorMetrics,
	work WorkMetrics,
	blockBytes uint64,
) Reporter {
	if !cfg.Enabled() {
		return NoOpReporter{}
	}

	ctx, cancel := context.WithCancel(ctx)
	return (&Progress{
		ctx:        ctx,
		cancel:     cancel,
		logger:     logger,
		sampler:    newSampler(gen, work),
		interval:   cfg.Interval,
		blockBytes: blockBytes,
	}).run()
}

func (p *Progress) Interval() time.Duration {
	return p.interval
}

// Close stops the reporter and waits for its goroutine to exit.
func (p *Progress) Close() error {
	p.cancel()
	p.wg.Wait()
	return nil
}

func (p *Progress) run() *Progress {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.loop()
	}()
	return p
}

func (p *Progress) loop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	prev := p.sampler.snapshot()
	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			cur := p.sampler.snapshot()
			d := deltaSnapshot(prev, cur)
			prev = cur

			p.logger.Info().
				Str("interval", p.interval.String()).
				Uint64("draws", d.draws).
				Uint64("cas_retries", d.retries).
				Uint64("blocks", d.blocks).
				Str("generated", bytes.FmtMem(d.blocks*p.blockBytes)).
				Uint64("merges", d.merges).
				Uint64("reductions", d.reductions).
				Uint64("handoffs", d.handoffs).
				Msg("progress")
		}
	}
}

// NoOpReporter is used when telemetry is disabled.
type NoOpReporter struct{}

func (NoOpReporter) Interval() time.Duration { return 0 }

func (NoOpReporter) Close() error { return nil }
