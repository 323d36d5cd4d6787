package strategy

import (
	"errors"
	"fmt"
	"github.com/pdx-cs-rust/parallel/internal/block"
	"github.com/pdx-cs-rust/parallel/internal/shared/random"
	"github.com/pdx-cs-rust/parallel/internal/stats"
	"github.com/rs/zerolog"
	"runtime"
	"strconv"
)

var (
	ErrUnknownMode      = errors.New("unknown method")
	ErrInvalidArgs      = errors.New("invalid strategy arguments")
	ErrUpstreamClosed   = errors.New("upstream stage closed without handing off a block")
	ErrMissingSharedRNG = errors.New("shared generator is required")
)

// Mode names a concurrency topology.
type Mode string

const (
	Sequential         Mode = "sequential"
	ForkJoin           Mode = "fork_join"
	Arc                Mode = "arc"
	Rayon              Mode = "rayon"
	Channel            Mode = "channel"
	SequentialPipeline Mode = "sequential_pipeline"
	Pipeline           Mode = "pipeline"
)

// Modes lists every supported mode in presentation order.
func Modes() []Mode {
	return []Mode{Sequential, ForkJoin, Arc, Rayon, Channel, SequentialPipeline, Pipeline}
}

func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Strategy drives rounds of "produce a block, reduce it" over some topology.
// Results are emitted to the sink in the order the topology defines.
type Strategy interface {
	Name() Mode
	Run(rounds, blockSize int) error
}

// Deps carries everything a strategy needs. Only Rng is required.
type Deps struct {
	Rng      *random.Shared
	Sink     Sink
	Logger   zerolog.Logger
	Counters *Counters
	// Workers bounds the data-parallel pool; <=0 means GOMAXPROCS.
	Workers int
}

func New(mode Mode, deps Deps) (Strategy, error) {
	if deps.Rng == nil {
		return nil, ErrMissingSharedRNG
	}
	if deps.Sink == nil {
		deps.Sink = DiscardSink{}
	}
	if deps.Counters == nil {
		deps.Counters = NewCounters()
	}
	if deps.Workers <= 0 {
		deps.Workers = runtime.GOMAXPROCS(0)
	}

	b := base{
		mode:     mode,
		rng:      deps.Rng,
		sink:     deps.Sink,
		logger:   deps.Logger.With().Str("mode", string(mode)).Logger(),
		counters: deps.Counters,
	}

	switch mode {
	case Sequential:
		return &sequential{base: b}, nil
	case ForkJoin:
		return &forkJoin{base: b}, nil
	case Arc:
		return &arc{base: b}, nil
	case Rayon:
		return &dataParallel{base: b, workers: deps.Workers}, nil
	case Channel:
		return &fanIn{base: b}, nil
	case SequentialPipeline:
		return &sequentialPipeline{base: b}, nil
	case Pipeline:
		return &stagedPipeline{base: b}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}
}

type base struct {
	mode     Mode
	rng      *random.Shared
	sink     Sink
	logger   zerolog.Logger
	counters *Counters
}

func (b *base) Name() Mode { return b.mode }

func (b *base) check(rounds, blockSize int) error {
	if rounds < 0 {
		return fmt.Errorf("%w: rounds must not be negative, got %d", ErrInvalidArgs, rounds)
	}
	if blockSize < 1 {
		return fmt.Errorf("%w: block size must be positive, got %d", ErrInvalidArgs, blockSize)
	}
	return nil
}

// seed draws n task generators from the shared one, in index order.
func (b *base) seed(n int) []*random.Local {
	gens := make([]*random.Local, n)
	for i := range gens {
		gens[i] = b.rng.Local()
	}
	return gens
}

func (b *base) generate(size int, g *random.Local) block.Block {
	blk := block.Generate(size, g)
	b.counters.blocks.Add(1)
	return blk
}

func (b *base) merge(dst, src block.Block) {
	block.MaxMerge(dst, src)
	b.counters.merges.Add(1)
}

func (b *base) reduce(blk block.Block) stats.Result {
	r := stats.Reduce(blk)
	b.counters.reductions.Add(1)
	return r
}

func (b *base) emit(index int, r stats.Result) error {
	if err := b.sink.Emit(Record{Index: index, Result: r}); err != nil {
		return fmt.Errorf("emit result %d: %w", index, err)
	}
	return nil
}

func (b *base) taskName(index int) string {
	return string(b.mode) + "#" + strconv.Itoa(index)
}
