package strategy

import (
	"context"
	"github.com/pdx-cs-rust/parallel/internal/block"
	"github.com/pdx-cs-rust/parallel/internal/stats"
	"github.com/pdx-cs-rust/parallel/internal/task"
	"golang.org/x/sync/errgroup"
	"strconv"
	"sync/atomic"
)

// dataParallel generates every block with one parallel map and reduces them
// with a second one. Index i of the output always belongs to block i.
type dataParallel struct {
	base
	workers int
}

func (s *dataParallel) Run(rounds, blockSize int) error {
	if err := s.check(rounds, blockSize); err != nil {
		return err
	}

	gens := s.seed(rounds)
	blocks := make([]block.Block, rounds)
	if err := s.parallelMap("generate", rounds, func(i int) error {
		blocks[i] = s.generate(blockSize, gens[i])
		gens[i] = nil
		return nil
	}); err != nil {
		return err
	}

	results := make([]stats.Result, rounds)
	if err := s.parallelMap("reduce", rounds, func(i int) error {
		results[i] = s.reduce(blocks[i])
		return nil
	}); err != nil {
		return err
	}

	for i, r := range results {
		if err := s.emit(i, r); err != nil {
			return err
		}
	}
	return nil
}

// parallelMap runs fn(i) for i in [0, n) on a bounded pool. Idle workers pull
// the next unclaimed index, so a slow item never stalls the rest of the range.
func (s *dataParallel) parallelMap(phase string, n int, fn func(i int) error) error {
	workers := min(s.workers, n)
	g, ctx := errgroup.WithContext(context.Background())

	var next atomic.Int64
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for ctx.Err() == nil {
				i := int(next.Add(1) - 1)
				if i >= n {
					return nil
				}
				name := string(s.mode) + "/" + phase + "#" + strconv.Itoa(i)
				if err := task.Guard(name, func() error { return fn(i) }); err != nil {
					return err
				}
			}
			return nil
		})
	}

	err := g.Wait()
	s.logger.Debug().Str("phase", phase).Int("workers", workers).Int("items", n).Err(err).Msg("parallel map done")
	return err
}
