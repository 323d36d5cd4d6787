package strategy

import (
	"fmt"
	"github.com/pdx-cs-rust/parallel/internal/block"
	"github.com/pdx-cs-rust/parallel/internal/shared/random"
	"github.com/pdx-cs-rust/parallel/internal/task"
)

// sequentialPipeline keeps one running block and folds a fresh block into it
// every round. After round i the running block holds the max of i+2 draws per position.
type sequentialPipeline struct {
	base
}

func (s *sequentialPipeline) Run(rounds, blockSize int) error {
	if err := s.check(rounds, blockSize); err != nil {
		return err
	}
	if rounds == 0 {
		return nil
	}

	running := s.generate(blockSize, s.rng.Local())
	for i := 0; i < rounds; i++ {
		s.merge(running, s.generate(blockSize, s.rng.Local()))
		if err := s.emit(i, s.reduce(running)); err != nil {
			return err
		}
	}
	return nil
}

// stagedPipeline runs one goroutine per stage joined by one-shot hand-off channels.
// Stage 0 generates its input; every other stage receives it from its predecessor.
// Each stage merges in a block of its own, reduces, emits and forwards unless last.
type stagedPipeline struct {
	base
}

type stage struct {
	index int
	in    <-chan block.Block // nil for stage 0
	out   chan<- block.Block // nil for the last stage
	input *random.Local      // stage 0 only
	own   *random.Local
}

func (s *stagedPipeline) Run(rounds, blockSize int) error {
	if err := s.check(rounds, blockSize); err != nil {
		return err
	}

	var in <-chan block.Block
	handles := make([]*task.Handle[struct{}], 0, rounds)
	for j := 0; j < rounds; j++ {
		st := &stage{index: j, in: in}
		if j == 0 {
			st.input = s.rng.Local()
		}
		st.own = s.rng.Local()
		if j < rounds-1 {
			// Capacity 1: the single hand-off never blocks the sender.
			link := make(chan block.Block, 1)
			st.out, in = link, link
		}
		handles = append(handles, task.Go(s.taskName(j), func() error {
			return s.runStage(st, blockSize)
		}))
	}
	s.logger.Debug().Int("stages", len(handles)).Msg("pipeline started")

	return task.JoinAll(handles)
}

func (s *stagedPipeline) runStage(st *stage, blockSize int) error {
	if st.out != nil {
		// A faulted stage closes without sending; the successor sees ErrUpstreamClosed.
		defer close(st.out)
	}

	own := s.generate(blockSize, st.own)

	var blk block.Block
	if st.in == nil {
		blk = s.generate(blockSize, st.input)
	} else {
		var ok bool
		if blk, ok = <-st.in; !ok {
			return fmt.Errorf("stage %d: %w", st.index, ErrUpstreamClosed)
		}
		s.counters.handoffs.Add(1)
	}

	s.merge(blk, own)
	if err := s.emit(st.index, s.reduce(blk)); err != nil {
		return err
	}

	if st.out == nil {
		return nil
	}
	if e := s.logger.Debug(); e.Enabled() {
		e.Int("from", st.index).Int("to", st.index+1).Uint64("fingerprint", blk.Fingerprint()).Msg("hand-off")
	}
	st.out <- blk
	return nil
}
