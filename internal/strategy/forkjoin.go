package strategy

import (
	"github.com/pdx-cs-rust/parallel/internal/stats"
	"github.com/pdx-cs-rust/parallel/internal/task"
)

// forkJoin spawns one task per round and joins them in spawn order,
// so emission follows spawn order no matter which task finishes first.
type forkJoin struct {
	base
}

func (s *forkJoin) Run(rounds, blockSize int) error {
	if err := s.check(rounds, blockSize); err != nil {
		return err
	}

	gens := s.seed(rounds)
	handles := make([]*task.Handle[stats.Result], 0, rounds)
	for i, g := range gens {
		i, g := i, g // per-iteration copies (go1.21 loop semantics)
		handles = append(handles, task.Spawn(s.taskName(i), func() (stats.Result, error) {
			return s.reduce(s.generate(blockSize, g)), nil
		}))
	}
	s.logger.Debug().Int("tasks", len(handles)).Msg("spawned")

	return s.joinInOrder(handles)
}

// arc generates a single block and lets every task reduce it read-only.
type arc struct {
	base
}

func (s *arc) Run(rounds, blockSize int) error {
	if err := s.check(rounds, blockSize); err != nil {
		return err
	}

	if rounds == 0 {
		return nil
	}

	shared := s.generate(blockSize, s.rng.Local())
	handles := make([]*task.Handle[stats.Result], 0, rounds)
	for i := 0; i < rounds; i++ {
		handles = append(handles, task.Spawn(s.taskName(i), func() (stats.Result, error) {
			return s.reduce(shared), nil
		}))
	}
	if e := s.logger.Debug(); e.Enabled() {
		e.Int("tasks", len(handles)).Uint64("fingerprint", shared.Fingerprint()).Msg("spawned readers")
	}

	return s.joinInOrder(handles)
}

func (b *base) joinInOrder(handles []*task.Handle[stats.Result]) error {
	for i, h := range handles {
		r, err := h.Join()
		if err != nil {
			return err
		}
		if err = b.emit(i, r); err != nil {
			return err
		}
	}
	return nil
}
