package strategy

import (
	"github.com/pdx-cs-rust/parallel/internal/task"
)

// fanIn has every producer send its result into one channel drained by a
// single consumer. Emission follows arrival order.
type fanIn struct {
	base
}

func (s *fanIn) Run(rounds, blockSize int) error {
	if err := s.check(rounds, blockSize); err != nil {
		return err
	}

	// Room for every result: producers never block on a slow or failed consumer.
	results := make(chan Record, rounds)

	consumer := task.Go(string(s.mode)+"/consumer", func() error {
		for rec := range results {
			if err := s.sink.Emit(rec); err != nil {
				return err
			}
		}
		return nil
	})

	gens := s.seed(rounds)
	producers := make([]*task.Handle[struct{}], 0, rounds)
	for i, g := range gens {
		i, g := i, g // per-iteration copies (go1.21 loop semantics)
		producers = append(producers, task.Go(s.taskName(i), func() error {
			results <- Record{Index: i, Result: s.reduce(s.generate(blockSize, g))}
			return nil
		}))
	}

	// Every sender is gone once all producers are joined.
	producerErr := task.JoinAll(producers)
	close(results)

	_, consumerErr := consumer.Join()
	if producerErr != nil {
		return producerErr
	}
	return consumerErr
}
