package strategy

// sequential generates and reduces one block per round on the calling goroutine.
type sequential struct {
	base
}

func (s *sequential) Run(rounds, blockSize int) error {
	if err := s.check(rounds, blockSize); err != nil {
		return err
	}
	for i := 0; i < rounds; i++ {
		blk := s.generate(blockSize, s.rng.Local())
		if err := s.emit(i, s.reduce(blk)); err != nil {
			return err
		}
	}
	return nil
}
