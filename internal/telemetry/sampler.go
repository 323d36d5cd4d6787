package telemetry

// GeneratorMetrics is implemented by the shared generator.
type GeneratorMetrics interface {
	Metrics() (draws, retries int64)
}

// WorkMetrics is implemented by strategy counters.
type WorkMetrics interface {
	Metrics() (blocks, merges, reductions, handoffs int64)
}

type sampler struct {
	gen  GeneratorMetrics
	work WorkMetrics
}

func newSampler(gen GeneratorMetrics, work WorkMetrics) sampler {
	return sampler{gen: gen, work: work}
}

// snapshot holds cumulative counters (monotonic).
type snapshot struct {
	draws      uint64
	retries    uint64
	blocks     uint64
	merges     uint64
	reductions uint64
	handoffs   uint64
}

func (s sampler) snapshot() snapshot {
	draws, retries := s.gen.Metrics()
	blocks, merges, reductions, handoffs := s.work.Metrics()

	return snapshot{
		draws:      uint64(max(draws, 0)),
		retries:    uint64(max(retries, 0)),
		blocks:     uint64(max(blocks, 0)),
		merges:     uint64(max(merges, 0)),
		reductions: uint64(max(reductions, 0)),
		handoffs:   uint64(max(handoffs, 0)),
	}
}

// deltaSnapshot converts cumulative snapshots to per-interval deltas.
// If counters reset (cur < prev), it treats cur as the delta.
func deltaSnapshot(prev, cur snapshot) snapshot {
	return snapshot{
		draws:      delta(prev.draws, cur.draws),
		retries:    delta(prev.retries, cur.retries),
		blocks:     delta(prev.blocks, cur.blocks),
		merges:     delta(prev.merges, cur.merges),
		reductions: delta(prev.reductions, cur.reductions),
		handoffs:   delta(prev.handoffs, cur.handoffs),
	}
}

func delta(prev, cur uint64) uint64 {
	if cur >= prev {
		return cur - prev
	}
	return cur
}
