package strategy

import "sync/atomic"

// Counters accumulates work done by strategies. Safe for concurrent use.
type Counters struct {
	blocks     atomic.Int64 // blocks generated
	merges     atomic.Int64 // elementwise max merges
	reductions atomic.Int64 // stats reductions
	handoffs   atomic.Int64 // pipeline blocks received from a predecessor
}

func NewCounters() *Counters {
	return &Counters{
		blocks:     atomic.Int64{},
		merges:     atomic.Int64{},
		reductions: atomic.Int64{},
		handoffs:   atomic.Int64{},
	}
}

func (c *Counters) Metrics() (blocks, merges, reductions, handoffs int64) {
	return c.blocks.Load(), c.merges.Load(), c.reductions.Load(), c.handoffs.Load()
}
