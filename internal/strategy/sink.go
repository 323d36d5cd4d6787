package strategy

import (
	"github.com/pdx-cs-rust/parallel/internal/stats"
	"io"
	"sync"
)

// Record is one emitted result with the index of the unit of work
// (round, task, stage or producer) that produced it.
type Record struct {
	Index  int
	Result stats.Result
}

// Sink receives results. Implementations must be safe for concurrent use.
type Sink interface {
	Emit(rec Record) error
}

// WriterSink writes one "(mean, variance)" line per record.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Emit(rec Record) error {
	line := rec.Result.String() + "\n"

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, line)
	return err
}

// DiscardSink drops every record.
type DiscardSink struct{}

func (DiscardSink) Emit(Record) error { return nil }
