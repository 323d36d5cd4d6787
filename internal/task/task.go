package task

import (
	"fmt"
	"runtime/debug"
)

// WorkerFault is a panic recovered from a spawned task.
type WorkerFault struct {
	Task  string
	Value any
	Stack []byte
}

func (f *WorkerFault) Error() string {
	return fmt.Sprintf("worker fault in %s: %v", f.Task, f.Value)
}

// Handle is the join side of a spawned task.
type Handle[T any] struct {
	name string
	done chan struct{}
	val  T
	err  error
}

// Spawn runs fn in a new goroutine. A panic inside fn is reported by Join as *WorkerFault.
func Spawn[T any](name string, fn func() (T, error)) *Handle[T] {
	h := &Handle[T]{name: name, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		h.err = Guard(name, func() (err error) {
			h.val, err = fn()
			return err
		})
	}()
	return h
}

// Go spawns a task without a result.
func Go(name string, fn func() error) *Handle[struct{}] {
	return Spawn(name, func() (struct{}, error) {
		return struct{}{}, fn()
	})
}

// Name returns the task name given at spawn.
func (h *Handle[T]) Name() string { return h.name }

// Join blocks until the task completes or faults.
func (h *Handle[T]) Join() (T, error) {
	<-h.done
	return h.val, h.err
}

// Guard runs fn on the calling goroutine and converts a panic into *WorkerFault.
func Guard(name string, fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &WorkerFault{Task: name, Value: v, Stack: debug.Stack()}
		}
	}()
	return fn()
}

// JoinAll joins handles in order and returns the first error met.
func JoinAll[T any](handles []*Handle[T]) error {
	var first error
	for _, h := range handles {
		if _, err := h.Join(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
