package stream

import (
	"log"
	"sync"
)

// Stream is an unbounded FIFO between producer goroutines and one consumer.
type Stream[T any] struct {
	name     string
	elements []T
	closed   bool
	*sync.Cond
}

func NewStream[T any](name string) *Stream[T] {
	return &Stream[T]{
		Cond: sync.NewCond(&sync.Mutex{}),
		name: name,
	}
}

// Push appends msg. Pushing to a closed stream drops msg.
func (s *Stream[T]) Push(msg T) {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	if s.closed {
		log.Printf("[TRACE] stream %s: dropped %#v", s.name, msg)
		return
	}
	s.elements = append(s.elements, msg)
	s.Cond.Signal()
}

// Pull blocks until an element is available. It returns false once the
// stream is closed and drained.
func (s *Stream[T]) Pull() (T, bool) {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	for len(s.elements) == 0 {
		if s.closed {
			var zero T
			return zero, false
		}
		s.Cond.Wait()
	}
	msg := s.elements[0]
	s.elements = s.elements[1:]
	return msg, true
}

// PullAll takes every pending element without blocking.
func (s *Stream[T]) PullAll() []T {
	s.Cond.L.Lock()
	msgs := s.elements
	s.elements = nil
	s.Cond.L.Unlock()
	return msgs
}

func (s *Stream[T]) Close() {
	s.Cond.L.Lock()
	s.closed = true
	s.Cond.Broadcast()
	s.Cond.L.Unlock()
}
