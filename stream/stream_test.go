package stream

import (
	"testing"
)

func TestOrder(t *testing.T) {
	s := NewStream[int]("test")
	go func() {
		for i := 0; i < 100; i++ {
			s.Push(i)
		}
	}()
	for i := 0; i < 100; i++ {
		msg, ok := s.Pull()
		if !ok || msg != i {
			t.Fatalf("Expected %d got %d (ok=%v)", i, msg, ok)
		}
	}
}

func TestPullAll(t *testing.T) {
	s := NewStream[string]("test")
	s.Push("a")
	s.Push("b")
	msgs := s.PullAll()
	if len(msgs) != 2 || msgs[0] != "a" || msgs[1] != "b" {
		t.Errorf("unexpected %v", msgs)
	}
	if len(s.PullAll()) != 0 {
		t.Error("Expected empty stream")
	}
}

func TestClose(t *testing.T) {
	s := NewStream[int]("test")
	s.Push(1)
	s.Close()
	s.Push(2)

	if msg, ok := s.Pull(); !ok || msg != 1 {
		t.Errorf("Expected pending element, got %d %v", msg, ok)
	}
	if _, ok := s.Pull(); ok {
		t.Error("Expected closed stream")
	}

	done := make(chan bool)
	blocked := NewStream[int]("blocked")
	go func() {
		_, ok := blocked.Pull()
		done <- ok
	}()
	blocked.Close()
	if <-done {
		t.Error("Pull on closed stream returned ok")
	}
}
