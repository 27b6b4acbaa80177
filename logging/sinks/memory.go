package sinks

import (
	"context"
	"sync"

	"tilesmith/logging"
)

// Memory buffers events for tests.
type Memory struct {
	mu     sync.Mutex
	events []logging.Event
}

func NewMemory() *Memory {
	return &Memory{}
}

func (s *Memory) Write(event logging.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *Memory) Close(context.Context) error {
	return nil
}

// Events returns a copy of everything written so far.
func (s *Memory) Events() []logging.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]logging.Event, len(s.events))
	copy(out, s.events)
	return out
}
