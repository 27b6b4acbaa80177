package logging

import (
	"context"
	"log"
	"os"
	"time"
)

type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

type Sink interface {
	Write(Event) error
	Close(context.Context) error
}

type NamedSink struct {
	Name string
	Sink Sink
}

// Router fans events out to its sinks synchronously. The simulation is
// single-threaded and frame-driven, so there is no queue or worker pool;
// events are delivered in the order they are published, and a failing sink
// falls back to stderr instead of taking the frame down.
type Router struct {
	sinks       []NamedSink
	clock       Clock
	fallback    *log.Logger
	minSeverity Severity
	fields      map[string]any
}

func NewRouter(clock Clock, cfg Config, sinks []NamedSink) *Router {
	if clock == nil {
		clock = ClockFunc(time.Now)
	}
	kept := make([]NamedSink, 0, len(sinks))
	for _, named := range sinks {
		if named.Sink != nil {
			kept = append(kept, named)
		}
	}
	return &Router{
		sinks:       kept,
		clock:       clock,
		fallback:    log.New(os.Stderr, "[logging] ", log.LstdFlags),
		minSeverity: cfg.MinimumSeverity,
		fields:      cfg.CloneFields(),
	}
}

// Publish satisfies Publisher.
func (r *Router) Publish(_ context.Context, event Event) {
	if r == nil || event.Severity < r.minSeverity {
		return
	}
	if event.Time.IsZero() {
		event.Time = r.clock.Now()
	}
	if len(r.fields) > 0 {
		if event.Extra == nil {
			event.Extra = make(map[string]any, len(r.fields))
		}
		for k, v := range r.fields {
			if _, exists := event.Extra[k]; !exists {
				event.Extra[k] = v
			}
		}
	}
	for _, named := range r.sinks {
		if err := named.Sink.Write(event); err != nil {
			r.fallback.Printf("sink %s dropped event %s: %v", named.Name, event.Type, err)
		}
	}
}

// Close flushes and closes every sink.
func (r *Router) Close(ctx context.Context) {
	for _, named := range r.sinks {
		if err := named.Sink.Close(ctx); err != nil {
			r.fallback.Printf("sink %s close: %v", named.Name, err)
		}
	}
}
