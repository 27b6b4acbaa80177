package logging_test

import (
	"context"
	"testing"
	"time"

	"tilesmith/logging"
	"tilesmith/logging/sinks"
)

func fixedClock(t time.Time) logging.Clock {
	return logging.ClockFunc(func() time.Time { return t })
}

func TestRouterDeliversInOrder(t *testing.T) {
	mem := sinks.NewMemory()
	router := logging.NewRouter(nil, logging.DefaultConfig(), []logging.NamedSink{
		{Name: "memory", Sink: mem},
	})

	ctx := context.Background()
	router.Publish(ctx, logging.Event{Type: "first", Severity: logging.SeverityInfo})
	router.Publish(ctx, logging.Event{Type: "second", Severity: logging.SeverityInfo})

	events := mem.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Type != "first" || events[1].Type != "second" {
		t.Fatalf("expected publish order preserved, got %s then %s", events[0].Type, events[1].Type)
	}
}

func TestRouterFiltersBySeverity(t *testing.T) {
	mem := sinks.NewMemory()
	cfg := logging.DefaultConfig()
	cfg.MinimumSeverity = logging.SeverityWarn
	router := logging.NewRouter(nil, cfg, []logging.NamedSink{
		{Name: "memory", Sink: mem},
	})

	ctx := context.Background()
	router.Publish(ctx, logging.Event{Type: "quiet", Severity: logging.SeverityInfo})
	router.Publish(ctx, logging.Event{Type: "loud", Severity: logging.SeverityError})

	events := mem.Events()
	if len(events) != 1 || events[0].Type != "loud" {
		t.Fatalf("expected only the error through, got %+v", events)
	}
}

func TestRouterBackfillsTime(t *testing.T) {
	mem := sinks.NewMemory()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	router := logging.NewRouter(fixedClock(now), logging.DefaultConfig(), []logging.NamedSink{
		{Name: "memory", Sink: mem},
	})

	router.Publish(context.Background(), logging.Event{Type: "stamped", Severity: logging.SeverityInfo})

	events := mem.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if !events[0].Time.Equal(now) {
		t.Fatalf("expected the clock's time, got %v", events[0].Time)
	}
}

func TestRouterInjectsConfiguredFields(t *testing.T) {
	mem := sinks.NewMemory()
	cfg := logging.DefaultConfig()
	cfg.Fields = map[string]any{"build": "test"}
	router := logging.NewRouter(nil, cfg, []logging.NamedSink{
		{Name: "memory", Sink: mem},
	})

	router.Publish(context.Background(), logging.Event{Type: "tagged", Severity: logging.SeverityInfo})

	events := mem.Events()
	if got := events[0].Extra["build"]; got != "test" {
		t.Fatalf("expected injected field, got %v", got)
	}
}

func TestWithFieldsDoesNotOverride(t *testing.T) {
	mem := sinks.NewMemory()
	router := logging.NewRouter(nil, logging.DefaultConfig(), []logging.NamedSink{
		{Name: "memory", Sink: mem},
	})
	pub := logging.WithFields(router, map[string]any{"source": "wrapper"})

	pub.Publish(context.Background(), logging.Event{
		Type:     "explicit",
		Severity: logging.SeverityInfo,
		Extra:    map[string]any{"source": "event"},
	})

	events := mem.Events()
	if got := events[0].Extra["source"]; got != "event" {
		t.Fatalf("expected the event's own field kept, got %v", got)
	}
}
