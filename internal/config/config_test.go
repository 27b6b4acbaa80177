package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("unexpected error writing config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("expected a missing file to be fine, got %v", err)
	}
	if cfg.TickRate != 60 {
		t.Fatalf("expected default tick rate 60, got %d", cfg.TickRate)
	}
	if cfg.SmeltXP != 20 {
		t.Fatalf("expected default smelt xp 20, got %d", cfg.SmeltXP)
	}
	if len(cfg.Recipes) != 10 {
		t.Fatalf("expected the stock recipe table, got %d entries", len(cfg.Recipes))
	}
}

func TestLoadOverridesAndBackfills(t *testing.T) {
	path := writeConfig(t, `
tick_rate: 30
smelt_duration: 4s
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TickRate != 30 {
		t.Fatalf("expected tick rate 30, got %d", cfg.TickRate)
	}
	if time.Duration(cfg.SmeltDuration) != 4*time.Second {
		t.Fatalf("expected 4s smelt duration, got %v", time.Duration(cfg.SmeltDuration))
	}
	if cfg.XPCurve.Base != 100 {
		t.Fatalf("expected unset xp curve backfilled, got base %d", cfg.XPCurve.Base)
	}
	if len(cfg.Logging.Sinks) == 0 {
		t.Fatalf("expected default sinks backfilled")
	}
}

func TestLoadParseErrorFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, "tick_rate: [not a number\n")
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected a parse error to be reported")
	}
	if cfg.TickRate != 60 {
		t.Fatalf("expected defaults alongside the error, got tick rate %d", cfg.TickRate)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	path := writeConfig(t, "smelt_duration: soon\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for an unparseable duration")
	}
}

func TestSmeltTicks(t *testing.T) {
	cfg := Default()
	if got := cfg.SmeltTicks(); got != 120 {
		t.Fatalf("expected 2s at 60 tps to be 120 ticks, got %d", got)
	}

	cfg.SmeltDuration = Duration(time.Millisecond)
	if got := cfg.SmeltTicks(); got != 1 {
		t.Fatalf("expected a minimum of one tick, got %d", got)
	}
}

func TestStateRecipesConversion(t *testing.T) {
	cfg := Default()
	recipes := cfg.StateRecipes()
	if len(recipes) != len(cfg.Recipes) {
		t.Fatalf("expected %d recipes, got %d", len(cfg.Recipes), len(recipes))
	}
	first := recipes[0]
	if first.Name != "Bronze Dagger" || first.BarKind() != "bronze_bar" || first.OutputKind() != "bronze_dagger" {
		t.Fatalf("unexpected first recipe conversion: %+v", first)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	path := writeConfig(t, "tick_rate: 60\n")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("unexpected error starting watcher: %v", err)
	}
	defer w.Close()

	// Let the watcher goroutine settle before the write.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("tick_rate: 30\n"), 0o644); err != nil {
		t.Fatalf("unexpected error rewriting config: %v", err)
	}

	select {
	case <-w.Events:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a watcher event for the rewritten file")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: 60\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("unexpected error starting watcher: %v", err)
	}
	defer w.Close()

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case name := <-w.Events:
		t.Fatalf("expected no event for a sibling file, got %q", name)
	case <-time.After(300 * time.Millisecond):
	}
}
