package app

import (
	"testing"

	"tilesmith/internal/state"
)

func TestSkillLineShowsNextLevelTarget(t *testing.T) {
	g := &Game{actor: &state.Actor{Skills: state.NewSkills(state.XPThresholds(100, 1.1, 99))}}

	got := g.skillLine("Mining", g.actor.Skills.Mining)
	want := "Mining: lvl 1 (0 / 100 xp)"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSkillLineAtCapOmitsTarget(t *testing.T) {
	g := &Game{actor: &state.Actor{Skills: state.NewSkills(state.XPThresholds(100, 1.1, 2))}}
	g.actor.Skills.AddMiningXP(100)

	got := g.skillLine("Mining", g.actor.Skills.Mining)
	want := "Mining: lvl 2 (100 xp)"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
