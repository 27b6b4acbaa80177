package state

import "testing"

func TestXPThresholdsGeometricGrowth(t *testing.T) {
	thresholds := XPThresholds(100, 1.1, 5)
	want := []int{100, 110, 121, 133}
	if len(thresholds) != len(want) {
		t.Fatalf("expected %d thresholds, got %d", len(want), len(thresholds))
	}
	for i, v := range want {
		if thresholds[i] != v {
			t.Fatalf("threshold[%d] = %d, want %d", i, thresholds[i], v)
		}
	}
}

func TestSkillsStartAtLevelOne(t *testing.T) {
	s := NewSkills(XPThresholds(100, 1.1, 99))
	if s.Mining.Level != 1 || s.Smithing.Level != 1 {
		t.Fatalf("expected both skills at level 1, got mining %d smithing %d", s.Mining.Level, s.Smithing.Level)
	}
}

func TestSingleAwardLevelsUp(t *testing.T) {
	s := NewSkills(XPThresholds(100, 1.1, 99))

	if gained := s.AddMiningXP(99); gained != 0 {
		t.Fatalf("expected no level below the threshold, gained %d", gained)
	}
	if gained := s.AddMiningXP(1); gained != 1 {
		t.Fatalf("expected level up at exactly 100 xp, gained %d", gained)
	}
	if s.Mining.Level != 2 {
		t.Fatalf("expected level 2, got %d", s.Mining.Level)
	}
}

func TestLargeAwardCascades(t *testing.T) {
	s := NewSkills(XPThresholds(100, 1.1, 99))

	// 121 total crosses the level 2 (100), 3 (110) and 4 (121) thresholds.
	gained := s.AddSmithingXP(121)
	if gained != 3 {
		t.Fatalf("expected 3 levels from one award, gained %d", gained)
	}
	if s.Smithing.Level != 4 {
		t.Fatalf("expected level 4, got %d", s.Smithing.Level)
	}
	if s.Mining.Level != 1 {
		t.Fatalf("expected mining untouched, got %d", s.Mining.Level)
	}
}

func TestLevelCapsAtTableEnd(t *testing.T) {
	s := NewSkills(XPThresholds(10, 1.0, 3))

	s.AddMiningXP(1000000)
	if s.Mining.Level != 3 {
		t.Fatalf("expected level capped at 3, got %d", s.Mining.Level)
	}
	if _, ok := s.NextThreshold(s.Mining); ok {
		t.Fatalf("expected no next threshold at the cap")
	}
}

func TestNegativeAwardIgnored(t *testing.T) {
	s := NewSkills(XPThresholds(100, 1.1, 99))
	if gained := s.AddMiningXP(-50); gained != 0 {
		t.Fatalf("expected negative xp to be ignored, gained %d", gained)
	}
	if s.Mining.XP != 0 {
		t.Fatalf("expected xp unchanged, got %d", s.Mining.XP)
	}
}
