package state

// Skill tracks one leveled ability. XP is a running total; Level is derived
// from it against the threshold table and never decreases.
type Skill struct {
	Level int
	XP    int
}

// Skills holds the actor's leveled abilities. Both skills share one
// threshold table.
type Skills struct {
	Mining   Skill
	Smithing Skill

	thresholds []int
}

// XPThresholds builds the cumulative XP totals required for each level-up:
// thresholds[0] is the total needed to reach level 2, and each following
// requirement grows by the given factor.
func XPThresholds(base int, growth float64, maxLevel int) []int {
	if maxLevel < 2 {
		return nil
	}
	thresholds := make([]int, 0, maxLevel-1)
	requirement := base
	for level := 2; level <= maxLevel; level++ {
		thresholds = append(thresholds, requirement)
		requirement = int(float64(requirement) * growth)
	}
	return thresholds
}

// NewSkills starts both skills at level 1 with the given threshold table.
func NewSkills(thresholds []int) Skills {
	return Skills{
		Mining:     Skill{Level: 1},
		Smithing:   Skill{Level: 1},
		thresholds: thresholds,
	}
}

// AddMiningXP awards XP and returns how many levels were gained. A single
// large award can cascade through several thresholds.
func (s *Skills) AddMiningXP(xp int) int {
	return s.award(&s.Mining, xp)
}

// AddSmithingXP awards XP and returns how many levels were gained.
func (s *Skills) AddSmithingXP(xp int) int {
	return s.award(&s.Smithing, xp)
}

func (s *Skills) award(skill *Skill, xp int) int {
	if xp < 0 {
		return 0
	}
	skill.XP += xp
	gained := 0
	for skill.Level-1 < len(s.thresholds) && skill.XP >= s.thresholds[skill.Level-1] {
		skill.Level++
		gained++
	}
	return gained
}

// NextThreshold returns the total XP required for the skill's next level,
// or (0, false) at the level cap.
func (s *Skills) NextThreshold(skill Skill) (int, bool) {
	idx := skill.Level - 1
	if idx < 0 || idx >= len(s.thresholds) {
		return 0, false
	}
	return s.thresholds[idx], true
}
