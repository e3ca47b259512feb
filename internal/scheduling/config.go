package scheduling

// Config bounds the combinatorial search. All limits are explicit inputs so
// runs are reproducible and independently configurable in tests.
type Config struct {
	// MaxPermutationTasks caps the priority-A subset that is searched
	// exhaustively over all orderings. Above the cap the subset is handled
	// greedily instead.
	MaxPermutationTasks int

	// MaxTechsForCombinations caps the eligible pool fed into combination
	// enumeration; larger pools are truncated to the top workers by summed
	// skill level first.
	MaxTechsForCombinations int

	// GroupSizeSearchRange widens candidate group sizes to
	// techniciansNeeded +/- range.
	GroupSizeSearchRange int

	// SlotStepMinutes is the granularity of trial start times.
	SlotStepMinutes int

	// PartialNum/PartialDen form the minimum fraction of the effective
	// duration that must still fit before shift end for a task to be
	// accepted as incomplete (3/4 by default).
	PartialNum int
	PartialDen int
}

// DefaultConfig returns the production limits.
func DefaultConfig() Config {
	return Config{
		MaxPermutationTasks:     3,
		MaxTechsForCombinations: 12,
		GroupSizeSearchRange:    1,
		SlotStepMinutes:         15,
		PartialNum:              3,
		PartialDen:              4,
	}
}

// normalized fills zero-valued fields with defaults so a partially built
// Config stays usable.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.MaxPermutationTasks <= 0 {
		c.MaxPermutationTasks = def.MaxPermutationTasks
	}
	if c.MaxTechsForCombinations <= 0 {
		c.MaxTechsForCombinations = def.MaxTechsForCombinations
	}
	if c.GroupSizeSearchRange < 0 {
		c.GroupSizeSearchRange = def.GroupSizeSearchRange
	}
	if c.SlotStepMinutes <= 0 {
		c.SlotStepMinutes = def.SlotStepMinutes
	}
	if c.PartialNum <= 0 || c.PartialDen <= 0 || c.PartialNum > c.PartialDen {
		c.PartialNum = def.PartialNum
		c.PartialDen = def.PartialDen
	}
	return c
}
