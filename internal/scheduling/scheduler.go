// Package scheduling implements the weekend planning engine: it assigns
// groups of technicians to maintenance and repair task instances across one
// shift, maximizing completion of high-priority work under shift-capacity,
// skill-coverage, and line-eligibility constraints. The engine is a pure
// in-memory computation; its only side effect is the helper skill write-back
// through the optional collaborator interfaces.
package scheduling

import (
	"fmt"
	"log"
	"sort"
)

// Engine runs scheduling invocations. It is safe to reuse across runs; each
// run builds its state from the Input alone.
type Engine struct {
	cfg    Config
	skills SkillStore
	audit  AuditLog
}

// New builds an engine. Either collaborator may be nil, in which case helper
// skill upgrades are only reported in the Result.
func New(cfg Config, skills SkillStore, audit AuditLog) *Engine {
	return &Engine{cfg: cfg.normalized(), skills: skills, audit: audit}
}

// runScore ranks one simulated ordering of the priority-A subset. Orderings
// compare lexicographically: more fully assigned definitions first, then the
// lower priority-weighted penalty for missing or incomplete instances.
type runScore struct {
	fullyAssigned int
	penalty       int
}

func (a runScore) betterThan(b runScore) bool {
	if a.fullyAssigned != b.fullyAssigned {
		return a.fullyAssigned > b.fullyAssigned
	}
	return a.penalty < b.penalty
}

// Schedule performs one complete scheduling run.
func (e *Engine) Schedule(in Input) *Result {
	st := newRunState(in.Workers)

	var high, rest []TaskDefinition
	for _, t := range in.Tasks {
		if t.PriorityRank() == 1 {
			high = append(high, t)
		} else {
			rest = append(rest, t)
		}
	}
	sortHardestFirst(high)

	if len(high) > 0 && len(high) <= e.cfg.MaxPermutationTasks {
		st = e.bestPermutation(st, high, in)
	} else {
		for _, t := range high {
			e.assignDefinition(st, t, in)
		}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		ri, rj := rest[i].PriorityRank(), rest[j].PriorityRank()
		if ri != rj {
			return ri < rj
		}
		return harderThan(rest[i], rest[j])
	})
	for _, t := range rest {
		e.assignDefinition(st, t, in)
	}

	e.flushUpgrades(st)
	return e.buildResult(st, in)
}

// bestPermutation simulates every ordering of the priority-A subset against
// a fresh copy of the worker timelines and commits the best-scoring run.
func (e *Engine) bestPermutation(base *runState, high []TaskDefinition, in Input) *runState {
	var best *runState
	var bestScore runScore

	order := make([]TaskDefinition, len(high))
	used := make([]bool, len(high))
	var walk func(depth int)
	walk = func(depth int) {
		if depth == len(high) {
			sim := base.clone()
			for _, t := range order {
				e.assignDefinition(sim, t, in)
			}
			score := e.scoreRun(sim, high)
			if best == nil || score.betterThan(bestScore) {
				best, bestScore = sim, score
			}
			return
		}
		for i := range high {
			if used[i] {
				continue
			}
			used[i] = true
			order[depth] = high[i]
			walk(depth + 1)
			used[i] = false
		}
	}
	walk(0)
	return best
}

// scoreRun evaluates a simulated run over the given definitions. A
// definition counts as fully assigned when every instance carries records
// and none is incomplete; anything less contributes a priority-weighted
// penalty per missing or incomplete instance.
func (e *Engine) scoreRun(st *runState, tasks []TaskDefinition) runScore {
	incomplete := make(map[string]bool, len(st.incomplete))
	for _, id := range st.incomplete {
		incomplete[id] = true
	}

	var score runScore
	for _, t := range tasks {
		missing := 0
		if t.Quantity <= 0 {
			missing = 1
		}
		for n := 1; n <= t.Quantity; n++ {
			id := t.InstanceID(n)
			if !st.assignedIDs[id] || incomplete[id] {
				missing++
			}
		}
		if missing == 0 {
			score.fullyAssigned++
			continue
		}
		weight := 'Z' - 'A' + 2 - t.PriorityRank()
		if weight < 1 {
			weight = 1
		}
		score.penalty += weight * missing
	}
	return score
}

// sortHardestFirst orders definitions by descending headcount, then
// descending duration, then id. Placing the hardest tasks first leaves the
// flexible ones to fill the gaps.
func sortHardestFirst(tasks []TaskDefinition) {
	sort.SliceStable(tasks, func(i, j int) bool { return harderThan(tasks[i], tasks[j]) })
}

func harderThan(a, b TaskDefinition) bool {
	if a.TechniciansNeeded != b.TechniciansNeeded {
		return a.TechniciansNeeded > b.TechniciansNeeded
	}
	if a.PlannedMinutes != b.PlannedMinutes {
		return a.PlannedMinutes > b.PlannedMinutes
	}
	return a.ID < b.ID
}

// flushUpgrades pushes the committed run's helper skill upgrades through the
// collaborators. Failures are logged and never abort the run; the schedule
// stands either way.
func (e *Engine) flushUpgrades(st *runState) {
	for _, up := range st.upgrades {
		if e.skills != nil {
			if err := e.skills.RaiseSkillLevel(up.Technician, up.TechnologyID, up.NewLevel, up.Reason); err != nil {
				log.Printf("scheduling: skill write-back failed for %s/technology %d: %v",
					up.Technician, up.TechnologyID, err)
			}
		}
		if e.audit != nil {
			detail := fmt.Sprintf("%s: technology %d raised to level %d (%s)",
				up.Technician, up.TechnologyID, up.NewLevel, up.Reason)
			if err := e.audit.Record("skill_upgrade", detail); err != nil {
				log.Printf("scheduling: audit write failed: %v", err)
			}
		}
	}
}

// buildResult assembles the outward-facing result from the committed state.
func (e *Engine) buildResult(st *runState, in Input) *Result {
	res := &Result{
		Assignments:         st.assignments,
		UnassignedReasons:   st.reasons,
		IncompleteInstances: st.incomplete,
		AvailableMinutes:    make(map[string]int, len(st.names)),
		UnderResourced:      st.underResourced,
		SkillUpgrades:       st.upgrades,
	}
	for _, name := range st.names {
		free := in.TotalMinutes - st.workers[name].busy
		if free < 0 {
			free = 0
		}
		res.AvailableMinutes[name] = free
	}
	if res.Assignments == nil {
		res.Assignments = []Assignment{}
	}
	if res.IncompleteInstances == nil {
		res.IncompleteInstances = []string{}
	}
	if res.UnderResourced == nil {
		res.UnderResourced = []UnderResourcedTask{}
	}
	if res.SkillUpgrades == nil {
		res.SkillUpgrades = []SkillUpgrade{}
	}
	return res
}
