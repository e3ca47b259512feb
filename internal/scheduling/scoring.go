package scheduling

import (
	"math"
	"sort"
	"strings"
)

// scoredGroup is a candidate group with every comparator key precomputed.
type scoredGroup struct {
	members []*workerState

	override    int       // min explicit group-priority override, maxInt when none
	sizeGap     int       // |size - techniciansNeeded|
	skillAvgs   []float64 // per required technology, in fixed ascending id order
	combinedAvg float64   // mean level across all members and required technologies
	workload    int       // already-scheduled minutes across members
	nameKey     string    // alphabetical member join, pure determinism tie-break
}

// scoreGroup computes every ranking key for one candidate group.
func scoreGroup(task TaskDefinition, skillOrder []int64, members []*workerState) scoredGroup {
	g := scoredGroup{members: members, override: math.MaxInt}

	for _, m := range members {
		if p, ok := m.worker.GroupPriority[task.ID]; ok && p < g.override {
			g.override = p
		}
		g.workload += m.busy
	}

	g.sizeGap = len(members) - task.TechniciansNeeded
	if g.sizeGap < 0 {
		g.sizeGap = -g.sizeGap
	}

	if len(skillOrder) > 0 && len(members) > 0 {
		g.skillAvgs = make([]float64, len(skillOrder))
		total := 0.0
		for i, id := range skillOrder {
			sum := 0
			for _, m := range members {
				sum += m.worker.SkillLevel(id)
			}
			g.skillAvgs[i] = float64(sum) / float64(len(members))
			total += float64(sum)
		}
		g.combinedAvg = total / float64(len(members)*len(skillOrder))
	}

	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.worker.Name
	}
	sort.Strings(names)
	g.nameKey = strings.Join(names, ",")

	return g
}

// lessScored is the multi-key comparator: explicit override first, then size
// closeness, then stronger per-skill coverage, then stronger combined skill,
// then lighter workload, then names for determinism.
func lessScored(a, b scoredGroup) bool {
	if a.override != b.override {
		return a.override < b.override
	}
	if a.sizeGap != b.sizeGap {
		return a.sizeGap < b.sizeGap
	}
	for i := 0; i < len(a.skillAvgs) && i < len(b.skillAvgs); i++ {
		if a.skillAvgs[i] != b.skillAvgs[i] {
			return a.skillAvgs[i] > b.skillAvgs[i]
		}
	}
	if a.combinedAvg != b.combinedAvg {
		return a.combinedAvg > b.combinedAvg
	}
	if a.workload != b.workload {
		return a.workload < b.workload
	}
	return a.nameKey < b.nameKey
}

// rankGroups scores and orders candidate groups, best first. The per-skill
// comparison order is the ascending required-technology id list so every run
// ranks identically.
func rankGroups(task TaskDefinition, groups [][]*workerState) []scoredGroup {
	skillOrder := append([]int64(nil), task.RequiredSkills...)
	sort.Slice(skillOrder, func(i, j int) bool { return skillOrder[i] < skillOrder[j] })

	scored := make([]scoredGroup, len(groups))
	for i, g := range groups {
		scored[i] = scoreGroup(task, skillOrder, g)
	}
	sort.SliceStable(scored, func(i, j int) bool { return lessScored(scored[i], scored[j]) })
	return scored
}
