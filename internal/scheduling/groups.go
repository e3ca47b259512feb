package scheduling

import "sort"

// combinations enumerates every k-element index subset of [0, n) in
// lexicographic order and hands it to visit. The slice passed to visit is
// reused between calls; visit must copy it if it keeps it.
func combinations(n, k int, visit func(idx []int)) {
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	var walk func(pos, start int)
	walk = func(pos, start int) {
		if pos == k {
			visit(idx)
			return
		}
		for i := start; i <= n-(k-pos); i++ {
			idx[pos] = i
			walk(pos+1, i+1)
		}
	}
	walk(0, 0)
}

// summedSkill ranks a worker for pool truncation: the sum of levels across
// the task's required technologies, or across every known technology when
// the task carries none.
func summedSkill(task TaskDefinition, w Worker) int {
	total := 0
	if len(task.RequiredSkills) > 0 {
		for _, id := range task.RequiredSkills {
			total += w.SkillLevel(id)
		}
		return total
	}
	for _, lvl := range w.Skills {
		total += lvl
	}
	return total
}

// capPool truncates an oversized eligible pool to the top workers by summed
// skill level, names breaking ties, so combination enumeration stays bounded.
func capPool(task TaskDefinition, pool []*workerState, limit int) []*workerState {
	if len(pool) <= limit {
		return pool
	}
	capped := append([]*workerState(nil), pool...)
	sort.Slice(capped, func(i, j int) bool {
		si, sj := summedSkill(task, capped[i].worker), summedSkill(task, capped[j].worker)
		if si != sj {
			return si > sj
		}
		return capped[i].worker.Name < capped[j].worker.Name
	})
	return capped[:limit]
}

// coversRequired reports whether the group's union of possessed technologies
// (level > 0) is a superset of the task's required set. Coverage is a group
// property; no single member has to hold every skill.
func coversRequired(task TaskDefinition, members []*workerState) bool {
	for _, id := range task.RequiredSkills {
		covered := false
		for _, m := range members {
			if m.worker.SkillLevel(id) > 0 {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// generateGroups enumerates admissible worker groups for a task instance.
// Sizes are centered on techniciansNeeded within the configured window,
// forced members appear in every group, and PM groups must collectively
// cover the full required-technology set.
func generateGroups(task TaskDefinition, pool, forced []*workerState, cfg Config) [][]*workerState {
	pool = capPool(task, pool, cfg.MaxTechsForCombinations)

	lo := task.TechniciansNeeded - cfg.GroupSizeSearchRange
	hi := task.TechniciansNeeded + cfg.GroupSizeSearchRange
	if lo < 1 {
		lo = 1
	}
	if max := len(pool) + len(forced); hi > max {
		hi = max
	}

	var groups [][]*workerState
	emittedForcedOnly := false
	for size := lo; size <= hi; size++ {
		rem := size - len(forced)
		if rem < 0 || rem > len(pool) {
			continue
		}
		if rem == 0 {
			if emittedForcedOnly || len(forced) == 0 {
				continue
			}
			emittedForcedOnly = true
			group := append([]*workerState(nil), forced...)
			if coversRequired(task, group) {
				groups = append(groups, group)
			}
			continue
		}
		combinations(len(pool), rem, func(idx []int) {
			group := make([]*workerState, 0, size)
			group = append(group, forced...)
			for _, i := range idx {
				group = append(group, pool[i])
			}
			if coversRequired(task, group) {
				groups = append(groups, group)
			}
		})
	}

	// A forced set larger than the whole size window still has to be honored.
	if len(forced) > hi && hi >= lo {
		group := append([]*workerState(nil), forced...)
		if coversRequired(task, group) {
			groups = append(groups, group)
		}
	}

	return groups
}
