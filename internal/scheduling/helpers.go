package scheduling

import "fmt"

// escalate handles an under-resourced priority-A preventive task: it drafts
// line-compatible but unskilled "helpers" to fill the gap, keeping as many
// skilled technicians as possible and requiring the skilled subset alone to
// still cover every required technology. Helpers used on the winning group
// earn a minimal skill credit, queued for write-back after the run commits.
func (e *Engine) escalate(st *runState, task TaskDefinition, instanceID string, skilled []*workerState, in Input) bool {
	names := make([]string, len(skilled))
	skilledSet := make(map[string]bool, len(skilled))
	for i, ws := range skilled {
		names[i] = ws.worker.Name
		skilledSet[ws.worker.Name] = true
	}
	st.recordUnderResourced(UnderResourcedTask{
		TaskID:              task.ID,
		Needed:              task.TechniciansNeeded,
		Available:           len(skilled),
		EligibleTechnicians: names,
	})

	var helpers []*workerState
	for _, name := range st.names {
		if skilledSet[name] {
			continue
		}
		ws := st.workers[name]
		if eligibleHelper(task, ws.worker) {
			helpers = append(helpers, ws)
		}
	}
	if len(helpers) == 0 {
		return false
	}

	need := task.TechniciansNeeded
	maxSkilled := len(skilled)
	if maxSkilled > need {
		maxSkilled = need
	}

	for s := maxSkilled; s >= 0; s-- {
		helperCount := need - s
		if helperCount > len(helpers) {
			// Even fewer skilled members would need even more helpers.
			break
		}
		if helperCount <= 0 {
			continue
		}

		var composite [][]*workerState
		combinations(len(skilled), s, func(si []int) {
			subset := make([]*workerState, 0, need)
			for _, i := range si {
				subset = append(subset, skilled[i])
			}
			if !coversRequired(task, subset) {
				return
			}
			combinations(len(helpers), helperCount, func(hi []int) {
				group := make([]*workerState, 0, need)
				group = append(group, subset...)
				for _, i := range hi {
					group = append(group, helpers[i])
				}
				composite = append(composite, group)
			})
		})
		if len(composite) == 0 {
			continue
		}

		for _, g := range rankGroups(task, composite) {
			effective := effectiveDuration(task.PlannedMinutes, need, len(g.members))
			pl, ok := findSlot(g.members, effective, in.TotalMinutes, e.cfg)
			if !ok {
				continue
			}
			st.recordAssignments(instanceID, commitPlacement(task, instanceID, g.members, pl, effective), pl.incomplete)
			for _, m := range g.members {
				if skilledSet[m.worker.Name] {
					continue
				}
				for _, tech := range task.RequiredSkills {
					if m.worker.SkillLevel(tech) == 0 {
						st.recordUpgrade(SkillUpgrade{
							Technician:   m.worker.Name,
							TechnologyID: tech,
							NewLevel:     1,
							Reason: fmt.Sprintf("drafted as helper on under-resourced task %s (%s)",
								task.ID, task.Name),
						})
					}
				}
			}
			return true
		}
	}
	return false
}
