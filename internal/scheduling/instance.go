package scheduling

import "fmt"

// assignDefinition expands a task definition into its quantity-many
// instances and schedules each one independently.
func (e *Engine) assignDefinition(st *runState, task TaskDefinition, in Input) {
	if task.Quantity <= 0 {
		st.markUnassigned(task.InstanceID(1), ReasonInvalidConfiguration,
			fmt.Sprintf("task %s has no schedulable quantity (%d)", task.ID, task.Quantity))
		return
	}
	for n := 1; n <= task.Quantity; n++ {
		e.assignInstance(st, task, task.InstanceID(n), in)
	}
}

// assignInstance drives one instance from unprocessed to a terminal state:
// assigned (fully or partially) or unassigned with a reason. Malformed
// definitions land in the unassigned map, never in an error.
func (e *Engine) assignInstance(st *runState, task TaskDefinition, instanceID string, in Input) {
	switch {
	case task.TechniciansNeeded < 0 || task.PlannedMinutes < 0:
		st.markUnassigned(instanceID, ReasonInvalidConfiguration,
			fmt.Sprintf("task %s has negative headcount or duration", task.ID))
		return
	case task.TechniciansNeeded == 0 && task.PlannedMinutes == 0:
		// A real outcome: the instance is done with nobody on it.
		st.recordAssignments(instanceID, []Assignment{{InstanceID: instanceID}}, false)
		return
	case task.TechniciansNeeded == 0:
		st.markUnassigned(instanceID, ReasonInvalidConfiguration,
			fmt.Sprintf("task %s has planned work time but requests no technicians", task.ID))
		return
	}

	switch task.Type {
	case TaskTypePM:
		e.assignPM(st, task, instanceID, in)
	case TaskTypeREP:
		e.assignREP(st, task, instanceID, in)
	default:
		st.markUnassigned(instanceID, ReasonInvalidConfiguration,
			fmt.Sprintf("task %s has unknown type %q", task.ID, task.Type))
	}
}

// assignPM schedules one preventive-maintenance instance from the
// skill-matched pool, escalating to helpers when a priority-A task is
// under-resourced.
func (e *Engine) assignPM(st *runState, task TaskDefinition, instanceID string, in Input) {
	var pool []*workerState
	for _, name := range st.names {
		ws := st.workers[name]
		if ok, _ := eligiblePM(task, ws.worker); ok {
			pool = append(pool, ws)
		}
	}
	if len(pool) == 0 {
		st.markUnassigned(instanceID, ReasonNoEligibleWorkers,
			fmt.Sprintf("no present technician is skilled and line-compatible for task %s", task.ID))
		return
	}

	if task.PriorityRank() == 1 && len(pool) < task.TechniciansNeeded {
		if e.escalate(st, task, instanceID, pool, in) {
			return
		}
		// Escalation found nothing; fall through and try with the
		// undersized skilled pool, stretching the duration instead.
	}

	groups := generateGroups(task, pool, nil, e.cfg)
	if len(groups) == 0 {
		st.markUnassigned(instanceID, ReasonNoViableGroup,
			fmt.Sprintf("eligible technicians cannot jointly cover every required technology of task %s", task.ID))
		return
	}
	if e.tryRanked(st, task, instanceID, rankGroups(task, groups), in.TotalMinutes) {
		return
	}
	st.markUnassigned(instanceID, ReasonNoAvailableSlot,
		fmt.Sprintf("no common free slot left in the shift for task %s", task.ID))
}

// assignREP schedules one repair instance from the manually curated
// shortlist. Skills are never consulted; presence and line compatibility are.
func (e *Engine) assignREP(st *runState, task TaskDefinition, instanceID string, in Input) {
	sel, ok := in.RepSelections[task.ID]
	if !ok {
		st.markUnassigned(instanceID, ReasonNoEligibleWorkers,
			fmt.Sprintf("no technicians were selected for repair task %s", task.ID))
		return
	}
	if sel.Skipped {
		reason := sel.SkipReason
		if reason == "" {
			reason = "skipped in manual repair assignment"
		}
		st.markUnassigned(instanceID, ReasonUserSkipped, reason)
		return
	}

	var pool, forced []*workerState
	seen := make(map[string]bool)
	for _, pick := range sel.Technicians {
		ws, present := st.workers[pick.Name]
		if !present || seen[pick.Name] {
			continue
		}
		seen[pick.Name] = true
		if !lineCompatible(task, ws.worker) {
			continue
		}
		if pick.ForceAssign {
			forced = append(forced, ws)
		} else {
			pool = append(pool, ws)
		}
	}
	if len(pool)+len(forced) == 0 {
		st.markUnassigned(instanceID, ReasonNoEligibleWorkers,
			fmt.Sprintf("none of the selected technicians for task %s are present and line-compatible", task.ID))
		return
	}

	groups := generateGroups(task, pool, forced, e.cfg)
	if len(groups) == 0 {
		st.markUnassigned(instanceID, ReasonNoViableGroup,
			fmt.Sprintf("selected technicians form no admissible group for task %s", task.ID))
		return
	}
	if e.tryRanked(st, task, instanceID, rankGroups(task, groups), in.TotalMinutes) {
		return
	}
	st.markUnassigned(instanceID, ReasonNoAvailableSlot,
		fmt.Sprintf("no common free slot left in the shift for task %s", task.ID))
}

// tryRanked walks candidate groups best-first and commits the first one the
// packer can place.
func (e *Engine) tryRanked(st *runState, task TaskDefinition, instanceID string, ranked []scoredGroup, totalMinutes int) bool {
	for _, g := range ranked {
		effective := effectiveDuration(task.PlannedMinutes, task.TechniciansNeeded, len(g.members))
		pl, ok := findSlot(g.members, effective, totalMinutes, e.cfg)
		if !ok {
			continue
		}
		st.recordAssignments(instanceID, commitPlacement(task, instanceID, g.members, pl, effective), pl.incomplete)
		return true
	}
	return false
}
