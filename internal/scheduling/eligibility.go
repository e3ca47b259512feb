package scheduling

// lineCompatible reports whether the task's line restriction admits the
// worker. An empty restriction admits everyone.
func lineCompatible(task TaskDefinition, w Worker) bool {
	if len(task.Lines) == 0 {
		return true
	}
	for _, tl := range task.Lines {
		for _, wl := range w.Lines {
			if tl == wl {
				return true
			}
		}
	}
	return false
}

// eligiblePM decides whether a worker may join a preventive-maintenance task
// and returns the required technologies the worker actually possesses
// (level > 0), used later for coverage scoring.
func eligiblePM(task TaskDefinition, w Worker) (bool, []int64) {
	if !lineCompatible(task, w) {
		return false, nil
	}
	var possessed []int64
	for _, id := range task.RequiredSkills {
		if w.SkillLevel(id) > 0 {
			possessed = append(possessed, id)
		}
	}
	return len(possessed) > 0, possessed
}

// eligibleHelper decides whether a worker may be drafted as an unskilled
// helper: only the line constraint applies.
func eligibleHelper(task TaskDefinition, w Worker) bool {
	return lineCompatible(task, w)
}
