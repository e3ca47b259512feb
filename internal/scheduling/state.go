package scheduling

import "sort"

// workerState carries one worker's mutable timeline for the duration of a
// run or a permutation simulation.
type workerState struct {
	worker    Worker
	intervals []Interval // kept sorted by Start, pairwise non-overlapping
	busy      int        // sum of committed interval durations
}

// freeBetween reports whether [start, end) collides with no committed interval.
func (w *workerState) freeBetween(start, end int) bool {
	for _, iv := range w.intervals {
		if iv.Start < end && start < iv.End {
			return false
		}
	}
	return true
}

// commit inserts an interval keeping the list sorted by start minute.
func (w *workerState) commit(iv Interval) {
	i := sort.Search(len(w.intervals), func(i int) bool {
		return w.intervals[i].Start >= iv.Start
	})
	w.intervals = append(w.intervals, Interval{})
	copy(w.intervals[i+1:], w.intervals[i:])
	w.intervals[i] = iv
	w.busy += iv.End - iv.Start
}

type upgradeKey struct {
	name         string
	technologyID int64
}

// runState is the accumulating outcome of one scheduling run. Permutation
// search clones it so every candidate ordering simulates against fresh
// timelines.
type runState struct {
	workers map[string]*workerState
	names   []string // deterministic iteration order

	assignments    []Assignment
	reasons        map[string]UnassignedReason
	assignedIDs    map[string]bool // instance ids with at least one record
	incomplete     []string
	underResourced []UnderResourcedTask
	underSeen      map[string]bool
	upgrades       []SkillUpgrade
	upgradeSeen    map[upgradeKey]bool
}

func newRunState(workers []Worker) *runState {
	st := &runState{
		workers:     make(map[string]*workerState, len(workers)),
		reasons:     make(map[string]UnassignedReason),
		assignedIDs: make(map[string]bool),
		underSeen:   make(map[string]bool),
		upgradeSeen: make(map[upgradeKey]bool),
	}
	for _, w := range workers {
		if _, dup := st.workers[w.Name]; dup {
			continue
		}
		st.workers[w.Name] = &workerState{worker: w}
		st.names = append(st.names, w.Name)
	}
	sort.Strings(st.names)
	return st
}

// clone deep-copies the run state for a permutation simulation.
func (s *runState) clone() *runState {
	c := &runState{
		workers:     make(map[string]*workerState, len(s.workers)),
		names:       append([]string(nil), s.names...),
		reasons:     make(map[string]UnassignedReason, len(s.reasons)),
		assignedIDs: make(map[string]bool, len(s.assignedIDs)),
		underSeen:   make(map[string]bool, len(s.underSeen)),
		upgradeSeen: make(map[upgradeKey]bool, len(s.upgradeSeen)),
	}
	for name, ws := range s.workers {
		c.workers[name] = &workerState{
			worker:    ws.worker,
			intervals: append([]Interval(nil), ws.intervals...),
			busy:      ws.busy,
		}
	}
	c.assignments = append([]Assignment(nil), s.assignments...)
	for k, v := range s.reasons {
		c.reasons[k] = v
	}
	for k, v := range s.assignedIDs {
		c.assignedIDs[k] = v
	}
	c.incomplete = append([]string(nil), s.incomplete...)
	c.underResourced = append([]UnderResourcedTask(nil), s.underResourced...)
	for k, v := range s.underSeen {
		c.underSeen[k] = v
	}
	c.upgrades = append([]SkillUpgrade(nil), s.upgrades...)
	for k, v := range s.upgradeSeen {
		c.upgradeSeen[k] = v
	}
	return c
}

// markUnassigned records (or replaces) the reason for an instance. An
// instance that already carries an assignment keeps it; reasons only apply
// to instances without records.
func (s *runState) markUnassigned(instanceID string, code ReasonCode, message string) {
	if s.assignedIDs[instanceID] {
		return
	}
	s.reasons[instanceID] = UnassignedReason{Code: code, Message: message}
}

// recordAssignments commits the records for one instance and clears any
// earlier unassigned reason, keeping the either-or invariant between the two.
func (s *runState) recordAssignments(instanceID string, records []Assignment, incomplete bool) {
	s.assignments = append(s.assignments, records...)
	s.assignedIDs[instanceID] = true
	delete(s.reasons, instanceID)
	if incomplete {
		s.incomplete = append(s.incomplete, instanceID)
	}
}

// recordUnderResourced notes an under-resourced definition, once per task id.
func (s *runState) recordUnderResourced(entry UnderResourcedTask) {
	if s.underSeen[entry.TaskID] {
		return
	}
	s.underSeen[entry.TaskID] = true
	s.underResourced = append(s.underResourced, entry)
}

// recordUpgrade queues a helper skill upgrade, at most once per
// (technician, technology) pair per run.
func (s *runState) recordUpgrade(up SkillUpgrade) {
	key := upgradeKey{name: up.Technician, technologyID: up.TechnologyID}
	if s.upgradeSeen[key] {
		return
	}
	s.upgradeSeen[key] = true
	s.upgrades = append(s.upgrades, up)
}
