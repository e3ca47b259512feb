package scheduling

import "fmt"

// TaskType discriminates the two kinds of schedulable work.
type TaskType string

const (
	TaskTypePM  TaskType = "PM"  // preventive maintenance, matched against required technologies
	TaskTypeREP TaskType = "REP" // repair, assigned from a manually curated technician shortlist
)

// TaskDefinition describes one unit of plannable work. A definition expands
// into Quantity instances, each scheduled independently.
type TaskDefinition struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Type              TaskType `json:"task_type"`
	Quantity          int      `json:"quantity"`
	PlannedMinutes    int      `json:"planned_worktime_min"`
	TechniciansNeeded int      `json:"mitarbeiter_pro_aufgabe"`
	Priority          string   `json:"priority"` // single letter, "A" is highest
	Lines             []int    `json:"lines"`    // empty means unrestricted
	RequiredSkills    []int64  `json:"technology_ids"`
	IsAdditional      bool     `json:"additional_task"`
}

// PriorityRank converts the letter priority into a numeric rank, 1 for "A".
// Missing or malformed priorities sort last.
func (t TaskDefinition) PriorityRank() int {
	if len(t.Priority) != 1 || t.Priority[0] < 'A' || t.Priority[0] > 'Z' {
		return 'Z' - 'A' + 2
	}
	return int(t.Priority[0]-'A') + 1
}

// InstanceID builds the addressing key for the n-th instance of a definition.
func (t TaskDefinition) InstanceID(n int) string {
	return fmt.Sprintf("%s_%d", t.ID, n)
}

// Worker is one technician available for the shift being planned.
type Worker struct {
	Name          string         `json:"name"`
	Skills        map[int64]int  `json:"skills"` // technology id -> level 0..4
	Lines         []int          `json:"lines"`
	GroupPriority map[string]int `json:"group_priority"` // task id -> override, lower is preferred
}

// SkillLevel returns the worker's level for a technology, 0 when unknown.
func (w Worker) SkillLevel(technologyID int64) int {
	return w.Skills[technologyID]
}

// Interval is a committed block on a worker's shift timeline, [Start, End)
// in minutes from shift begin. Intervals on one worker never overlap.
type Interval struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

// Assignment records one worker scheduled on one task instance. Worker is
// empty for zero-headcount tasks, which produce a single worker-less record.
type Assignment struct {
	Worker           string `json:"technician,omitempty"`
	InstanceID       string `json:"instance_id"`
	StartMinute      int    `json:"start_minute"`
	DurationMinutes  int    `json:"duration_minutes"`
	Incomplete       bool   `json:"incomplete"`
	OriginalDuration int    `json:"original_duration"`
	MismatchNote     string `json:"mismatch_note,omitempty"`
}

// RepPick is one technician chosen in the manual repair-assignment step.
type RepPick struct {
	Name        string `json:"name"`
	ForceAssign bool   `json:"force_assign"`
}

// RepSelection is the manual assignment payload for one repair task.
type RepSelection struct {
	TaskID      string    `json:"task_id"`
	Skipped     bool      `json:"skipped"`
	SkipReason  string    `json:"skip_reason"`
	Technicians []RepPick `json:"technicians"`
}

// ReasonCode classifies why an instance ended up unassigned.
type ReasonCode string

const (
	ReasonInvalidConfiguration ReasonCode = "invalid_configuration"
	ReasonNoEligibleWorkers    ReasonCode = "no_eligible_workers"
	ReasonNoViableGroup        ReasonCode = "no_viable_group"
	ReasonNoAvailableSlot      ReasonCode = "no_available_slot"
	ReasonUserSkipped          ReasonCode = "user_skipped"
)

// UnassignedReason explains a single unassigned instance.
type UnassignedReason struct {
	Code    ReasonCode `json:"code"`
	Message string     `json:"message"`
}

// UnderResourcedTask reports a PM definition whose skilled pool was smaller
// than its headcount requirement. Recorded once per definition.
type UnderResourcedTask struct {
	TaskID              string   `json:"task_id"`
	Needed              int      `json:"needed"`
	Available           int      `json:"available"`
	EligibleTechnicians []string `json:"eligible_technicians"`
}

// SkillUpgrade is a pending 0->1 level raise earned by a helper drafted onto
// an under-resourced high-priority task.
type SkillUpgrade struct {
	Technician   string `json:"technician"`
	TechnologyID int64  `json:"technology_id"`
	NewLevel     int    `json:"new_level"`
	Reason       string `json:"reason"`
}

// Input is everything one scheduling run consumes. The engine never reads
// ambient state; callers assemble this from their own stores.
type Input struct {
	Tasks         []TaskDefinition
	Workers       []Worker // the technicians present this shift
	TotalMinutes  int      // shift capacity in minutes
	RepSelections map[string]RepSelection
}

// Result is the complete outcome of one scheduling run.
type Result struct {
	Assignments         []Assignment                `json:"assignments"`
	UnassignedReasons   map[string]UnassignedReason `json:"unassigned_reasons"`
	IncompleteInstances []string                    `json:"incomplete_instances"`
	AvailableMinutes    map[string]int              `json:"available_minutes"`
	UnderResourced      []UnderResourcedTask        `json:"under_resourced_tasks"`
	SkillUpgrades       []SkillUpgrade              `json:"skill_upgrades"`
}

// SkillStore persists helper skill upgrades. Implementations live outside the
// engine; a failed write is logged and never aborts a run.
type SkillStore interface {
	RaiseSkillLevel(technician string, technologyID int64, level int, reason string) error
}

// AuditLog records notable scheduling events for later review.
type AuditLog interface {
	Record(event, detail string) error
}
