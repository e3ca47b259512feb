package models

import (
	"fmt"

	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/scheduling"
)

// ScheduleRequest is the payload of one weekend-planning run. Tasks and
// repair selections use the engine's own wire shape; the request adds the
// shift context around them.
type ScheduleRequest struct {
	// Date of the shift being planned, YYYY-MM-DD. Determines the shift
	// capacity (Saturdays run long) unless TotalWorkMinutes overrides it.
	Date               string                      `json:"date"`
	TotalWorkMinutes   int                         `json:"total_work_minutes"`
	Tasks              []scheduling.TaskDefinition `json:"tasks"`
	PresentTechnicians []string                    `json:"present_technicians"`
	RepAssignments     []scheduling.RepSelection   `json:"rep_assignments"`
}

// Validate rejects structurally broken requests at the boundary. Degenerate
// numeric fields (zero quantity, zero headcount) intentionally pass: the
// engine records those as unassigned outcomes rather than refusing the run.
func (r ScheduleRequest) Validate() error {
	if len(r.Tasks) == 0 {
		return fmt.Errorf("no tasks to schedule")
	}
	if len(r.PresentTechnicians) == 0 {
		return fmt.Errorf("no present technicians")
	}
	seen := make(map[string]bool, len(r.Tasks))
	for i, t := range r.Tasks {
		if t.ID == "" {
			return fmt.Errorf("task %d has no id", i)
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate task id %q", t.ID)
		}
		seen[t.ID] = true
		if t.Type != scheduling.TaskTypePM && t.Type != scheduling.TaskTypeREP {
			return fmt.Errorf("task %q has unknown type %q", t.ID, t.Type)
		}
	}
	for _, sel := range r.RepAssignments {
		if sel.TaskID == "" {
			return fmt.Errorf("repair assignment without task id")
		}
	}
	return nil
}

// ScheduleResponse wraps a finished run for the dashboard.
type ScheduleResponse struct {
	RunID            string             `json:"run_id"`
	Date             string             `json:"date,omitempty"`
	TotalWorkMinutes int                `json:"total_work_minutes"`
	Result           *scheduling.Result `json:"result"`
}
