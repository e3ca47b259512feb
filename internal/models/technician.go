package models

import "time"

// Technician represents a maintenance technician known to the system.
type Technician struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Lines []int  `json:"lines"` // production lines the technician works on

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Technology is a skill category tasks can require (e.g. robotics, pneumatics).
type Technology struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TechnicianSkill is one technician's proficiency in one technology.
// Level 0 means no skill; 4 is the highest proficiency.
type TechnicianSkill struct {
	TechnicianID int64 `json:"technician_id" db:"technician_id"`
	TechnologyID int64 `json:"technology_id" db:"technology_id"`
	Level        int   `json:"level" db:"level"`
}

// TaskPriorityOverride prefers a technician (lower value first) for a
// specific task, derived from technician-group membership.
type TaskPriorityOverride struct {
	TechnicianID int64  `json:"technician_id" db:"technician_id"`
	TaskID       string `json:"task_id" db:"task_id"`
	Priority     int    `json:"priority" db:"priority"`
}

// AuditEntry is one persisted audit-log record.
type AuditEntry struct {
	ID        int64     `json:"id" db:"id"`
	RunID     string    `json:"run_id" db:"run_id"`
	Event     string    `json:"event" db:"event"`
	Detail    string    `json:"detail" db:"detail"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
