package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/models"
)

// TechnicianRepository handles database operations for technicians
type TechnicianRepository struct {
	db *sql.DB
}

// NewTechnicianRepository creates a new technician repository
func NewTechnicianRepository(db *sql.DB) *TechnicianRepository {
	return &TechnicianRepository{db: db}
}

// List retrieves all technicians ordered by name
func (r *TechnicianRepository) List() ([]models.Technician, error) {
	rows, err := r.db.Query(`SELECT id, name, lines_json, created_at, updated_at
		FROM technicians ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query technicians: %w", err)
	}
	defer rows.Close()

	var technicians []models.Technician
	for rows.Next() {
		t, err := scanTechnician(rows)
		if err != nil {
			return nil, err
		}
		technicians = append(technicians, t)
	}
	return technicians, rows.Err()
}

// GetByName retrieves a single technician by name, nil when absent
func (r *TechnicianRepository) GetByName(name string) (*models.Technician, error) {
	row := r.db.QueryRow(`SELECT id, name, lines_json, created_at, updated_at
		FROM technicians WHERE name = ?`, name)

	t, err := scanTechnician(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a technician and fills in the generated id
func (r *TechnicianRepository) Create(t *models.Technician) error {
	lines, err := json.Marshal(t.Lines)
	if err != nil {
		return fmt.Errorf("failed to encode lines: %w", err)
	}
	res, err := r.db.Exec(`INSERT INTO technicians (name, lines_json) VALUES (?, ?)`,
		t.Name, string(lines))
	if err != nil {
		return fmt.Errorf("failed to insert technician: %w", err)
	}
	t.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read technician id: %w", err)
	}
	return nil
}

// UpdateLines replaces a technician's line affiliations
func (r *TechnicianRepository) UpdateLines(id int64, lines []int) error {
	encoded, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode lines: %w", err)
	}
	_, err = r.db.Exec(`UPDATE technicians
		SET lines_json = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		string(encoded), id)
	if err != nil {
		return fmt.Errorf("failed to update technician lines: %w", err)
	}
	return nil
}

// SetTaskPriority records a group-derived preference of a technician for a
// task; lower values are picked first by the scheduler.
func (r *TechnicianRepository) SetTaskPriority(technicianID int64, taskID string, priority int) error {
	_, err := r.db.Exec(`INSERT INTO technician_task_priorities (technician_id, task_id, priority)
		VALUES (?, ?, ?)
		ON CONFLICT(technician_id, task_id) DO UPDATE SET priority = excluded.priority`,
		technicianID, taskID, priority)
	if err != nil {
		return fmt.Errorf("failed to set task priority: %w", err)
	}
	return nil
}

// GetTaskPriorities returns every override keyed by technician name then task id
func (r *TechnicianRepository) GetTaskPriorities() (map[string]map[string]int, error) {
	rows, err := r.db.Query(`SELECT t.name, p.task_id, p.priority
		FROM technician_task_priorities p
		JOIN technicians t ON t.id = p.technician_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query task priorities: %w", err)
	}
	defer rows.Close()

	priorities := make(map[string]map[string]int)
	for rows.Next() {
		var name, taskID string
		var priority int
		if err := rows.Scan(&name, &taskID, &priority); err != nil {
			return nil, fmt.Errorf("failed to scan task priority: %w", err)
		}
		if priorities[name] == nil {
			priorities[name] = make(map[string]int)
		}
		priorities[name][taskID] = priority
	}
	return priorities, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTechnician(row rowScanner) (models.Technician, error) {
	var t models.Technician
	var linesJSON string
	if err := row.Scan(&t.ID, &t.Name, &linesJSON, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return t, err
		}
		return t, fmt.Errorf("failed to scan technician: %w", err)
	}
	if err := json.Unmarshal([]byte(linesJSON), &t.Lines); err != nil {
		return t, fmt.Errorf("failed to decode lines for %s: %w", t.Name, err)
	}
	return t, nil
}
