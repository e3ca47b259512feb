package repository

import (
	"database/sql"
	"fmt"

	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/models"
)

// SkillRepository handles database operations for technician skill levels
type SkillRepository struct {
	db *sql.DB
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *sql.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// GetSkillMatrix returns every technician's skill levels keyed by name.
// Technologies without a row default to level 0 on the engine side.
func (r *SkillRepository) GetSkillMatrix() (map[string]map[int64]int, error) {
	rows, err := r.db.Query(`SELECT t.name, s.technology_id, s.level
		FROM technician_skills s
		JOIN technicians t ON t.id = s.technician_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query skill matrix: %w", err)
	}
	defer rows.Close()

	matrix := make(map[string]map[int64]int)
	for rows.Next() {
		var name string
		var technologyID int64
		var level int
		if err := rows.Scan(&name, &technologyID, &level); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		if matrix[name] == nil {
			matrix[name] = make(map[int64]int)
		}
		matrix[name][technologyID] = level
	}
	return matrix, rows.Err()
}

// GetSkillsForTechnician returns one technician's skill rows
func (r *SkillRepository) GetSkillsForTechnician(technicianID int64) ([]models.TechnicianSkill, error) {
	rows, err := r.db.Query(`SELECT technician_id, technology_id, level
		FROM technician_skills WHERE technician_id = ? ORDER BY technology_id`, technicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	var skills []models.TechnicianSkill
	for rows.Next() {
		var s models.TechnicianSkill
		if err := rows.Scan(&s.TechnicianID, &s.TechnologyID, &s.Level); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// SetLevel upserts one skill level by technician id
func (r *SkillRepository) SetLevel(technicianID, technologyID int64, level int) error {
	_, err := r.db.Exec(`INSERT INTO technician_skills (technician_id, technology_id, level)
		VALUES (?, ?, ?)
		ON CONFLICT(technician_id, technology_id) DO UPDATE SET level = excluded.level`,
		technicianID, technologyID, level)
	if err != nil {
		return fmt.Errorf("failed to set skill level: %w", err)
	}
	return nil
}

// SetLevelByName upserts one skill level, resolving the technician by name.
// Used by the scheduler's helper write-back, which only knows names.
func (r *SkillRepository) SetLevelByName(name string, technologyID int64, level int) error {
	var technicianID int64
	err := r.db.QueryRow(`SELECT id FROM technicians WHERE name = ?`, name).Scan(&technicianID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("unknown technician %q", name)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve technician %q: %w", name, err)
	}
	return r.SetLevel(technicianID, technologyID, level)
}
