package repository

import (
	"database/sql"
	"fmt"

	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/models"
)

// TechnologyRepository handles database operations for technologies
type TechnologyRepository struct {
	db *sql.DB
}

// NewTechnologyRepository creates a new technology repository
func NewTechnologyRepository(db *sql.DB) *TechnologyRepository {
	return &TechnologyRepository{db: db}
}

// List retrieves all technologies ordered by name
func (r *TechnologyRepository) List() ([]models.Technology, error) {
	rows, err := r.db.Query(`SELECT id, name, created_at FROM technologies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query technologies: %w", err)
	}
	defer rows.Close()

	var technologies []models.Technology
	for rows.Next() {
		var t models.Technology
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan technology: %w", err)
		}
		technologies = append(technologies, t)
	}
	return technologies, rows.Err()
}

// Create inserts a technology and fills in the generated id
func (r *TechnologyRepository) Create(t *models.Technology) error {
	res, err := r.db.Exec(`INSERT INTO technologies (name) VALUES (?)`, t.Name)
	if err != nil {
		return fmt.Errorf("failed to insert technology: %w", err)
	}
	t.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read technology id: %w", err)
	}
	return nil
}
