package repository

import (
	"database/sql"
	"fmt"

	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/models"
)

// AuditRepository handles database operations for the audit log
type AuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Insert appends one audit entry
func (r *AuditRepository) Insert(runID, event, detail string) error {
	_, err := r.db.Exec(`INSERT INTO audit_log (run_id, event, detail) VALUES (?, ?, ?)`,
		runID, event, detail)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

// List retrieves the most recent audit entries, newest first
func (r *AuditRepository) List(limit int) ([]models.AuditEntry, error) {
	if limit < 1 || limit > 1000 {
		limit = 100
	}
	rows, err := r.db.Query(`SELECT id, run_id, event, detail, created_at
		FROM audit_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ID, &e.RunID, &e.Event, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListByRun retrieves all entries of one scheduling run
func (r *AuditRepository) ListByRun(runID string) ([]models.AuditEntry, error) {
	rows, err := r.db.Query(`SELECT id, run_id, event, detail, created_at
		FROM audit_log WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ID, &e.RunID, &e.Event, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
