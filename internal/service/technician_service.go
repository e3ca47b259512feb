package service

import (
	"fmt"

	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/models"
	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/repository"
)

// TechnicianService handles business logic for technicians
type TechnicianService struct {
	technicians *repository.TechnicianRepository
	skills      *repository.SkillRepository
}

// NewTechnicianService creates a new technician service
func NewTechnicianService(technicians *repository.TechnicianRepository, skills *repository.SkillRepository) *TechnicianService {
	return &TechnicianService{technicians: technicians, skills: skills}
}

// List retrieves all technicians
func (s *TechnicianService) List() ([]models.Technician, error) {
	return s.technicians.List()
}

// Create validates and inserts a technician
func (s *TechnicianService) Create(t *models.Technician) error {
	if t.Name == "" {
		return fmt.Errorf("technician name is required")
	}
	existing, err := s.technicians.GetByName(t.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("technician %q already exists", t.Name)
	}
	return s.technicians.Create(t)
}

// GetSkills retrieves one technician's skill rows
func (s *TechnicianService) GetSkills(technicianID int64) ([]models.TechnicianSkill, error) {
	return s.skills.GetSkillsForTechnician(technicianID)
}

// SetSkill validates and upserts one skill level
func (s *TechnicianService) SetSkill(technicianID, technologyID int64, level int) error {
	if level < 0 || level > 4 {
		return fmt.Errorf("skill level must be between 0 and 4, got %d", level)
	}
	return s.skills.SetLevel(technicianID, technologyID, level)
}

// SetTaskPriority records a per-task preference for a technician
func (s *TechnicianService) SetTaskPriority(technicianID int64, taskID string, priority int) error {
	if taskID == "" {
		return fmt.Errorf("task id is required")
	}
	return s.technicians.SetTaskPriority(technicianID, taskID, priority)
}

// TechnologyService handles business logic for technologies
type TechnologyService struct {
	technologies *repository.TechnologyRepository
}

// NewTechnologyService creates a new technology service
func NewTechnologyService(technologies *repository.TechnologyRepository) *TechnologyService {
	return &TechnologyService{technologies: technologies}
}

// List retrieves all technologies
func (s *TechnologyService) List() ([]models.Technology, error) {
	return s.technologies.List()
}

// Create validates and inserts a technology
func (s *TechnologyService) Create(t *models.Technology) error {
	if t.Name == "" {
		return fmt.Errorf("technology name is required")
	}
	return s.technologies.Create(t)
}
