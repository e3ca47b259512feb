package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/config"
	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/models"
	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/repository"
	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/scheduling"
)

// ScheduleService assembles engine inputs from the stores, runs the
// scheduling engine, and wires its write-back collaborators to sqlite.
type ScheduleService struct {
	technicians *repository.TechnicianRepository
	skills      *repository.SkillRepository
	audit       *repository.AuditRepository
	cfg         *config.Config
	engineCfg   scheduling.Config
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	technicians *repository.TechnicianRepository,
	skills *repository.SkillRepository,
	audit *repository.AuditRepository,
	cfg *config.Config,
) *ScheduleService {
	return &ScheduleService{
		technicians: technicians,
		skills:      skills,
		audit:       audit,
		cfg:         cfg,
		engineCfg:   scheduling.DefaultConfig(),
	}
}

// Plan runs one scheduling invocation for the given request.
func (s *ScheduleService) Plan(req models.ScheduleRequest) (*models.ScheduleResponse, error) {
	total := s.shiftMinutes(req)

	workers, err := s.buildWorkers(req.PresentTechnicians)
	if err != nil {
		return nil, err
	}

	selections := make(map[string]scheduling.RepSelection, len(req.RepAssignments))
	for _, sel := range req.RepAssignments {
		selections[sel.TaskID] = sel
	}

	runID := uuid.NewString()
	engine := scheduling.New(s.engineCfg,
		&skillStoreAdapter{repo: s.skills},
		&auditAdapter{repo: s.audit, runID: runID},
	)
	result := engine.Schedule(scheduling.Input{
		Tasks:         req.Tasks,
		Workers:       workers,
		TotalMinutes:  total,
		RepSelections: selections,
	})

	summary := fmt.Sprintf("%d tasks, %d technicians, %d assignments, %d unassigned",
		len(req.Tasks), len(workers), len(result.Assignments), len(result.UnassignedReasons))
	if err := s.audit.Insert(runID, "schedule_run", summary); err != nil {
		log.Printf("audit write failed for run %s: %v", runID, err)
	}

	return &models.ScheduleResponse{
		RunID:            runID,
		Date:             req.Date,
		TotalWorkMinutes: total,
		Result:           result,
	}, nil
}

// shiftMinutes resolves the shift capacity: an explicit override wins,
// otherwise the date's weekday decides (Saturdays run the long shift).
func (s *ScheduleService) shiftMinutes(req models.ScheduleRequest) int {
	if req.TotalWorkMinutes > 0 {
		return req.TotalWorkMinutes
	}
	if req.Date != "" {
		if day, err := time.Parse("2006-01-02", req.Date); err == nil {
			if day.Weekday() == time.Saturday {
				return s.cfg.SaturdayShiftMinutes
			}
		}
	}
	return s.cfg.RegularShiftMinutes
}

// buildWorkers materializes the present technicians into engine workers,
// joining line affiliations, skill levels, and task-priority overrides.
// Names the store does not know are skipped with a log line; the shift goes
// on without them.
func (s *ScheduleService) buildWorkers(present []string) ([]scheduling.Worker, error) {
	technicians, err := s.technicians.List()
	if err != nil {
		return nil, err
	}
	matrix, err := s.skills.GetSkillMatrix()
	if err != nil {
		return nil, err
	}
	priorities, err := s.technicians.GetTaskPriorities()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]models.Technician, len(technicians))
	for _, t := range technicians {
		byName[t.Name] = t
	}

	var workers []scheduling.Worker
	for _, name := range present {
		t, known := byName[name]
		if !known {
			log.Printf("present technician %q is not in the store, skipping", name)
			continue
		}
		workers = append(workers, scheduling.Worker{
			Name:          t.Name,
			Lines:         t.Lines,
			Skills:        matrix[t.Name],
			GroupPriority: priorities[t.Name],
		})
	}
	return workers, nil
}

// skillStoreAdapter exposes the sqlite skill store to the engine.
type skillStoreAdapter struct {
	repo *repository.SkillRepository
}

func (a *skillStoreAdapter) RaiseSkillLevel(technician string, technologyID int64, level int, reason string) error {
	return a.repo.SetLevelByName(technician, technologyID, level)
}

// auditAdapter stamps engine audit events with the run id.
type auditAdapter struct {
	repo  *repository.AuditRepository
	runID string
}

func (a *auditAdapter) Record(event, detail string) error {
	return a.repo.Insert(a.runID, event, detail)
}
