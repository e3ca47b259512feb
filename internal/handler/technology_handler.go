package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/models"
	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/repository"
	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/service"
	"github.com/KirilMT/WeekendPlanningProject-sub000/pkg/response"
)

// TechnologyHandler handles HTTP requests for technologies
type TechnologyHandler struct {
	service *service.TechnologyService
}

// NewTechnologyHandler creates a new technology handler
func NewTechnologyHandler(service *service.TechnologyService) *TechnologyHandler {
	return &TechnologyHandler{service: service}
}

// List handles GET /api/v1/technologies
func (h *TechnologyHandler) List(c *gin.Context) {
	technologies, err := h.service.List()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list technologies", err)
		return
	}
	response.Success(c, technologies)
}

// Create handles POST /api/v1/technologies
func (h *TechnologyHandler) Create(c *gin.Context) {
	var t models.Technology
	if err := c.ShouldBindJSON(&t); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.service.Create(&t); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	response.Success(c, t)
}

// AuditHandler handles HTTP requests for the audit log
type AuditHandler struct {
	repo *repository.AuditRepository
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(repo *repository.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

// List handles GET /api/v1/audit
func (h *AuditHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if runID := c.Query("run_id"); runID != "" {
		entries, err := h.repo.ListByRun(runID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to read audit log", err)
			return
		}
		response.Success(c, entries)
		return
	}
	entries, err := h.repo.List(limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to read audit log", err)
		return
	}
	response.Success(c, entries)
}
