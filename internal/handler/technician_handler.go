package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/models"
	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/service"
	"github.com/KirilMT/WeekendPlanningProject-sub000/pkg/response"
)

// TechnicianHandler handles HTTP requests for technicians
type TechnicianHandler struct {
	service *service.TechnicianService
}

// NewTechnicianHandler creates a new technician handler
func NewTechnicianHandler(service *service.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{service: service}
}

// List handles GET /api/v1/technicians
func (h *TechnicianHandler) List(c *gin.Context) {
	technicians, err := h.service.List()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list technicians", err)
		return
	}
	response.Success(c, technicians)
}

// Create handles POST /api/v1/technicians
func (h *TechnicianHandler) Create(c *gin.Context) {
	var t models.Technician
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

// GetSkills handles GET /api/v1/technicians/:id/skills
func (h *TechnicianHandler) GetSkills(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid technician ID")
		return
	}
	skills, err := h.service.GetSkills(id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get skills", err)
		return
	}
	response.Success(c, skills)
}

// SetSkill handles PUT /api/v1/technicians/:id/skills
func (h *TechnicianHandler) SetSkill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid technician ID")
		return
	}

	var body struct {
		TechnologyID int64 `json:"technology_id"`
		Level        int   `json:"level"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.service.SetSkill(id, body.TechnologyID, body.Level); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	response.Success(c, gin.H{"technician_id": id, "technology_id": body.TechnologyID, "level": body.Level})
}

// SetTaskPriority handles PUT /api/v1/technicians/:id/task-priority
func (h *TechnicianHandler) SetTaskPriority(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid technician ID")
		return
	}

	var body struct {
		TaskID   string `json:"task_id"`
		Priority int    `json:"priority"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.service.SetTaskPriority(id, body.TaskID, body.Priority); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	response.Success(c, gin.H{"technician_id": id, "task_id": body.TaskID, "priority": body.Priority})
}
