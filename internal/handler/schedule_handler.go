package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/models"
	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/service"
	"github.com/KirilMT/WeekendPlanningProject-sub000/pkg/response"
)

// ScheduleHandler handles HTTP requests for scheduling runs
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(service *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Plan handles POST /api/v1/schedule
func (h *ScheduleHandler) Plan(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	res, err := h.service.Plan(req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build schedule", err)
		return
	}
	response.Success(c, res)
}
