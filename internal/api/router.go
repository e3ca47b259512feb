package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/config"
	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/database"
	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/handler"
	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/middleware"
	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/repository"
	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/service"
)

// SetupRouter wires repositories, services, and handlers onto the gin engine.
func SetupRouter(cfg *config.Config) *gin.Engine {
	db := database.GetDB()

	technicianRepo := repository.NewTechnicianRepository(db)
	technologyRepo := repository.NewTechnologyRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	scheduleHandler := handler.NewScheduleHandler(
		service.NewScheduleService(technicianRepo, skillRepo, auditRepo, cfg))
	technicianHandler := handler.NewTechnicianHandler(
		service.NewTechnicianService(technicianRepo, skillRepo))
	technologyHandler := handler.NewTechnologyHandler(
		service.NewTechnologyService(technologyRepo))
	auditHandler := handler.NewAuditHandler(auditRepo)

	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Weekend Planning API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	{
		api.GET("/technicians", technicianHandler.List)
		api.GET("/technicians/:id/skills", technicianHandler.GetSkills)
		api.GET("/technologies", technologyHandler.List)
		api.GET("/audit", auditHandler.List)

		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))
		{
			protected.POST("/schedule", scheduleHandler.Plan)
			protected.POST("/technicians", technicianHandler.Create)
			protected.PUT("/technicians/:id/skills", technicianHandler.SetSkill)
			protected.PUT("/technicians/:id/task-priority", technicianHandler.SetTaskPriority)
			protected.POST("/technologies", technologyHandler.Create)
		}
	}

	return r
}
