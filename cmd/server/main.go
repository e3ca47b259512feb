package main

import (
	"log"

	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/api"
	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/config"
	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/database"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	router := api.SetupRouter(cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
