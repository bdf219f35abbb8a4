package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/elite-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/elite-booking/internal/db"
	domain "github.com/BruksfildServices01/elite-booking/internal/domain/booking"
	"github.com/BruksfildServices01/elite-booking/internal/routes"
	"github.com/BruksfildServices01/elite-booking/internal/seed"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if cfg.Seed {
		gridCfg := domain.DefaultGridConfig()
		gridCfg.OpenHour = cfg.OpenHour
		gridCfg.CloseHour = cfg.CloseHour
		gridCfg.StepMinutes = cfg.StepMinutes

		if err := seed.Run(db, gridCfg); err != nil {
			log.Fatalf("failed to seed: %v", err)
		}
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
