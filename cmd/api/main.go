package main

import (
	"log"
	"net/http"

	"github.com/BruksfildServices01/shop-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/shop-booking/internal/db"
	"github.com/BruksfildServices01/shop-booking/internal/middleware"
	"github.com/BruksfildServices01/shop-booking/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	dbpkg.SeedUsers(db)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
