package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tiadeasalon/salon-manager/internal/cache"
	"github.com/tiadeasalon/salon-manager/internal/config"
	dbpkg "github.com/tiadeasalon/salon-manager/internal/db"
	infraRepo "github.com/tiadeasalon/salon-manager/internal/infra/repository"
	"github.com/tiadeasalon/salon-manager/internal/middleware"
	"github.com/tiadeasalon/salon-manager/internal/routes"
	"github.com/tiadeasalon/salon-manager/internal/storage"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// Primeira subida: semeia o hash da senha padrão da administradora
	configRepo := infraRepo.NewConfigGormRepository(db)
	if err := configRepo.EnsureAdminPassword(context.Background()); err != nil {
		log.Fatalf("failed to seed admin password: %v", err)
	}

	cacheStore := cache.New(cfg)
	gallery := storage.NewGalleryStore(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, cacheStore, gallery)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
