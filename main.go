package main

import (
	"log"
	"time"

	"gallery-backend/config"
	"gallery-backend/database"
	routes "gallery-backend/internal/app/http"
	"gallery-backend/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	cfg := config.Load()

	db, err := database.Init(cfg.DBURL)
	if err != nil {
		log.Fatal("❌ Failed to connect to database: ", err)
	}
	defer database.Close(db)

	store, err := storage.New(cfg, db)
	if err != nil {
		log.Fatal("❌ Failed to initialize asset store: ", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, cfg, db, store)

	log.Printf("✅ Listening on :%s (storage backend: %s)", cfg.Port, cfg.StorageBackend)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Server stopped: ", err)
	}
}
