package routes

import (
	"gallery-backend/config"
	assetsapi "gallery-backend/internal/api/assets"
	authapi "gallery-backend/internal/api/auth"
	galleryapi "gallery-backend/internal/api/gallery"
	"gallery-backend/internal/app/http/middleware"
	"gallery-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, db *gorm.DB, store storage.Store) {
	assetHandler := assetsapi.NewHandler(store, cfg)
	galleryHandler := galleryapi.NewHandler(db)
	authHandler := authapi.NewHandler(db, cfg.JWTSecret)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public, unsanitized: binary serving and content reads
	r.GET("/api/file/:ref", assetHandler.Serve)
	r.GET("/api/artworks", galleryHandler.ListArtworks)
	r.GET("/api/artworks/:id", galleryHandler.GetArtwork)
	r.GET("/api/artists", galleryHandler.ListArtists)
	r.GET("/api/artists/:id", galleryHandler.GetArtist)
	// Exhibitions listing is public, but a valid admin token unlocks ?view=all
	r.GET("/api/exhibitions", middleware.OptionalAuth(cfg.JWTSecret), galleryHandler.ListExhibitions)
	r.GET("/api/exhibitions/:id", galleryHandler.GetExhibition)
	r.GET("/api/page-content/:slug", galleryHandler.GetPageContent)

	// Public JSON-mutating routes go through input sanitization
	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())
	public.POST("/api/auth/login", authHandler.Login)
	public.POST("/api/newsletter/subscribe", galleryHandler.Subscribe)

	// Authenticated admin surface
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	auth.POST("/api/upload", assetHandler.Upload)
	auth.GET("/api/files", assetHandler.List)
	auth.DELETE("/api/files/:id", assetHandler.Delete)

	auth.POST("/api/artworks", galleryHandler.CreateArtwork)
	auth.PUT("/api/artworks/:id", galleryHandler.UpdateArtwork)
	auth.DELETE("/api/artworks/:id", galleryHandler.DeleteArtwork)

	auth.POST("/api/artists", galleryHandler.CreateArtist)
	auth.PUT("/api/artists/:id", galleryHandler.UpdateArtist)
	auth.DELETE("/api/artists/:id", galleryHandler.DeleteArtist)

	auth.POST("/api/exhibitions", galleryHandler.CreateExhibition)
	auth.PUT("/api/exhibitions/:id", galleryHandler.UpdateExhibition)
	auth.DELETE("/api/exhibitions/:id", galleryHandler.DeleteExhibition)

	auth.PUT("/api/page-content/:slug", galleryHandler.UpsertPageContent)

	auth.GET("/api/newsletter/subscribers", galleryHandler.ListSubscribers)
	auth.DELETE("/api/newsletter/subscribers/:id", galleryHandler.DeleteSubscriber)
}
