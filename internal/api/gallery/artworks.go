package gallery

import (
	"errors"
	"net/http"

	"gallery-backend/internal/domain/gallery"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ArtworkInput struct {
	Title         string `json:"title" binding:"required"`
	ArtistID      *uint  `json:"artist_id"`
	Year          string `json:"year"`
	Medium        string `json:"medium"`
	Dimensions    string `json:"dimensions"`
	Price         string `json:"price"`
	Available     *bool  `json:"available"`
	FeaturedImage string `json:"featured_image"`
}

// ------------------------------
// GET /api/artworks
// ------------------------------
func (h *Handler) ListArtworks(c *gin.Context) {
	var rows []gallery.Artwork
	q := h.db.Preload("Artist").Order("created_at DESC")
	if artistID := c.Query("artist_id"); artistID != "" {
		q = q.Where("artist_id = ?", artistID)
	}
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ------------------------------
// GET /api/artworks/:id
// ------------------------------
func (h *Handler) GetArtwork(c *gin.Context) {
	var row gallery.Artwork
	err := h.db.Preload("Artist").First(&row, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// ------------------------------
// POST /api/artworks
// ------------------------------
func (h *Handler) CreateArtwork(c *gin.Context) {
	var req ArtworkInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row := gallery.Artwork{
		Title:         req.Title,
		ArtistID:      req.ArtistID,
		Year:          req.Year,
		Medium:        req.Medium,
		Dimensions:    req.Dimensions,
		Price:         req.Price,
		Available:     true,
		FeaturedImage: req.FeaturedImage,
	}
	if req.Available != nil {
		row.Available = *req.Available
	}

	if err := h.db.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// ------------------------------
// PUT /api/artworks/:id
// ------------------------------
func (h *Handler) UpdateArtwork(c *gin.Context) {
	var row gallery.Artwork
	err := h.db.First(&row, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	var req ArtworkInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row.Title = req.Title
	row.ArtistID = req.ArtistID
	row.Year = req.Year
	row.Medium = req.Medium
	row.Dimensions = req.Dimensions
	row.Price = req.Price
	row.FeaturedImage = req.FeaturedImage
	if req.Available != nil {
		row.Available = *req.Available
	}

	if err := h.db.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// ------------------------------
// DELETE /api/artworks/:id
// ------------------------------
func (h *Handler) DeleteArtwork(c *gin.Context) {
	res := h.db.Delete(&gallery.Artwork{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
