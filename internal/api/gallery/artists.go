package gallery

import (
	"errors"
	"net/http"

	"gallery-backend/internal/domain/gallery"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ArtistInput struct {
	Name          string `json:"name" binding:"required"`
	Bio           string `json:"bio"`
	PortraitImage string `json:"portrait_image"`
	Website       string `json:"website"`
}

func (h *Handler) ListArtists(c *gin.Context) {
	var rows []gallery.Artist
	if err := h.db.Order("name ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) GetArtist(c *gin.Context) {
	var row gallery.Artist
	err := h.db.First(&row, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Handler) CreateArtist(c *gin.Context) {
	var req ArtistInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row := gallery.Artist{
		Name:          req.Name,
		Bio:           req.Bio,
		PortraitImage: req.PortraitImage,
		Website:       req.Website,
	}
	if err := h.db.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artist"})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Handler) UpdateArtist(c *gin.Context) {
	var row gallery.Artist
	err := h.db.First(&row, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}

	var req ArtistInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row.Name = req.Name
	row.Bio = req.Bio
	row.PortraitImage = req.PortraitImage
	row.Website = req.Website

	if err := h.db.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist"})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Handler) DeleteArtist(c *gin.Context) {
	res := h.db.Delete(&gallery.Artist{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artist"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
