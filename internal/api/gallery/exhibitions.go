package gallery

import (
	"errors"
	"net/http"
	"time"

	"gallery-backend/internal/domain/gallery"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExhibitionInput struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Location      string     `json:"location"`
	FeaturedImage string     `json:"featured_image"`
	Published     *bool      `json:"published"`
}

// Public listing shows published exhibitions only; admins pass ?view=all.
func (h *Handler) ListExhibitions(c *gin.Context) {
	q := h.db.Order("start_date DESC")
	if c.Query("view") != "all" || c.GetString("role") == "" {
		q = q.Where("published = ?", true)
	}

	var rows []gallery.Exhibition
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exhibitions"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) GetExhibition(c *gin.Context) {
	var row gallery.Exhibition
	err := h.db.First(&row, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exhibition"})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Handler) CreateExhibition(c *gin.Context) {
	var req ExhibitionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row := gallery.Exhibition{
		Title:         req.Title,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Location:      req.Location,
		FeaturedImage: req.FeaturedImage,
	}
	if req.Published != nil {
		row.Published = *req.Published
	}

	if err := h.db.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exhibition"})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Handler) UpdateExhibition(c *gin.Context) {
	var row gallery.Exhibition
	err := h.db.First(&row, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exhibition"})
		return
	}

	var req ExhibitionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row.Title = req.Title
	row.Description = req.Description
	row.StartDate = req.StartDate
	row.EndDate = req.EndDate
	row.Location = req.Location
	row.FeaturedImage = req.FeaturedImage
	if req.Published != nil {
		row.Published = *req.Published
	}

	if err := h.db.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update exhibition"})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Handler) DeleteExhibition(c *gin.Context) {
	res := h.db.Delete(&gallery.Exhibition{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete exhibition"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
