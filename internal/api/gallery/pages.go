package gallery

import (
	"errors"
	"net/http"

	"gallery-backend/internal/domain/gallery"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PageContentInput struct {
	Title string `json:"title"`
	Body  string `json:"body" binding:"required"`
}

// ------------------------------
// GET /api/page-content/:slug  (public)
// ------------------------------
func (h *Handler) GetPageContent(c *gin.Context) {
	var row gallery.PageContent
	err := h.db.Where("slug = ?", c.Param("slug")).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// ------------------------------
// PUT /api/page-content/:slug  (upsert, auth)
// ------------------------------
func (h *Handler) UpsertPageContent(c *gin.Context) {
	var req PageContentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := c.Param("slug")
	var row gallery.PageContent
	err := h.db.Where("slug = ?", slug).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = gallery.PageContent{Slug: slug, Title: req.Title, Body: req.Body}
		err = h.db.Create(&row).Error
	case err == nil:
		row.Title = req.Title
		row.Body = req.Body
		err = h.db.Save(&row).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save page"})
		return
	}
	c.JSON(http.StatusOK, row)
}
