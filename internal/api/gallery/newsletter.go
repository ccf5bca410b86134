package gallery

import (
	"errors"
	"net/http"
	"strings"

	"gallery-backend/internal/domain/gallery"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubscribeInput struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// ------------------------------
// POST /api/newsletter/subscribe  (public)
// ------------------------------
func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// A repeat signup is a success, not an error. Anything else from the
	// database must surface as a failure, never be masked as "subscribed".
	var existing gallery.Subscriber
	err := h.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Already subscribed"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	row := gallery.Subscriber{Email: email, Name: req.Name}
	if err := h.db.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ------------------------------
// GET /api/newsletter/subscribers  (auth)
// ------------------------------
func (h *Handler) ListSubscribers(c *gin.Context) {
	var rows []gallery.Subscriber
	if err := h.db.Order("created_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscribers"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ------------------------------
// DELETE /api/newsletter/subscribers/:id  (auth)
// ------------------------------
func (h *Handler) DeleteSubscriber(c *gin.Context) {
	res := h.db.Delete(&gallery.Subscriber{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscriber"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
