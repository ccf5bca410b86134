package assets

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"gallery-backend/config"
	"gallery-backend/internal/domain/assets"
	"gallery-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store  storage.Store
	intake *Intake
}

func NewHandler(store storage.Store, cfg *config.Config) *Handler {
	return &Handler{store: store, intake: NewIntake(cfg)}
}

// -------------------------------
// GET /api/files?category=
// -------------------------------
func (h *Handler) List(c *gin.Context) {
	records, err := h.store.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		log.Printf("list assets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load files"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// -------------------------------
// DELETE /api/files/:id
// -------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file id"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		log.Printf("delete asset %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
