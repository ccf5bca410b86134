package assets

import (
	"errors"
	"io"
	"log"
	"net/http"

	"gallery-backend/internal/domain/assets"

	"github.com/gin-gonic/gin"
)

// -------------------------------
// POST /api/upload  (multipart: file, category, uploadedBy?)
// -------------------------------
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file field"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")

	// Both gates run before a single byte reaches the store.
	if err := h.intake.Validate(mimeType, fileHeader.Size); err != nil {
		var verr *assets.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable file"})
		return
	}
	defer src.Close()

	// The whole payload is buffered before the store call. Bounded by the
	// size ceiling; a known scaling limit, traded for a single atomic Put.
	payload, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	uploadedBy := c.PostForm("uploadedBy")
	if uploadedBy == "" {
		uploadedBy = c.GetString("email")
	}

	rec := h.intake.NewRecord(
		fileHeader.Filename,
		c.PostForm("category"),
		mimeType,
		uploadedBy,
		int64(len(payload)),
	)

	id, err := h.store.Put(c.Request.Context(), rec, payload)
	if err != nil {
		log.Printf("store upload %s: %v", rec.StorageKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Success: true,
		File: FileDTO{
			ID:           id,
			URL:          "/api/file/" + rec.StorageUUID,
			OriginalName: rec.OriginalName,
			Category:     rec.Category,
			MimeType:     rec.MimeType,
			SizeBytes:    rec.SizeBytes,
			UploadedBy:   rec.UploadedBy,
			CreatedAt:    rec.CreatedAt,
		},
	})
}
