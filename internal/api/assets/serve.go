package assets

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"gallery-backend/internal/domain/assets"
	"gallery-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// A stored payload never changes after creation, a "new image" is always
// a new record. Responses are therefore immutable for a full year.
const cacheControl = "public, max-age=31536000, immutable"

// -------------------------------
// GET /api/file/:ref  (public)
// -------------------------------
func (h *Handler) Serve(c *gin.Context) {
	rec, err := storage.Resolve(c.Request.Context(), h.store, c.Param("ref"))
	switch {
	case errors.Is(err, assets.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_reference"})
		return
	case errors.Is(err, assets.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	case err != nil:
		log.Printf("resolve asset %q: %v", c.Param("ref"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store_failure"})
		return
	}

	// Metadata without payload is a permanent, legitimate state for rows
	// that predate binary storage. The reason code must stay distinct from
	// not_found: the remediation is a re-upload, not a different reference.
	if !rec.HasPayload() {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "payload_missing",
			"message": "this asset predates binary storage and must be re-uploaded",
		})
		return
	}

	// Content-Length comes from the bytes actually sent. A disk-backed file
	// replaced out-of-band can disagree with the recorded size; trust the
	// payload and log the drift.
	if int64(len(rec.Payload)) != rec.SizeBytes {
		log.Printf("asset %d: recorded size %d differs from payload length %d", rec.ID, rec.SizeBytes, len(rec.Payload))
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", rec.OriginalName))
	c.Header("Content-Length", strconv.Itoa(len(rec.Payload)))
	c.Header("Cache-Control", cacheControl)
	c.Data(http.StatusOK, rec.MimeType, rec.Payload)
}
