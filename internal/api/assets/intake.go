package assets

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"gallery-backend/config"
	"gallery-backend/internal/domain/assets"

	"github.com/google/uuid"
)

// Intake validates an incoming upload and builds its storage record.
// Validation always runs before any store call. A rejected file must
// leave zero traces.
type Intake struct {
	maxBytes int64
	allowed  map[string]bool
}

func NewIntake(cfg *config.Config) *Intake {
	allowed := make(map[string]bool, len(cfg.AllowedMimeTypes))
	for _, m := range cfg.AllowedMimeTypes {
		allowed[strings.ToLower(m)] = true
	}
	return &Intake{maxBytes: cfg.MaxUploadBytes, allowed: allowed}
}

// Validate applies the MIME allow-list and the size ceiling. The two
// checks are independent; both failures are 400-class.
func (i *Intake) Validate(mimeType string, sizeBytes int64) error {
	if !i.allowed[strings.ToLower(mimeType)] {
		return &assets.ValidationError{
			Field:  "file",
			Reason: fmt.Sprintf("unsupported type %q, only images are accepted", mimeType),
		}
	}
	if sizeBytes > i.maxBytes {
		return &assets.ValidationError{
			Field:  "file",
			Reason: fmt.Sprintf("file too large (%d bytes, limit %d)", sizeBytes, i.maxBytes),
		}
	}
	return nil
}

// NewRecord builds the metadata row for a validated upload. The storage
// key is unique by construction: a fresh random UUID prefixed to the
// sanitized original name. The UUID also lands in its own column so
// resolution is an exact match.
func (i *Intake) NewRecord(originalName, category, mimeType, uploadedBy string, sizeBytes int64) *assets.Asset {
	if category == "" {
		category = "general"
	}
	id := uuid.New().String()

	return &assets.Asset{
		OriginalName: originalName,
		StorageKey:   id + "-" + sanitizeFilename(originalName),
		StorageUUID:  id,
		Category:     category,
		MimeType:     mimeType,
		SizeBytes:    sizeBytes,
		UploadedBy:   uploadedBy,
	}
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// sanitizeFilename strips directory components and anything that could
// not safely appear in a disk path or a Content-Disposition header.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == ".." {
		name = "file"
	}
	return name
}
