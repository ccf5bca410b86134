package storage

import (
	"context"
	"fmt"

	"gallery-backend/config"
	"gallery-backend/internal/domain/assets"

	"gorm.io/gorm"
)

// Store is the Asset Store contract. Two backends implement it: payload as
// a database blob, or payload on disk with the metadata row in the
// database. Upload intake and the file-serving handler only ever see this
// interface, so backends are interchangeable via configuration.
type Store interface {
	// Put commits metadata and payload atomically and returns the new id.
	// A nil payload is stored as an explicit "no binary" row.
	Put(ctx context.Context, rec *assets.Asset, payload []byte) (uint, error)

	// Get returns the full record, payload included (nil when missing).
	Get(ctx context.Context, id uint) (*assets.Asset, error)

	// GetByUUID resolves a storage UUID to its record: exact match on the
	// storage_uuid column first, then the legacy substring fallback against
	// storage_key (newest row wins on ambiguity).
	GetByUUID(ctx context.Context, id string) (*assets.Asset, error)

	// List returns metadata only; payload is never loaded. Empty category
	// means all.
	List(ctx context.Context, category string) ([]assets.Asset, error)

	// Delete removes the record and any secondary artifact. Artifact
	// cleanup is best-effort: its failure is logged, not returned.
	Delete(ctx context.Context, id uint) error
}

// New selects the backend from configuration.
func New(cfg *config.Config, db *gorm.DB) (Store, error) {
	switch cfg.StorageBackend {
	case "database", "":
		return NewDatabaseStore(db), nil
	case "disk":
		return NewDiskStore(db, cfg.UploadDir)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.StorageBackend)
	}
}

// storeErr wraps driver failures so handlers can treat them uniformly as
// 5xx while domain sentinels pass through untouched.
func storeErr(op string, err error) error {
	return fmt.Errorf("asset store %s: %w", op, err)
}
