package storage

import (
	"context"

	"gallery-backend/internal/domain/assets"
)

// Resolve maps an external reference (numeric id or storage UUID) to a
// stored record. The reference is classified exactly once by ParseRef;
// lookup code never re-tests the shape.
func Resolve(ctx context.Context, s Store, reference string) (*assets.Asset, error) {
	ref, err := assets.ParseRef(reference)
	if err != nil {
		return nil, err
	}

	switch ref.Kind {
	case assets.RefByKey:
		return s.GetByUUID(ctx, ref.UUID)
	default:
		return s.Get(ctx, ref.ID)
	}
}
