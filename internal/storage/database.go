package storage

import (
	"context"
	"errors"

	"gallery-backend/internal/domain/assets"

	"gorm.io/gorm"
)

// DatabaseStore keeps the payload in a blob column next to its metadata,
// so a single INSERT commits both. The record is never partially written.
type DatabaseStore struct {
	db *gorm.DB
}

func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (s *DatabaseStore) Put(ctx context.Context, rec *assets.Asset, payload []byte) (uint, error) {
	rec.Payload = payload
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return 0, storeErr("put", err)
	}
	return rec.ID, nil
}

func (s *DatabaseStore) Get(ctx context.Context, id uint) (*assets.Asset, error) {
	var rec assets.Asset
	err := s.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, assets.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get", err)
	}
	return &rec, nil
}

func (s *DatabaseStore) GetByUUID(ctx context.Context, id string) (*assets.Asset, error) {
	return getByUUID(ctx, s.db, id)
}

func (s *DatabaseStore) List(ctx context.Context, category string) ([]assets.Asset, error) {
	return listMetadata(ctx, s.db, category)
}

func (s *DatabaseStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&assets.Asset{}, id)
	if res.Error != nil {
		return storeErr("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return assets.ErrNotFound
	}
	return nil
}

// getByUUID is shared by both backends: the metadata row always lives in
// the database regardless of where the payload goes.
func getByUUID(ctx context.Context, db *gorm.DB, id string) (*assets.Asset, error) {
	var rec assets.Asset
	err := db.WithContext(ctx).
		Where("storage_uuid = ?", id).
		Order("created_at DESC").
		First(&rec).Error
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeErr("get by uuid", err)
	}

	// Legacy rows predate the storage_uuid column; their UUID is only
	// recoverable as a substring of the composite storage key. Ambiguous
	// matches tie-break to the most recent row.
	err = db.WithContext(ctx).
		Where("storage_key LIKE ?", "%"+id+"%").
		Order("created_at DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, assets.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get by uuid", err)
	}
	return &rec, nil
}

func listMetadata(ctx context.Context, db *gorm.DB, category string) ([]assets.Asset, error) {
	q := db.WithContext(ctx).
		Model(&assets.Asset{}).
		Omit("payload").
		Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var out []assets.Asset
	if err := q.Find(&out).Error; err != nil {
		return nil, storeErr("list", err)
	}
	return out, nil
}
