package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"gallery-backend/internal/domain/assets"

	"gorm.io/gorm"
)

// DiskStore writes the payload under UploadDir/<storageKey> and keeps the
// metadata row in the database. The file goes down first and is removed
// again if the row insert fails, so a committed row always had its file at
// commit time. A row whose file has since vanished degrades to the same
// "payload missing" state as a legacy database row.
type DiskStore struct {
	db  *gorm.DB
	dir string
}

func NewDiskStore(db *gorm.DB, dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{db: db, dir: dir}, nil
}

func (s *DiskStore) path(storageKey string) string {
	return filepath.Join(s.dir, storageKey)
}

func (s *DiskStore) Put(ctx context.Context, rec *assets.Asset, payload []byte) (uint, error) {
	rec.Payload = nil

	if payload != nil {
		if err := os.WriteFile(s.path(rec.StorageKey), payload, 0o644); err != nil {
			return 0, storeErr("put", err)
		}
	}

	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		if payload != nil {
			if rmErr := os.Remove(s.path(rec.StorageKey)); rmErr != nil {
				log.Printf("asset store: orphaned upload file %s: %v", rec.StorageKey, rmErr)
			}
		}
		return 0, storeErr("put", err)
	}
	return rec.ID, nil
}

func (s *DiskStore) Get(ctx context.Context, id uint) (*assets.Asset, error) {
	var rec assets.Asset
	err := s.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, assets.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get", err)
	}
	return s.loadPayload(&rec)
}

func (s *DiskStore) GetByUUID(ctx context.Context, id string) (*assets.Asset, error) {
	rec, err := getByUUID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	return s.loadPayload(rec)
}

func (s *DiskStore) loadPayload(rec *assets.Asset) (*assets.Asset, error) {
	data, err := os.ReadFile(s.path(rec.StorageKey))
	if errors.Is(err, fs.ErrNotExist) {
		rec.Payload = nil
		return rec, nil
	}
	if err != nil {
		return nil, storeErr("read payload", err)
	}
	rec.Payload = data
	return rec, nil
}

func (s *DiskStore) List(ctx context.Context, category string) ([]assets.Asset, error) {
	return listMetadata(ctx, s.db, category)
}

func (s *DiskStore) Delete(ctx context.Context, id uint) error {
	var rec assets.Asset
	err := s.db.WithContext(ctx).Select("id", "storage_key").First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return assets.ErrNotFound
	}
	if err != nil {
		return storeErr("delete", err)
	}

	if err := s.db.WithContext(ctx).Delete(&assets.Asset{}, id).Error; err != nil {
		return storeErr("delete", err)
	}

	// Best-effort: a dangling file is a lesser problem than a row users can
	// never delete. Failure still goes through the error log.
	if err := os.Remove(s.path(rec.StorageKey)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("asset store: failed to remove file for deleted asset %d (%s): %v", id, rec.StorageKey, err)
	}
	return nil
}
