package database

import (
	"fmt"

	"gallery-backend/internal/domain/assets"
	"gallery-backend/internal/domain/gallery"
	"gallery-backend/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the connection pool and migrates the schema. The returned
// handle is owned by the caller (main) and injected into every consumer;
// there is no package-level singleton.
func Init(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate is separate from Init so tests can run it against other dialects.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.AdminUser{},

		// asset pipeline
		&assets.Asset{},

		// gallery content
		&gallery.Artist{},
		&gallery.Artwork{},
		&gallery.Exhibition{},
		&gallery.PageContent{},
		&gallery.Subscriber{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
