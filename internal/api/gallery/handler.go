package gallery

import (
	"gorm.io/gorm"
)

// Handler carries the injected DB handle for every content-entity route.
// Content rows reference uploaded assets by their reference string (the
// /api/file/:ref form), so this package never touches the asset store.
type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}
