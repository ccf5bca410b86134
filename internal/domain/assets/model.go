package assets

import "time"

// Asset is one uploaded file: a metadata row plus (usually) its binary
// payload. Payload may be nil: rows created before binary storage was
// introduced have metadata only and stay unservable until re-uploaded.
// That state is permanent and legitimate, not an error.
type Asset struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	OriginalName string `gorm:"not null" json:"original_name"`
	StorageKey   string `gorm:"not null;uniqueIndex:idx_assets_storage_key" json:"storage_key"`

	// StorageUUID is the random half of StorageKey kept in its own indexed
	// column so reference lookup is an exact match, not a substring scan.
	// Legacy rows may have it empty.
	StorageUUID string `gorm:"index:idx_assets_storage_uuid" json:"-"`

	Category  string `gorm:"not null;default:'general';index" json:"category"`
	MimeType  string `gorm:"not null" json:"mime_type"`
	SizeBytes int64  `gorm:"not null" json:"size_bytes"`
	Payload   []byte `json:"-"`

	UploadedBy string `json:"uploaded_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// HasPayload reports whether the asset can actually be served.
func (a *Asset) HasPayload() bool {
	return a.Payload != nil
}
