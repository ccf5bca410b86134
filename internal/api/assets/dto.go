package assets

import "time"

type FileDTO struct {
	ID           uint      `json:"id"`
	URL          string    `json:"url"`
	OriginalName string    `json:"original_name"`
	Category     string    `json:"category"`
	MimeType     string    `json:"mime_type"`
	SizeBytes    int64     `json:"size_bytes"`
	UploadedBy   string    `json:"uploaded_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type UploadResponse struct {
	Success bool    `json:"success"`
	File    FileDTO `json:"file"`
}
