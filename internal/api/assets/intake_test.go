package assets

import (
	"strings"
	"testing"

	"gallery-backend/config"
	"gallery-backend/internal/domain/assets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		MaxUploadBytes:   50 << 20,
		AllowedMimeTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp", "image/svg+xml"},
	}
}

func TestValidateMimeGate(t *testing.T) {
	intake := NewIntake(testConfig())

	tests := []struct {
		mime string
		ok   bool
	}{
		{"image/jpeg", true},
		{"image/png", true},
		{"IMAGE/PNG", true}, // case-insensitive
		{"image/svg+xml", true},
		{"application/pdf", false},
		{"text/html", false},
		{"video/mp4", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			err := intake.Validate(tt.mime, 100)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var verr *assets.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestValidateSizeGate(t *testing.T) {
	cfg := testConfig()
	cfg.MaxUploadBytes = 1024
	intake := NewIntake(cfg)

	assert.NoError(t, intake.Validate("image/png", 1024))

	err := intake.Validate("image/png", 1025)
	var verr *assets.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "too large")
}

func TestSizeGateIndependentOfMimeGate(t *testing.T) {
	cfg := testConfig()
	cfg.MaxUploadBytes = 10
	intake := NewIntake(cfg)

	// Oversized but valid MIME still fails on size alone.
	err := intake.Validate("image/jpeg", 11)
	var verr *assets.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "too large")
}

func TestStorageKeyUniqueness(t *testing.T) {
	intake := NewIntake(testConfig())

	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		rec := intake.NewRecord("same-name.jpg", "general", "image/jpeg", "", 1)
		require.False(t, seen[rec.StorageKey], "storage key collision: %s", rec.StorageKey)
		seen[rec.StorageKey] = true
	}
}

func TestNewRecordShape(t *testing.T) {
	intake := NewIntake(testConfig())

	rec := intake.NewRecord("Hero Banner.PNG", "", "image/png", "curator@example.com", 512)

	assert.Equal(t, "Hero Banner.PNG", rec.OriginalName)
	assert.Equal(t, "general", rec.Category, "empty category defaults")
	assert.Equal(t, int64(512), rec.SizeBytes)
	assert.Equal(t, "curator@example.com", rec.UploadedBy)
	assert.NotEmpty(t, rec.StorageUUID)
	assert.True(t, strings.HasPrefix(rec.StorageKey, rec.StorageUUID+"-"))
	assert.True(t, strings.HasSuffix(rec.StorageKey, "Hero_Banner.PNG"))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"my photo (1).jpg", "my_photo_1_.jpg"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\system32`, "system32"},
		{"üñïçödé.png", "_.png"},
		{"", "file"},
		{"..", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFilename(tt.in))
		})
	}
}
