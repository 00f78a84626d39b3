package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage is the object-storage contract the catalog uses for exercise
// images. Uploads and downloads go straight to the provider via presigned
// URLs; the app only ever stores the object key.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL allowing a direct
	// PUT of the object to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL allowing a
	// direct GET of the object.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
