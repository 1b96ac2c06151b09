// Package storage defines the object storage abstraction used for the
// reference workbook and inventory exports. Backends are the local
// filesystem, S3-compatible object storage and Google Drive (read only).
package storage

import (
	"context"
	"io"

	"github.com/yi-nology/campus_inventory/pkg/storage/gdrive"
)

// Storage type identifiers.
const (
	TypeLocal = "local"
	TypeS3    = "s3"
	TypeDrive = "drive"
)

// ErrReadOnly is returned by backends that cannot write objects.
var ErrReadOnly = gdrive.ErrReadOnly

// Storage defines the interface for object storage operations.
// Missing objects are reported with an error wrapping fs.ErrNotExist.
type Storage interface {
	// PutObject uploads a file to storage.
	// key: object key such as "exports/{fileID}/{fileName}"
	PutObject(ctx context.Context, key string, data io.Reader, contentType string, size int64) error

	// GetObject retrieves a file from storage.
	// Returns a ReadCloser that must be closed by the caller.
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)

	// DeleteObject removes a file from storage.
	DeleteObject(ctx context.Context, key string) error

	// ObjectExists checks if an object exists in storage.
	ObjectExists(ctx context.Context, key string) (bool, error)

	// GenerateURL creates an access URL for the object.
	// For local storage and S3 proxy mode: returns the API path /api/v1/exports/{fileID}/{fileName}
	// For S3 with presigned mode: returns a presigned URL
	GenerateURL(ctx context.Context, key string, fileName string) (string, error)

	// Type returns the storage type identifier.
	Type() string
}
