// Package gdrive implements a read-only storage adapter over Google Drive.
// Object keys are Drive file ids, optionally suffixed with ".xlsx" or ".csv"
// to choose the export format of native Google Sheets files (xlsx when
// absent). Other files are downloaded as stored.
package gdrive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	mimeGoogleSheet = "application/vnd.google-apps.spreadsheet"
	mimeXLSX        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeCSV         = "text/csv"
)

// ErrReadOnly is returned by write operations.
var ErrReadOnly = errors.New("storage backend is read only")

// Config holds Drive adapter settings.
type Config struct {
	SharedDrives bool
}

// Storage reads files from Google Drive.
type Storage struct {
	files        *drive.FilesService
	sharedDrives bool
}

// New creates a Drive adapter with read-only scope.
func New(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Storage, error) {
	opts = append([]option.ClientOption{option.WithScopes(drive.DriveReadonlyScope)}, opts...)
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive client: %w", err)
	}
	return &Storage{files: svc.Files, sharedDrives: cfg.SharedDrives}, nil
}

// PutObject is not supported.
func (s *Storage) PutObject(ctx context.Context, key string, data io.Reader, contentType string, size int64) error {
	return ErrReadOnly
}

// GetObject downloads the file content, exporting native spreadsheets in the
// format named by the key suffix.
func (s *Storage) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	id, exportMime := splitKey(key)
	meta, err := s.files.Get(id).
		SupportsAllDrives(s.sharedDrives).
		Fields("id", "name", "mimeType").
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapNotFound(key, err)
	}

	var resp *http.Response
	if meta.MimeType == mimeGoogleSheet {
		resp, err = s.files.Export(id, exportMime).Context(ctx).Download()
	} else {
		resp, err = s.files.Get(id).SupportsAllDrives(s.sharedDrives).Context(ctx).Download()
	}
	if err != nil {
		return nil, wrapNotFound(key, err)
	}
	return resp.Body, nil
}

// DeleteObject is not supported.
func (s *Storage) DeleteObject(ctx context.Context, key string) error {
	return ErrReadOnly
}

// ObjectExists checks the file metadata.
func (s *Storage) ObjectExists(ctx context.Context, key string) (bool, error) {
	id, _ := splitKey(key)
	_, err := s.files.Get(id).SupportsAllDrives(s.sharedDrives).Fields("id").Context(ctx).Do()
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("get file metadata: %w", err)
	}
	return true, nil
}

// GenerateURL returns the Drive viewer link.
func (s *Storage) GenerateURL(ctx context.Context, key string, fileName string) (string, error) {
	id, _ := splitKey(key)
	return fmt.Sprintf("https://drive.google.com/file/d/%s/view", id), nil
}

// Type returns "drive" as the storage type identifier.
func (s *Storage) Type() string {
	return "drive"
}

// splitKey strips a format suffix from key. Drive ids never contain dots.
func splitKey(key string) (id, exportMime string) {
	switch {
	case strings.HasSuffix(strings.ToLower(key), ".csv"):
		return key[:len(key)-len(".csv")], mimeCSV
	case strings.HasSuffix(strings.ToLower(key), ".xlsx"):
		return key[:len(key)-len(".xlsx")], mimeXLSX
	default:
		return key, mimeXLSX
	}
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

func wrapNotFound(key string, err error) error {
	if isNotFound(err) {
		return fmt.Errorf("drive file %s: %w", key, fs.ErrNotExist)
	}
	return fmt.Errorf("drive file %s: %w", key, err)
}
