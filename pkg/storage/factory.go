package storage

import (
	"context"
	"fmt"

	"github.com/yi-nology/campus_inventory/pkg/storage/gdrive"
	"github.com/yi-nology/campus_inventory/pkg/storage/local"
	"github.com/yi-nology/campus_inventory/pkg/storage/s3"

	"google.golang.org/api/option"
)

// Config holds storage configuration.
type Config struct {
	Type  string      `yaml:"type"`
	Local LocalConfig `yaml:"local"`
	S3    S3Config    `yaml:"s3"`
	Drive DriveConfig `yaml:"drive"`
}

// LocalConfig holds local storage configuration.
type LocalConfig struct {
	BasePath string `yaml:"base_path"`
}

// S3Config holds S3-compatible storage configuration.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
	PathStyle bool   `yaml:"path_style"`
	URLMode   string `yaml:"url_mode"`
}

// DriveConfig holds Google Drive settings. Object keys are Drive file ids.
type DriveConfig struct {
	SharedDrives bool `yaml:"shared_drives"`
}

// New creates a storage adapter based on configuration. googleOpts carries
// the credentials used by the drive backend.
func New(ctx context.Context, cfg Config, googleOpts ...option.ClientOption) (Storage, error) {
	switch cfg.Type {
	case "", TypeLocal:
		basePath := cfg.Local.BasePath
		if basePath == "" {
			basePath = "data/files"
		}
		return local.New(basePath)

	case TypeS3:
		return s3.New(ctx, s3.Config{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			UseSSL:    cfg.S3.UseSSL,
			PathStyle: cfg.S3.PathStyle,
			URLMode:   cfg.S3.URLMode,
		})

	case TypeDrive:
		return gdrive.New(ctx, gdrive.Config{SharedDrives: cfg.Drive.SharedDrives}, googleOpts...)

	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// DefaultConfig returns the default storage configuration (local storage).
func DefaultConfig() Config {
	return Config{
		Type: TypeLocal,
		Local: LocalConfig{
			BasePath: "data/files",
		},
		S3: S3Config{
			Region:  "us-east-1",
			URLMode: s3.URLModePresigned,
		},
	}
}
