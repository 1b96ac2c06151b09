package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yi-nology/campus_inventory/pkg/constants"
	"github.com/yi-nology/campus_inventory/pkg/storage"
	"github.com/yi-nology/campus_inventory/pkg/validator"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreBackendSheets   = "sheets"
	StoreBackendDatabase = "database"
)

// Reference data sources.
const (
	ReferenceSourceStatic   = "static"
	ReferenceSourceWorkbook = "workbook"
)

// Config captures service level configuration loaded from config.yaml.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	CORS       CORSConfig       `yaml:"cors"`
	Log        LogConfig        `yaml:"log"`
	Google     GoogleConfig     `yaml:"google"`
	Store      StoreConfig      `yaml:"store"`
	Reference  ReferenceConfig  `yaml:"reference"`
	Storage    storage.Config   `yaml:"storage"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Cache      CacheConfig      `yaml:"cache"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// ServerConfig defines HTTP server options.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// CORSConfig defines CORS middleware settings.
type CORSConfig struct {
	AllowOrigin      string `yaml:"allow_origin"`
	AllowMethods     string `yaml:"allow_methods"`
	AllowHeaders     string `yaml:"allow_headers"`
	AllowCredentials bool   `yaml:"allow_credentials"`
}

// LogConfig sets the hlog level (trace, debug, info, notice, warn, error, fatal).
type LogConfig struct {
	Level string `yaml:"level"`
}

// GoogleConfig holds the service account used by the Sheets and Drive clients.
// When CredentialsFile is empty the GOOGLE_APPLICATION_CREDENTIALS_JSON and
// GOOGLE_APPLICATION_CREDENTIALS environment variables are consulted.
type GoogleConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
}

// StoreConfig selects and configures the record store backend.
type StoreConfig struct {
	Backend  string         `yaml:"backend"`
	Sheets   SheetsConfig   `yaml:"sheets"`
	Database DatabaseConfig `yaml:"database"`
}

// SheetsConfig points at the spreadsheet tab holding the inventory.
type SheetsConfig struct {
	SpreadsheetID string `yaml:"spreadsheet_id"`
	Worksheet     string `yaml:"worksheet"`
}

// DatabaseConfig defines the database backend configuration.
type DatabaseConfig struct {
	Driver   string         `yaml:"driver"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// SQLiteConfig contains SQLite specific settings.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// MySQLConfig contains MySQL specific connection details.
type MySQLConfig struct {
	DSN string `yaml:"dsn"`
}

// PostgresConfig contains PostgreSQL specific connection details.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// ReferenceConfig selects the site/building reference table.
type ReferenceConfig struct {
	Source   string              `yaml:"source"`
	Static   map[string][]string `yaml:"static"`
	Workbook WorkbookConfig      `yaml:"workbook"`
}

// WorkbookConfig locates the reference workbook in object storage. Format
// (xlsx or csv) is taken from the key extension unless set, which Drive file
// ids require.
type WorkbookConfig struct {
	Key            string `yaml:"key"`
	Format         string `yaml:"format"`
	Sheet          string `yaml:"sheet"`
	SiteColumn     string `yaml:"site_column"`
	BuildingColumn string `yaml:"building_column"`
}

// VocabularyConfig selects the enum vocabulary of the deployment.
type VocabularyConfig struct {
	Variant   string `yaml:"variant"`
	PoorValue string `yaml:"poor_value"`
}

// CacheConfig controls the record cache. A zero TTL keeps loaded records
// until the next successful submission.
type CacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads a YAML configuration file from the provided path.
// It searches in the current working directory first, then next to the binary executable.
func Load(name string) (*Config, error) {
	cfg := defaultConfig()

	configPath := findConfigFile(name)
	if configPath == "" {
		log.Printf("Warning: config file %q not found, using defaults", name)
		return cfg, nil
	}

	log.Printf("Loading config from: %s", configPath)
	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	var parsed Config
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	applyDefaults(&parsed)
	return &parsed, nil
}

func defaultConfig() *Config {
	cfg := &Config{
		CORS: CORSConfig{
			AllowOrigin:  "*",
			AllowMethods: "GET,POST,OPTIONS",
			AllowHeaders: "*",
		},
		Storage: storage.DefaultConfig(),
	}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = StoreBackendDatabase
	}
	if cfg.Store.Sheets.Worksheet == "" {
		cfg.Store.Sheets.Worksheet = "Inventario"
	}
	if cfg.Store.Database.Driver == "" {
		cfg.Store.Database.Driver = "sqlite"
	}
	if cfg.Store.Database.SQLite.Path == "" {
		cfg.Store.Database.SQLite.Path = "data/inventory.db"
	}
	if cfg.Reference.Source == "" {
		cfg.Reference.Source = ReferenceSourceStatic
	}
	if cfg.Reference.Workbook.SiteColumn == "" {
		cfg.Reference.Workbook.SiteColumn = "Sede"
	}
	if cfg.Reference.Workbook.BuildingColumn == "" {
		cfg.Reference.Workbook.BuildingColumn = "Edificio"
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = storage.TypeLocal
	}
	if cfg.Storage.Local.BasePath == "" {
		cfg.Storage.Local.BasePath = "data/files"
	}
	if cfg.Vocabulary.Variant == "" {
		cfg.Vocabulary.Variant = constants.DefaultVocabulary
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreBackendSheets:
		if strings.TrimSpace(c.Store.Sheets.SpreadsheetID) == "" {
			return fmt.Errorf("store.sheets.spreadsheet_id must be configured")
		}
	case StoreBackendDatabase:
	default:
		return fmt.Errorf("unsupported store backend: %s", c.Store.Backend)
	}

	switch c.Reference.Source {
	case ReferenceSourceStatic:
	case ReferenceSourceWorkbook:
		if strings.TrimSpace(c.Reference.Workbook.Key) == "" {
			return fmt.Errorf("reference.workbook.key must be configured")
		}
		format, err := validator.ResolveWorkbookFormat(c.Reference.Workbook.Key, c.Reference.Workbook.Format)
		if err != nil {
			return fmt.Errorf("reference.workbook.key: %w", err)
		}
		// Drive picks the export format of native spreadsheets from the key suffix.
		if c.Storage.Type == storage.TypeDrive && format == validator.WorkbookCSV {
			if ext, _ := validator.WorkbookFormat(c.Reference.Workbook.Key); ext != validator.WorkbookCSV {
				return fmt.Errorf("reference.workbook.key must end in .csv to read a drive file as csv")
			}
		}
	default:
		return fmt.Errorf("unsupported reference source: %s", c.Reference.Source)
	}

	switch c.Storage.Type {
	case storage.TypeLocal, storage.TypeS3, storage.TypeDrive:
	default:
		return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}

	if _, err := constants.LookupVocabulary(c.Vocabulary.Variant, c.Vocabulary.PoorValue); err != nil {
		return fmt.Errorf("vocabulary: %w", err)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}
	return nil
}

// findConfigFile searches for a config file in the current directory first,
// then next to the binary executable. Returns the full path or empty string.
func findConfigFile(name string) string {
	// 1. Current working directory
	if _, err := os.Stat(name); err == nil {
		abs, _ := filepath.Abs(name)
		return abs
	}

	// 2. Next to the binary executable
	exe, err := os.Executable()
	if err == nil {
		exeDir := filepath.Dir(exe)
		candidate := filepath.Join(exeDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}
