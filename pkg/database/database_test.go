package database

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/yi-nology/campus_inventory/pkg/config"
)

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "inventory.db")
	db, err := Open(config.DatabaseConfig{Driver: "sqlite", SQLite: config.SQLiteConfig{Path: path}})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer Close(db)

	if err := db.Exec("SELECT 1").Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
}

func TestOpenRejectsBadConfig(t *testing.T) {
	cases := map[string]struct {
		cfg     config.DatabaseConfig
		wantErr string
	}{
		"UnknownDriver": {config.DatabaseConfig{Driver: "oracle"}, "unsupported database driver"},
		"MySQLNoDSN":    {config.DatabaseConfig{Driver: "mysql"}, "mysql dsn"},
		"PostgresNoDSN": {config.DatabaseConfig{Driver: "postgres"}, "postgres dsn"},
		"SQLiteNoPath":  {config.DatabaseConfig{Driver: "sqlite"}, "sqlite path"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Open(tc.cfg)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}
