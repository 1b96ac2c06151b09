package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/yi-nology/campus_inventory/biz/dal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database with the asset_record table.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := AutoMigrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	return db
}

// CleanupTestDB closes the database connection
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close DB: %v", err)
	}
}

// CreateTestRecord inserts a record with the given identifiers and location.
func CreateTestRecord(t *testing.T, db *gorm.DB, tag, site, building string) *model.AssetRecord {
	t.Helper()
	record := &model.AssetRecord{
		RegistrationDate:  "2024-03-01",
		Site:              site,
		Building:          building,
		EquipmentType:     "Laptop",
		AssetTag:          tag,
		Serial:            "SN-" + tag,
		EquipmentStatus:   "Bueno",
		MaintenanceStatus: "Al día",
		MaintenanceType:   "Preventivo",
	}
	if err := NewAssetRecordDAO().Create(context.Background(), db, record); err != nil {
		t.Fatalf("Failed to create test record: %v", err)
	}
	return record
}
