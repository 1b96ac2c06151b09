package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/yi-nology/campus_inventory/biz/dal/model"

	"gorm.io/gorm"
)

// AssetRecordDAO reads and appends rows of the asset_record table.
type AssetRecordDAO struct{}

func NewAssetRecordDAO() *AssetRecordDAO { return &AssetRecordDAO{} }

func (dao *AssetRecordDAO) Create(ctx context.Context, db *gorm.DB, record *model.AssetRecord) error {
	if record == nil {
		return errors.New("asset record must not be nil")
	}
	return db.WithContext(ctx).Create(record).Error
}

// ListAll returns every record in insertion order.
func (dao *AssetRecordDAO) ListAll(ctx context.Context, db *gorm.DB) ([]model.AssetRecord, error) {
	var records []model.AssetRecord
	if err := db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (dao *AssetRecordDAO) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&model.AssetRecord{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// AutoMigrate creates the asset_record table when missing.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&model.AssetRecord{})
}

// RecordStore serves the inventory from a SQL table.
type RecordStore struct {
	db  *gorm.DB
	dao *AssetRecordDAO
}

func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db, dao: NewAssetRecordDAO()}
}

// LoadAll returns every stored record in insertion order.
func (s *RecordStore) LoadAll(ctx context.Context) ([]model.AssetRecord, error) {
	records, err := s.dao.ListAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: list asset records: %v", model.ErrStoreUnavailable, err)
	}
	if records == nil {
		records = []model.AssetRecord{}
	}
	return records, nil
}

// Append inserts one row given in column schema order.
func (s *RecordStore) Append(ctx context.Context, row []string) error {
	record, err := model.RecordFromPositional(row)
	if err != nil {
		return err
	}
	if err := s.dao.Create(ctx, s.db, &record); err != nil {
		return fmt.Errorf("%w: insert asset record: %v", model.ErrStoreUnavailable, err)
	}
	return nil
}
