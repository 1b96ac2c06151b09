// Package store is the boundary between the inventory and its persistent
// record table.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/yi-nology/campus_inventory/biz/dal/db"
	"github.com/yi-nology/campus_inventory/biz/dal/model"
	"github.com/yi-nology/campus_inventory/biz/dal/sheet"
	"github.com/yi-nology/campus_inventory/pkg/config"
	"github.com/yi-nology/campus_inventory/pkg/database"
	"github.com/yi-nology/campus_inventory/pkg/metrics"

	"google.golang.org/api/option"
	"gorm.io/gorm"
)

var (
	ErrStoreUnavailable = model.ErrStoreUnavailable
	ErrRowShape         = model.ErrRowShape
)

// RecordStore loads and appends asset records. Implementations keep no cache.
type RecordStore interface {
	// LoadAll returns every record in table order.
	LoadAll(ctx context.Context) ([]model.AssetRecord, error)
	// Append adds one row given in column schema order.
	Append(ctx context.Context, row []string) error
}

// New opens the backend named by cfg.Backend. The returned close function
// releases backend resources and is never nil.
func New(ctx context.Context, cfg config.StoreConfig, googleOpts ...option.ClientOption) (RecordStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Backend {
	case config.StoreBackendSheets:
		st, err := sheet.New(ctx, sheet.Config{
			SpreadsheetID: cfg.Sheets.SpreadsheetID,
			Worksheet:     cfg.Sheets.Worksheet,
		}, googleOpts...)
		if err != nil {
			return nil, noop, err
		}
		return Instrument(config.StoreBackendSheets, st), noop, nil

	case "", config.StoreBackendDatabase:
		gdb, err := database.Open(cfg.Database)
		if err != nil {
			return nil, noop, err
		}
		if err := db.AutoMigrate(ctx, gdb); err != nil {
			_ = database.Close(gdb)
			return nil, noop, fmt.Errorf("migrate asset_record: %w", err)
		}
		return Instrument(config.StoreBackendDatabase, db.NewRecordStore(gdb)), closer(gdb), nil

	default:
		return nil, noop, fmt.Errorf("unsupported store backend: %s", cfg.Backend)
	}
}

func closer(gdb *gorm.DB) func() error {
	return func() error { return database.Close(gdb) }
}

// Instrument wraps next with Prometheus call counters and latency.
func Instrument(backend string, next RecordStore) RecordStore {
	return &instrumented{backend: backend, next: next}
}

type instrumented struct {
	backend string
	next    RecordStore
}

func (s *instrumented) LoadAll(ctx context.Context) ([]model.AssetRecord, error) {
	started := time.Now()
	records, err := s.next.LoadAll(ctx)
	metrics.ObserveStore(s.backend, "load_all", started, err)
	return records, err
}

func (s *instrumented) Append(ctx context.Context, row []string) error {
	started := time.Now()
	err := s.next.Append(ctx, row)
	metrics.ObserveStore(s.backend, "append", started, err)
	return err
}
