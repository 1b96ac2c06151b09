package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/yi-nology/campus_inventory/biz/dal/model"
	"github.com/yi-nology/campus_inventory/pkg/config"
	"github.com/yi-nology/campus_inventory/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabaseBackend(t *testing.T) {
	ctx := context.Background()
	cfg := config.StoreConfig{
		Backend: config.StoreBackendDatabase,
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "inventory.db")},
		},
	}

	st, closeFn, err := New(ctx, cfg)
	require.NoError(t, err)
	defer closeFn()

	record := model.AssetRecord{Site: "NORTE", Building: "FCI", AssetTag: "PAT-1", Serial: "SN-1"}
	require.NoError(t, st.Append(ctx, model.Row(record)))

	records, err := st.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "PAT-1", records[0].AssetTag)

	assert.GreaterOrEqual(t, testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("database", "append", metrics.OutcomeSuccess)), float64(1))
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	_, closeFn, err := New(context.Background(), config.StoreConfig{Backend: "excel"})
	require.Error(t, err)
	assert.NotNil(t, closeFn)
}

type failingStore struct{}

func (failingStore) LoadAll(context.Context) ([]model.AssetRecord, error) {
	return nil, ErrStoreUnavailable
}

func (failingStore) Append(context.Context, []string) error { return ErrStoreUnavailable }

func TestInstrumentPassesErrorsThrough(t *testing.T) {
	st := Instrument("fake", failingStore{})
	_, err := st.LoadAll(context.Background())
	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.True(t, errors.Is(st.Append(context.Background(), nil), ErrStoreUnavailable))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("fake", "append", metrics.OutcomeError)))
}
