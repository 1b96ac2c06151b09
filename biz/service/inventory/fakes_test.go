package inventory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/yi-nology/campus_inventory/biz/dal/model"
	"github.com/yi-nology/campus_inventory/biz/service/reference"
	"github.com/yi-nology/campus_inventory/pkg/constants"
)

var errBackendDown = errors.New("backend down")

// memStore is an in-memory RecordStore that records every call.
type memStore struct {
	mu sync.Mutex

	records   []model.AssetRecord
	appended  [][]string
	loadCalls int
	loadErr   error
	appendErr error
}

func (m *memStore) LoadAll(context.Context) ([]model.AssetRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCalls++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]model.AssetRecord{}, m.records...), nil
}

func (m *memStore) Append(_ context.Context, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	record, err := model.RecordFromPositional(row)
	if err != nil {
		return err
	}
	m.appended = append(m.appended, row)
	m.records = append(m.records, record)
	return nil
}

// brokenReference fails every lookup.
type brokenReference struct{}

func (brokenReference) ListSites(context.Context) ([]string, error) {
	return nil, reference.ErrReferenceDataUnavailable
}

func (brokenReference) ListBuildings(context.Context, string) ([]string, error) {
	return nil, reference.ErrReferenceDataUnavailable
}

var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func newTestService(st *memStore, opts ...Option) *Service {
	vocab, err := constants.LookupVocabulary(constants.VocabularyCondicion, "")
	if err != nil {
		panic(err)
	}
	ref := reference.NewProvider(reference.NewStaticSource(nil))
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewService(st, ref, vocab, opts...)
}

func sampleRecords() []model.AssetRecord {
	return []model.AssetRecord{
		{Site: "CENTRO", Building: "DAVILA", AssetTag: "UR-001", Serial: "S1", EquipmentStatus: "Malo"},
		{Site: "NORTE", Building: "FCI", AssetTag: "UR-0010", Serial: "S2", EquipmentStatus: "Bueno"},
		{Site: "NORTE", Building: "FCS", AssetTag: "ur-002", Serial: "S3", EquipmentStatus: "Regular"},
		{Site: "CENTRO", Building: "AULARIO", AssetTag: "UR-003", Serial: "S4", EquipmentStatus: "Bueno"},
	}
}
