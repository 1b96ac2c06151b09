// Package inventory registers assets and answers the dashboard and lookup
// views over the record store.
package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/yi-nology/campus_inventory/biz/dal/model"
	"github.com/yi-nology/campus_inventory/biz/dal/store"
	"github.com/yi-nology/campus_inventory/biz/model/api"
	"github.com/yi-nology/campus_inventory/pkg/constants"
	"github.com/yi-nology/campus_inventory/pkg/storage"
)

// ReferenceData is the site and building vocabulary used by Submit.
type ReferenceData interface {
	ListSites(ctx context.Context) ([]string, error)
	ListBuildings(ctx context.Context, site string) ([]string, error)
}

// Service orchestrates submissions, cached reads and exports.
type Service struct {
	store     store.RecordStore
	reference ReferenceData
	vocab     constants.Vocabulary
	cache     *RecordCache
	events    *Bus
	storage   storage.Storage
	now       func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithStorage enables Export.
func WithStorage(st storage.Storage) Option {
	return func(s *Service) { s.storage = st }
}

// WithCacheTTL bounds the age of cached records.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) { s.cache.ttl = ttl }
}

// WithClock replaces time.Now for registration dates and export names.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
		s.cache.now = now
	}
}

// WithBus shares an event bus with other subscribers.
func WithBus(bus *Bus) Option {
	return func(s *Service) { s.events = bus }
}

func NewService(recordStore store.RecordStore, reference ReferenceData, vocab constants.Vocabulary, opts ...Option) *Service {
	s := &Service{
		store:     recordStore,
		reference: reference,
		vocab:     vocab,
		cache:     NewRecordCache(recordStore, 0),
		events:    NewBus(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.events.Subscribe(EventStoreChanged, s.cache.OnStoreChanged)
	return s
}

// Vocabulary returns the enum sets of the deployment.
func (s *Service) Vocabulary() constants.Vocabulary {
	return s.vocab
}

// Records returns the cached records matching f.
func (s *Service) Records(ctx context.Context, f api.AssetFilters) ([]model.AssetRecord, error) {
	all, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	return Query(all, f), nil
}

// Dashboard assembles the read view. Selector options come from the whole
// table so a narrowing filter never hides the other choices.
func (s *Service) Dashboard(ctx context.Context, f api.AssetFilters) (*api.Dashboard, error) {
	all, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	filtered := Query(all, f)
	summary := Summarize(filtered, s.vocab.PoorValue)

	d := &api.Dashboard{
		Empty:        len(all) == 0,
		Filters:      f,
		Options:      FilterOptions(all),
		Summary:      summary,
		StatusSeries: Histogram(summary.StatusHistogram).Series(),
		SiteSeries:   Histogram(summary.SiteHistogram).Series(),
		Records:      filtered,
	}
	if loadedAt := s.cache.LoadedAt(); !loadedAt.IsZero() {
		d.LoadedAt = loadedAt.Format(time.RFC3339)
	}
	return d, nil
}

// Search looks up records by asset tag.
func (s *Service) Search(ctx context.Context, tag string) (*api.SearchResult, error) {
	tag = strings.TrimSpace(tag)
	res := &api.SearchResult{Tag: tag, Results: []model.AssetRecord{}}
	if tag == "" {
		return res, nil
	}
	all, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	res.Searched = true
	res.Results = FindByTag(all, tag)
	return res, nil
}

// Refresh drops the cached records.
func (s *Service) Refresh() {
	s.cache.Invalidate()
}
