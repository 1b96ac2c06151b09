// Package reference supplies the controlled site to building vocabulary that
// constrains asset registration.
package reference

import (
	"context"
	"errors"
	"sync"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ErrReferenceDataUnavailable reports an unreachable or malformed reference source.
var ErrReferenceDataUnavailable = errors.New("reference data unavailable")

// Source loads the full reference table.
type Source interface {
	Load(ctx context.Context) (*Table, error)
	Name() string
}

// Provider lazily loads the reference table on first access and serves it
// from memory until Invalidate is called. Failed loads are not cached.
type Provider struct {
	source Source

	mu    sync.Mutex
	table *Table
}

func NewProvider(source Source) *Provider {
	return &Provider{source: source}
}

// ListSites returns the distinct site names, sorted.
func (p *Provider) ListSites(ctx context.Context) ([]string, error) {
	t, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	return t.Sites(), nil
}

// ListBuildings returns the distinct buildings of site, sorted. Unknown sites
// yield an empty slice.
func (p *Provider) ListBuildings(ctx context.Context, site string) ([]string, error) {
	t, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	return t.Buildings(site), nil
}

// Invalidate drops the cached table; the next call reloads it.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	p.table = nil
	p.mu.Unlock()
}

func (p *Provider) load(ctx context.Context) (*Table, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.table != nil {
		return p.table, nil
	}
	t, err := p.source.Load(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "reference data load failed: source=%s err=%v", p.source.Name(), err)
		if !errors.Is(err, ErrReferenceDataUnavailable) {
			err = errors.Join(ErrReferenceDataUnavailable, err)
		}
		return nil, err
	}
	hlog.CtxInfof(ctx, "reference data loaded: source=%s sites=%d", p.source.Name(), len(t.sites))
	p.table = t
	return t, nil
}
