package reference

import (
	"strings"

	"github.com/yi-nology/campus_inventory/pkg/util"
)

// Table maps each site to its sorted, distinct buildings.
type Table struct {
	sites     []string
	buildings map[string][]string
}

// NewTable builds a table from a site to buildings mapping. Names are
// trimmed; blank sites and buildings are dropped.
func NewTable(m map[string][]string) *Table {
	raw := make(map[string][]string, len(m))
	for site, buildings := range m {
		site = strings.TrimSpace(site)
		if site == "" {
			continue
		}
		for _, b := range buildings {
			if b = strings.TrimSpace(b); b != "" {
				raw[site] = append(raw[site], b)
			}
		}
	}
	return build(raw)
}

// tableFromPairs builds a table from (site, building) rows, discarding rows
// where either value is blank.
func tableFromPairs(pairs [][2]string) *Table {
	raw := make(map[string][]string)
	for _, p := range pairs {
		site, building := strings.TrimSpace(p[0]), strings.TrimSpace(p[1])
		if site == "" || building == "" {
			continue
		}
		raw[site] = append(raw[site], building)
	}
	return build(raw)
}

func build(raw map[string][]string) *Table {
	t := &Table{buildings: make(map[string][]string, len(raw))}
	sites := make([]string, 0, len(raw))
	for site, buildings := range raw {
		if len(buildings) == 0 {
			continue
		}
		sites = append(sites, site)
		t.buildings[site] = util.SortedDistinct(buildings)
	}
	t.sites = util.SortedDistinct(sites)
	return t
}

// Sites returns a copy of the sorted site list.
func (t *Table) Sites() []string {
	return append([]string{}, t.sites...)
}

// Buildings returns a copy of the buildings of site, empty when unknown.
func (t *Table) Buildings(site string) []string {
	return append([]string{}, t.buildings[site]...)
}
