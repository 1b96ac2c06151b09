package inventory

import (
	"sort"

	"github.com/yi-nology/campus_inventory/biz/dal/model"
	"github.com/yi-nology/campus_inventory/biz/model/api"
	"github.com/yi-nology/campus_inventory/pkg/constants"
	"github.com/yi-nology/campus_inventory/pkg/util"
)

// Query keeps the records matching every set filter by exact string
// equality, preserving order. Sentinel filter values match everything.
func Query(records []model.AssetRecord, f api.AssetFilters) []model.AssetRecord {
	out := make([]model.AssetRecord, 0, len(records))
	for _, r := range records {
		if !matches(r.Site, f.Site) || !matches(r.Building, f.Building) || !matches(r.EquipmentStatus, f.Status) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(value, filter string) bool {
	return constants.IsAllSentinel(filter) || value == filter
}

// Summarize computes the dashboard counters. A record is in poor condition
// when its equipment status equals poorValue. Blank site, building and
// status cells count toward TotalCount only, matching FilterOptions.
func Summarize(records []model.AssetRecord, poorValue string) api.Summary {
	s := api.Summary{
		StatusHistogram: map[string]int{},
		SiteHistogram:   map[string]int{},
	}
	buildings := make(map[string]struct{})
	for _, r := range records {
		s.TotalCount++
		if r.EquipmentStatus != "" {
			s.StatusHistogram[r.EquipmentStatus]++
		}
		if r.Site != "" {
			s.SiteHistogram[r.Site]++
		}
		if r.Building != "" {
			buildings[r.Building] = struct{}{}
		}
		if poorValue != "" && r.EquipmentStatus == poorValue {
			s.PoorConditionCount++
		}
	}
	s.DistinctSiteCount = len(s.SiteHistogram)
	s.DistinctBuildingCount = len(buildings)
	return s
}

// Histogram counts occurrences per value.
type Histogram map[string]int

// Series returns chart bars by descending count, ties broken by label.
func (h Histogram) Series() []api.Bar {
	bars := make([]api.Bar, 0, len(h))
	for label, count := range h {
		bars = append(bars, api.Bar{Label: label, Count: count})
	}
	sort.Slice(bars, func(i, j int) bool {
		if bars[i].Count == bars[j].Count {
			return bars[i].Label < bars[j].Label
		}
		return bars[i].Count > bars[j].Count
	})
	return bars
}

// FilterOptions lists the distinct values of each filterable column, sorted.
func FilterOptions(records []model.AssetRecord) api.FilterOptions {
	sites := make([]string, 0, len(records))
	buildings := make([]string, 0, len(records))
	statuses := make([]string, 0, len(records))
	for _, r := range records {
		sites = append(sites, r.Site)
		buildings = append(buildings, r.Building)
		statuses = append(statuses, r.EquipmentStatus)
	}
	return api.FilterOptions{
		Sites:     util.SortedDistinct(sites),
		Buildings: util.SortedDistinct(buildings),
		Statuses:  util.SortedDistinct(statuses),
	}
}
