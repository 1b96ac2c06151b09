package inventory

import (
	"testing"

	"github.com/yi-nology/campus_inventory/biz/dal/model"
	"github.com/yi-nology/campus_inventory/biz/model/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	records := sampleRecords()

	t.Run("NoFiltersReturnsAllInOrder", func(t *testing.T) {
		assert.Equal(t, records, Query(records, api.AssetFilters{}))
	})

	t.Run("SentinelsAreNoOps", func(t *testing.T) {
		for _, sentinel := range []string{"Todas", "Todos", "All"} {
			got := Query(records, api.AssetFilters{Site: sentinel, Building: sentinel, Status: sentinel})
			assert.Equal(t, records, got, sentinel)
		}
	})

	t.Run("Conjunctive", func(t *testing.T) {
		got := Query(records, api.AssetFilters{Site: "NORTE", Status: "Bueno"})
		require.Len(t, got, 1)
		assert.Equal(t, "UR-0010", got[0].AssetTag)
	})

	t.Run("ExactMatchOnly", func(t *testing.T) {
		assert.Empty(t, Query(records, api.AssetFilters{Site: "centro"}))
		assert.Empty(t, Query(records, api.AssetFilters{Site: "CENTRO "}))
	})

	t.Run("Idempotent", func(t *testing.T) {
		filters := []api.AssetFilters{
			{},
			{Site: "CENTRO"},
			{Building: "FCI"},
			{Site: "NORTE", Status: "Regular"},
			{Status: "Perdido"},
		}
		for _, f := range filters {
			once := Query(records, f)
			assert.Equal(t, once, Query(once, f), "%+v", f)
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		got := Query(nil, api.AssetFilters{Site: "CENTRO"})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		s := Summarize(nil, "Malo")
		assert.Equal(t, 0, s.TotalCount)
		assert.Equal(t, 0, s.DistinctSiteCount)
		assert.Equal(t, 0, s.DistinctBuildingCount)
		assert.Equal(t, 0, s.PoorConditionCount)
		assert.NotNil(t, s.StatusHistogram)
		assert.NotNil(t, s.SiteHistogram)
		assert.Empty(t, s.StatusHistogram)
		assert.Empty(t, s.SiteHistogram)
	})

	t.Run("FilteredScenario", func(t *testing.T) {
		records := []model.AssetRecord{
			{Site: "CENTRO", Building: "DAVILA", EquipmentStatus: "Malo"},
			{Site: "NORTE", Building: "FCI", EquipmentStatus: "Bueno"},
		}
		filtered := Query(records, api.AssetFilters{Site: "CENTRO"})
		require.Equal(t, records[:1], filtered)

		assert.Equal(t, api.Summary{
			TotalCount:            1,
			DistinctSiteCount:     1,
			DistinctBuildingCount: 1,
			PoorConditionCount:    1,
			StatusHistogram:       map[string]int{"Malo": 1},
			SiteHistogram:         map[string]int{"CENTRO": 1},
		}, Summarize(filtered, "Malo"))
	})

	t.Run("PoorLiteralIsConfigured", func(t *testing.T) {
		records := []model.AssetRecord{
			{EquipmentStatus: "Malo"},
			{EquipmentStatus: "Dado de baja"},
			{EquipmentStatus: "Poor"},
		}
		assert.Equal(t, 1, Summarize(records, "Malo").PoorConditionCount)
		assert.Equal(t, 1, Summarize(records, "Dado de baja").PoorConditionCount)
		assert.Equal(t, 0, Summarize(records, "").PoorConditionCount)
	})

	t.Run("Histograms", func(t *testing.T) {
		s := Summarize(sampleRecords(), "Malo")
		assert.Equal(t, 4, s.TotalCount)
		assert.Equal(t, 2, s.DistinctSiteCount)
		assert.Equal(t, 4, s.DistinctBuildingCount)
		assert.Equal(t, map[string]int{"Malo": 1, "Bueno": 2, "Regular": 1}, s.StatusHistogram)
		assert.Equal(t, map[string]int{"CENTRO": 2, "NORTE": 2}, s.SiteHistogram)
	})
}

func TestSummarizeIgnoresBlankCells(t *testing.T) {
	records := []model.AssetRecord{
		{Site: "CENTRO", Building: "DAVILA", EquipmentStatus: "Bueno"},
		{Site: "", Building: "", EquipmentStatus: ""},
		{Site: "NORTE", Building: "", EquipmentStatus: "Malo"},
	}
	s := Summarize(records, "Malo")
	opts := FilterOptions(records)

	assert.Equal(t, 3, s.TotalCount)
	assert.Equal(t, len(opts.Sites), s.DistinctSiteCount)
	assert.Equal(t, len(opts.Buildings), s.DistinctBuildingCount)
	assert.Equal(t, map[string]int{"CENTRO": 1, "NORTE": 1}, s.SiteHistogram)
	assert.Equal(t, map[string]int{"Bueno": 1, "Malo": 1}, s.StatusHistogram)
	assert.NotContains(t, s.SiteHistogram, "")
}

func TestHistogramSeries(t *testing.T) {
	h := Histogram{"Regular": 1, "Bueno": 3, "Malo": 1}
	assert.Equal(t, []api.Bar{
		{Label: "Bueno", Count: 3},
		{Label: "Malo", Count: 1},
		{Label: "Regular", Count: 1},
	}, h.Series())
	assert.Empty(t, Histogram{}.Series())
}

func TestFilterOptions(t *testing.T) {
	opts := FilterOptions(sampleRecords())
	assert.Equal(t, []string{"CENTRO", "NORTE"}, opts.Sites)
	assert.Equal(t, []string{"AULARIO", "DAVILA", "FCI", "FCS"}, opts.Buildings)
	assert.Equal(t, []string{"Bueno", "Malo", "Regular"}, opts.Statuses)

	empty := FilterOptions(nil)
	assert.NotNil(t, empty.Sites)
	assert.Empty(t, empty.Sites)
}
