package api

import "github.com/yi-nology/campus_inventory/biz/dal/model"

// AssetInput is the asset registration form.
type AssetInput struct {
	RegistrationDate  string `json:"registration_date,omitempty"`
	Site              string `json:"site"`
	Building          string `json:"building"`
	Location          string `json:"location,omitempty"`
	Area              string `json:"area,omitempty"`
	EquipmentType     string `json:"equipment_type,omitempty"`
	Brand             string `json:"brand,omitempty"`
	Model             string `json:"model,omitempty"`
	AssetTag          string `json:"asset_tag"`
	Serial            string `json:"serial"`
	Monitor1          string `json:"monitor1,omitempty"`
	Monitor2          string `json:"monitor2,omitempty"`
	WifiMAC           string `json:"wifi_mac,omitempty"`
	LanMAC            string `json:"lan_mac,omitempty"`
	ResponsibleParty  string `json:"responsible_party,omitempty"`
	EquipmentStatus   string `json:"equipment_status,omitempty"`
	MaintenanceStatus string `json:"maintenance_status,omitempty"`
	MaintenanceType   string `json:"maintenance_type,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// AssetFilters are the dashboard selectors. Empty or "Todas"/"Todos"/"All"
// leave a field unfiltered.
type AssetFilters struct {
	Site     string `json:"site,omitempty" query:"site"`
	Building string `json:"building,omitempty" query:"building"`
	Status   string `json:"status,omitempty" query:"status"`
}

// SubmitRejection is returned with a rejected submission so the form keeps its input.
type SubmitRejection struct {
	Kind  string     `json:"kind"`
	Field string     `json:"field,omitempty"`
	Input AssetInput `json:"input"`
}

// AssetList is the filtered record table.
type AssetList struct {
	Total   int                 `json:"total"`
	Records []model.AssetRecord `json:"records"`
}

// SearchResult distinguishes "not searched yet" from "no results".
type SearchResult struct {
	Searched bool                `json:"searched"`
	Tag      string              `json:"tag,omitempty"`
	Results  []model.AssetRecord `json:"results"`
}

// Bar is one bar of a categorical chart.
type Bar struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary carries the dashboard counters and histograms.
type Summary struct {
	TotalCount            int            `json:"total_count"`
	DistinctSiteCount     int            `json:"distinct_site_count"`
	DistinctBuildingCount int            `json:"distinct_building_count"`
	PoorConditionCount    int            `json:"poor_condition_count"`
	StatusHistogram       map[string]int `json:"status_histogram"`
	SiteHistogram         map[string]int `json:"site_histogram"`
}

// FilterOptions are the values offered by the three dashboard selectors.
type FilterOptions struct {
	Sites     []string `json:"sites"`
	Buildings []string `json:"buildings"`
	Statuses  []string `json:"statuses"`
}

// Dashboard is the read view.
type Dashboard struct {
	Empty        bool                `json:"empty"`
	Filters      AssetFilters        `json:"filters"`
	Options      FilterOptions       `json:"options"`
	Summary      Summary             `json:"summary"`
	StatusSeries []Bar               `json:"status_series"`
	SiteSeries   []Bar               `json:"site_series"`
	Records      []model.AssetRecord `json:"records"`
	LoadedAt     string              `json:"loaded_at,omitempty"`
}

// ExportResult describes an uploaded inventory workbook.
type ExportResult struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
	Rows     int    `json:"rows"`
	URL      string `json:"url"`
}

// VersionInfo is the build identity of the service.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}
