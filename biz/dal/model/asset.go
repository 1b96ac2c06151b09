package model

import (
	"time"
)

// AssetRecord is one registered technology asset.
type AssetRecord struct {
	ID                uint      `gorm:"primaryKey" json:"-"`
	CreatedAt         time.Time `json:"-"`
	RegistrationDate  string    `gorm:"column:registration_date;type:varchar(10)" json:"registration_date"`
	Site              string    `gorm:"column:site;index:idx_asset_record_site" json:"site"`
	Building          string    `gorm:"column:building;index:idx_asset_record_building" json:"building"`
	Location          string    `gorm:"column:location" json:"location"`
	Area              string    `gorm:"column:area" json:"area"`
	EquipmentType     string    `gorm:"column:equipment_type" json:"equipment_type"`
	Brand             string    `gorm:"column:brand" json:"brand"`
	Model             string    `gorm:"column:model" json:"model"`
	AssetTag          string    `gorm:"column:asset_tag;index:idx_asset_record_tag" json:"asset_tag"`
	Serial            string    `gorm:"column:serial" json:"serial"`
	Monitor1          string    `gorm:"column:monitor1" json:"monitor1"`
	Monitor2          string    `gorm:"column:monitor2" json:"monitor2"`
	WifiMAC           string    `gorm:"column:wifi_mac" json:"wifi_mac"`
	LanMAC            string    `gorm:"column:lan_mac" json:"lan_mac"`
	ResponsibleParty  string    `gorm:"column:responsible_party" json:"responsible_party"`
	EquipmentStatus   string    `gorm:"column:equipment_status;index:idx_asset_record_status" json:"equipment_status"`
	MaintenanceStatus string    `gorm:"column:maintenance_status" json:"maintenance_status"`
	MaintenanceType   string    `gorm:"column:maintenance_type" json:"maintenance_type"`
	Notes             string    `gorm:"column:notes;type:text" json:"notes"`
}

// TableName overrides gorm to use asset_record table.
func (AssetRecord) TableName() string {
	return "asset_record"
}

// RegistrationDateLayout is the stored form of AssetRecord.RegistrationDate.
const RegistrationDateLayout = "2006-01-02"
