package model

import (
	"fmt"
	"strings"
)

// Column binds one AssetRecord field to its header and position in the store.
type Column struct {
	Header string
	Field  string
	get    func(*AssetRecord) string
	set    func(*AssetRecord, string)
}

// Get returns the column value of r.
func (c Column) Get(r *AssetRecord) string { return c.get(r) }

// Columns is the record schema in store order.
var Columns = []Column{
	{"Fecha de registro", "registration_date", func(r *AssetRecord) string { return r.RegistrationDate }, func(r *AssetRecord, v string) { r.RegistrationDate = v }},
	{"Sede", "site", func(r *AssetRecord) string { return r.Site }, func(r *AssetRecord, v string) { r.Site = v }},
	{"Edificio", "building", func(r *AssetRecord) string { return r.Building }, func(r *AssetRecord, v string) { r.Building = v }},
	{"Ubicación", "location", func(r *AssetRecord) string { return r.Location }, func(r *AssetRecord, v string) { r.Location = v }},
	{"Área", "area", func(r *AssetRecord) string { return r.Area }, func(r *AssetRecord, v string) { r.Area = v }},
	{"Tipo de equipo", "equipment_type", func(r *AssetRecord) string { return r.EquipmentType }, func(r *AssetRecord, v string) { r.EquipmentType = v }},
	{"Marca", "brand", func(r *AssetRecord) string { return r.Brand }, func(r *AssetRecord, v string) { r.Brand = v }},
	{"Modelo", "model", func(r *AssetRecord) string { return r.Model }, func(r *AssetRecord, v string) { r.Model = v }},
	{"Código patrimonial", "asset_tag", func(r *AssetRecord) string { return r.AssetTag }, func(r *AssetRecord, v string) { r.AssetTag = v }},
	{"Serie", "serial", func(r *AssetRecord) string { return r.Serial }, func(r *AssetRecord, v string) { r.Serial = v }},
	{"Monitor 1", "monitor1", func(r *AssetRecord) string { return r.Monitor1 }, func(r *AssetRecord, v string) { r.Monitor1 = v }},
	{"Monitor 2", "monitor2", func(r *AssetRecord) string { return r.Monitor2 }, func(r *AssetRecord, v string) { r.Monitor2 = v }},
	{"MAC WiFi", "wifi_mac", func(r *AssetRecord) string { return r.WifiMAC }, func(r *AssetRecord, v string) { r.WifiMAC = v }},
	{"MAC LAN", "lan_mac", func(r *AssetRecord) string { return r.LanMAC }, func(r *AssetRecord, v string) { r.LanMAC = v }},
	{"Responsable", "responsible_party", func(r *AssetRecord) string { return r.ResponsibleParty }, func(r *AssetRecord, v string) { r.ResponsibleParty = v }},
	{"Estado del equipo", "equipment_status", func(r *AssetRecord) string { return r.EquipmentStatus }, func(r *AssetRecord, v string) { r.EquipmentStatus = v }},
	{"Estado de mantenimiento", "maintenance_status", func(r *AssetRecord) string { return r.MaintenanceStatus }, func(r *AssetRecord, v string) { r.MaintenanceStatus = v }},
	{"Tipo de mantenimiento", "maintenance_type", func(r *AssetRecord) string { return r.MaintenanceType }, func(r *AssetRecord, v string) { r.MaintenanceType = v }},
	{"Observaciones", "notes", func(r *AssetRecord) string { return r.Notes }, func(r *AssetRecord, v string) { r.Notes = v }},
}

// Headers returns the header row in schema order.
func Headers() []string {
	headers := make([]string, len(Columns))
	for i, col := range Columns {
		headers[i] = col.Header
	}
	return headers
}

// Row flattens r into a positional row in schema order.
func Row(r AssetRecord) []string {
	row := make([]string, len(Columns))
	for i, col := range Columns {
		row[i] = col.get(&r)
	}
	return row
}

// RecordFromRow maps a row onto a record by header name. Headers outside the
// schema are ignored, missing cells read as empty strings.
func RecordFromRow(header, values []string) AssetRecord {
	var r AssetRecord
	for i, h := range header {
		col, ok := columnByHeader[strings.TrimSpace(h)]
		if !ok || i >= len(values) {
			continue
		}
		col.set(&r, values[i])
	}
	return r
}

// RecordFromPositional maps a row in schema order onto a record.
func RecordFromPositional(values []string) (AssetRecord, error) {
	if len(values) != len(Columns) {
		return AssetRecord{}, fmt.Errorf("%w: got %d values, want %d", ErrRowShape, len(values), len(Columns))
	}
	var r AssetRecord
	for i, col := range Columns {
		col.set(&r, values[i])
	}
	return r, nil
}

var columnByHeader = func() map[string]Column {
	m := make(map[string]Column, len(Columns))
	for _, col := range Columns {
		m[col.Header] = col
	}
	return m
}()
