package reference

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/yi-nology/campus_inventory/pkg/storage"
	"github.com/yi-nology/campus_inventory/pkg/validator"

	"github.com/xuri/excelize/v2"
)

// WorkbookConfig locates the reference workbook and its columns.
type WorkbookConfig struct {
	Key            string
	Format         string
	Sheet          string
	SiteColumn     string
	BuildingColumn string
}

// WorkbookSource reads the table from an xlsx or csv file in object storage.
// The file is fetched whole on every Load; Provider caches the result.
type WorkbookSource struct {
	storage storage.Storage
	cfg     WorkbookConfig
}

func NewWorkbookSource(st storage.Storage, cfg WorkbookConfig) (*WorkbookSource, error) {
	format, err := validator.ResolveWorkbookFormat(cfg.Key, cfg.Format)
	if err != nil {
		return nil, err
	}
	cfg.Format = format
	if cfg.SiteColumn == "" {
		cfg.SiteColumn = "Sede"
	}
	if cfg.BuildingColumn == "" {
		cfg.BuildingColumn = "Edificio"
	}
	return &WorkbookSource{storage: st, cfg: cfg}, nil
}

func (s *WorkbookSource) Name() string {
	return fmt.Sprintf("workbook(%s:%s)", s.storage.Type(), s.cfg.Key)
}

func (s *WorkbookSource) Load(ctx context.Context) (*Table, error) {
	rc, err := s.storage.GetObject(ctx, s.cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReferenceDataUnavailable, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read workbook: %w", ErrReferenceDataUnavailable, err)
	}

	var rows [][]string
	if s.cfg.Format == validator.WorkbookCSV {
		rows, err = readCSV(data)
	} else {
		rows, err = readXLSX(data, s.cfg.Sheet)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReferenceDataUnavailable, err)
	}
	return ParseRows(rows, s.cfg.SiteColumn, s.cfg.BuildingColumn)
}

// ParseRows builds a table from a header row followed by data rows.
func ParseRows(rows [][]string, siteColumn, buildingColumn string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: workbook is empty", ErrReferenceDataUnavailable)
	}
	siteIdx, buildingIdx := -1, -1
	for i, h := range rows[0] {
		switch {
		case strings.EqualFold(strings.TrimSpace(h), siteColumn):
			siteIdx = i
		case strings.EqualFold(strings.TrimSpace(h), buildingColumn):
			buildingIdx = i
		}
	}
	if siteIdx < 0 || buildingIdx < 0 {
		return nil, fmt.Errorf("%w: header must contain %q and %q", ErrReferenceDataUnavailable, siteColumn, buildingColumn)
	}

	pairs := make([][2]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		pairs = append(pairs, [2]string{cell(row, siteIdx), cell(row, buildingIdx)})
	}
	return tableFromPairs(pairs), nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func readXLSX(data []byte, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("xlsx has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}
