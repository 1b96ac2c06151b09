// Package sheet stores asset records in one tab of a Google Sheets spreadsheet.
// The first row of the tab is the header row.
package sheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/yi-nology/campus_inventory/biz/dal/model"
	"github.com/yi-nology/campus_inventory/pkg/util"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// Cells are written RAW so identifiers keep leading zeros and text
// starting with "=" is never evaluated as a formula.
const (
	valueInputRaw        = "RAW"
	insertDataInsertRows = "INSERT_ROWS"
)

// Config locates the inventory tab.
type Config struct {
	SpreadsheetID string
	Worksheet     string
}

// RecordStore reads and appends inventory rows through the Sheets API.
type RecordStore struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	worksheet     string
}

// New creates a Sheets client with read/write spreadsheet scope.
func New(ctx context.Context, cfg Config, opts ...option.ClientOption) (*RecordStore, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}
	if cfg.Worksheet == "" {
		cfg.Worksheet = "Inventario"
	}
	opts = append([]option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}, opts...)
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return &RecordStore{
		values:        svc.Spreadsheets.Values,
		spreadsheetID: cfg.SpreadsheetID,
		worksheet:     cfg.Worksheet,
	}, nil
}

// LoadAll reads the whole tab and maps every data row by header name.
// Rows with no content are skipped.
func (s *RecordStore) LoadAll(ctx context.Context) ([]model.AssetRecord, error) {
	resp, err := s.values.Get(s.spreadsheetID, s.tabRange()).
		MajorDimension("ROWS").
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", model.ErrStoreUnavailable, s.worksheet, err)
	}

	records := make([]model.AssetRecord, 0, len(resp.Values))
	if len(resp.Values) == 0 {
		return records, nil
	}
	header := cells(resp.Values[0])
	for _, raw := range resp.Values[1:] {
		row := cells(raw)
		if util.IsBlankRow(row) {
			continue
		}
		records = append(records, model.RecordFromRow(header, row))
	}
	return records, nil
}

// Append adds one row in column schema order after the last row of the tab.
func (s *RecordStore) Append(ctx context.Context, row []string) error {
	if len(row) != len(model.Columns) {
		return fmt.Errorf("%w: got %d values, want %d", model.ErrRowShape, len(row), len(model.Columns))
	}
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	_, err := s.values.Append(s.spreadsheetID, s.tabRange(), &sheets.ValueRange{
		MajorDimension: "ROWS",
		Values:         [][]interface{}{values},
	}).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertDataInsertRows).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: append to %s: %v", model.ErrStoreUnavailable, s.worksheet, err)
	}
	return nil
}

// tabRange is the A1 range covering the whole worksheet.
func (s *RecordStore) tabRange() string {
	return "'" + strings.ReplaceAll(s.worksheet, "'", "''") + "'"
}

func cells(raw []interface{}) []string {
	out := make([]string, len(raw))
	for i, v := range raw {
		out[i] = util.CellString(v)
	}
	return out
}
