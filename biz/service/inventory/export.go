package inventory

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/yi-nology/campus_inventory/biz/dal/model"
	"github.com/yi-nology/campus_inventory/biz/model/api"
	"github.com/yi-nology/campus_inventory/pkg/validator"

	"github.com/xuri/excelize/v2"
)

const (
	exportPrefix = "exports"
	exportSheet  = "Inventario"
)

// ErrExportDisabled is returned by Export when no object storage is configured.
var ErrExportDisabled = errors.New("export storage not configured")

// Export writes the records matching f to an xlsx workbook in object storage.
func (s *Service) Export(ctx context.Context, f api.AssetFilters) (*api.ExportResult, error) {
	if s.storage == nil {
		return nil, ErrExportDisabled
	}
	all, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	records := Query(all, f)

	data, err := BuildWorkbook(records)
	if err != nil {
		return nil, err
	}

	fileID := uuid.NewString()
	fileName := fmt.Sprintf("inventario-%s.xlsx", s.now().Format("20060102"))
	key := ExportKey(fileID, fileName)
	if err := s.storage.PutObject(ctx, key, bytes.NewReader(data), validator.ContentTypeXLSX, int64(len(data))); err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	url, err := s.storage.GenerateURL(ctx, key, fileName)
	if err != nil {
		if delErr := s.storage.DeleteObject(ctx, key); delErr != nil {
			hlog.CtxWarnf(ctx, "cleanup export %s failed: %v", key, delErr)
		}
		return nil, fmt.Errorf("export url: %w", err)
	}

	hlog.CtxInfof(ctx, "inventory exported: file=%s rows=%d", key, len(records))
	return &api.ExportResult{FileID: fileID, FileName: fileName, Rows: len(records), URL: url}, nil
}

// ExportKey is the object key of an export file.
func ExportKey(fileID, fileName string) string {
	return path.Join(exportPrefix, fileID, fileName)
}

// BuildWorkbook renders records as an xlsx file with the schema header row.
func BuildWorkbook(records []model.AssetRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	header := model.Headers()
	if err := setRow(f, 1, header); err != nil {
		return nil, err
	}
	for i, r := range records {
		if err := setRow(f, i+2, model.Row(r)); err != nil {
			return nil, err
		}
	}
	if err := f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cellName, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(exportSheet, cellName, &row); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}
