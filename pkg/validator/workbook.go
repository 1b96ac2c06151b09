package validator

import (
	"errors"
	"path"
	"strings"
)

// Workbook formats accepted as reference data.
const (
	WorkbookXLSX = ".xlsx"
	WorkbookCSV  = ".csv"
)

// ContentTypeXLSX is the MIME type of exported workbooks.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WorkbookFormat returns the normalized extension of an object key, or an
// error when the extension is not a supported workbook format.
func WorkbookFormat(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("workbook key is empty")
	}
	ext := strings.ToLower(path.Ext(trimmed))
	switch ext {
	case WorkbookXLSX, WorkbookCSV:
		return ext, nil
	case "":
		return "", errors.New("workbook key has no extension")
	default:
		return "", errors.New("unsupported workbook format " + ext)
	}
}

// ResolveWorkbookFormat honours an explicit format ("xlsx", "csv") before
// falling back to the key extension.
func ResolveWorkbookFormat(key, format string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		return WorkbookFormat(key)
	}
	if !strings.HasPrefix(f, ".") {
		f = "." + f
	}
	switch f {
	case WorkbookXLSX, WorkbookCSV:
		return f, nil
	default:
		return "", errors.New("unsupported workbook format " + format)
	}
}
