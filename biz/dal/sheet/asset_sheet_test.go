package sheet

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/yi-nology/campus_inventory/biz/dal/model"

	"google.golang.org/api/option"
)

// fakeSheet serves the values endpoints of one spreadsheet tab.
type fakeSheet struct {
	mu       sync.Mutex
	rows     [][]interface{}
	appended [][]interface{}
	query    map[string]string
	fail     bool
}

func (f *fakeSheet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	if f.fail || !strings.Contains(r.URL.Path, "/spreadsheets/sheet-1/") {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"code":404,"message":"Requested entity was not found."}}`)
		return
	}
	if r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":append") {
		var body struct {
			Values [][]interface{} `json:"values"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if r.URL.Query().Get("valueInputOption") == "USER_ENTERED" {
			body.Values = parseAsTyped(body.Values)
		}
		f.appended = append(f.appended, body.Values...)
		f.rows = append(f.rows, body.Values...)
		f.query = map[string]string{
			"valueInputOption": r.URL.Query().Get("valueInputOption"),
			"insertDataOption": r.URL.Query().Get("insertDataOption"),
		}
		_, _ = io.WriteString(w, `{"spreadsheetId":"sheet-1"}`)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"range":          "Inventario!A1:S100",
		"majorDimension": "ROWS",
		"values":         f.rows,
	})
}

// parseAsTyped mimics how Sheets interprets USER_ENTERED input: numeric
// text loses its leading zeros and formulas are replaced by their result.
func parseAsTyped(rows [][]interface{}) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		out[i] = make([]interface{}, len(row))
		for j, cell := range row {
			text, _ := cell.(string)
			switch {
			case strings.HasPrefix(text, "="):
				out[i][j] = "#ERROR!"
			default:
				if n, err := strconv.ParseFloat(text, 64); err == nil {
					out[i][j] = strconv.FormatFloat(n, 'f', -1, 64)
				} else {
					out[i][j] = cell
				}
			}
		}
	}
	return out
}

func newTestStore(t *testing.T, fake *fakeSheet, spreadsheetID string) *RecordStore {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	st, err := New(context.Background(), Config{SpreadsheetID: spreadsheetID, Worksheet: "Inventario"},
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return st
}

func headerRow() []interface{} {
	out := make([]interface{}, 0, len(model.Columns))
	for _, h := range model.Headers() {
		out = append(out, h)
	}
	return out
}

func TestLoadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("MapsRowsByHeader", func(t *testing.T) {
		fake := &fakeSheet{rows: [][]interface{}{
			{"Sede", "Código patrimonial", "Serie", "Estado del equipo"},
			{"CENTRO", "PAT-1", "SN-1", "Bueno"},
			{},
			{"NORTE", float64(1002), "SN-2"},
		}}
		records, err := newTestStore(t, fake, "sheet-1").LoadAll(ctx)
		if err != nil {
			t.Fatalf("LoadAll returned error: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[0].Site != "CENTRO" || records[0].AssetTag != "PAT-1" || records[0].EquipmentStatus != "Bueno" {
			t.Errorf("unexpected first record %+v", records[0])
		}
		if records[1].AssetTag != "1002" || records[1].EquipmentStatus != "" {
			t.Errorf("unexpected second record %+v", records[1])
		}
	})

	t.Run("EmptyTab", func(t *testing.T) {
		records, err := newTestStore(t, &fakeSheet{}, "sheet-1").LoadAll(ctx)
		if err != nil {
			t.Fatalf("LoadAll returned error: %v", err)
		}
		if records == nil || len(records) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", records)
		}
	})

	t.Run("MissingSpreadsheet", func(t *testing.T) {
		_, err := newTestStore(t, &fakeSheet{}, "other").LoadAll(ctx)
		if !errors.Is(err, model.ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestAppend(t *testing.T) {
	ctx := context.Background()

	t.Run("AppendsRawRow", func(t *testing.T) {
		fake := &fakeSheet{rows: [][]interface{}{headerRow()}}
		st := newTestStore(t, fake, "sheet-1")
		record := model.AssetRecord{RegistrationDate: "2024-03-01", Site: "GSB", Building: "GSB", AssetTag: "PAT-7", Serial: "SN-7"}

		if err := st.Append(ctx, model.Row(record)); err != nil {
			t.Fatalf("Append returned error: %v", err)
		}
		if len(fake.appended) != 1 || len(fake.appended[0]) != len(model.Columns) {
			t.Fatalf("unexpected appended payload %v", fake.appended)
		}
		if fake.query["valueInputOption"] != "RAW" || fake.query["insertDataOption"] != "INSERT_ROWS" {
			t.Fatalf("unexpected append options %v", fake.query)
		}

		records, err := st.LoadAll(ctx)
		if err != nil {
			t.Fatalf("LoadAll returned error: %v", err)
		}
		if len(records) != 1 || records[0] != record {
			t.Fatalf("expected appended record back, got %+v", records)
		}
	})

	t.Run("ValuesAreStoredVerbatim", func(t *testing.T) {
		fake := &fakeSheet{rows: [][]interface{}{headerRow()}}
		st := newTestStore(t, fake, "sheet-1")
		record := model.AssetRecord{
			RegistrationDate: "2024-03-01",
			Site:             "CENTRO",
			Building:         "DAVILA",
			AssetTag:         "0045821",
			Serial:           "000123",
			Notes:            "=HYPERLINK(\"http://x\")",
		}

		if err := st.Append(ctx, model.Row(record)); err != nil {
			t.Fatalf("Append returned error: %v", err)
		}
		records, err := st.LoadAll(ctx)
		if err != nil {
			t.Fatalf("LoadAll returned error: %v", err)
		}
		if len(records) != 1 || records[0] != record {
			t.Fatalf("expected record to round-trip unchanged, got %+v", records)
		}
	})

	t.Run("RowShape", func(t *testing.T) {
		st := newTestStore(t, &fakeSheet{}, "sheet-1")
		if err := st.Append(ctx, []string{"x"}); !errors.Is(err, model.ErrRowShape) {
			t.Fatalf("expected ErrRowShape, got %v", err)
		}
	})

	t.Run("BackendFailure", func(t *testing.T) {
		st := newTestStore(t, &fakeSheet{fail: true}, "sheet-1")
		err := st.Append(ctx, model.Row(model.AssetRecord{AssetTag: "PAT-1", Serial: "SN-1"}))
		if !errors.Is(err, model.ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestNewRequiresSpreadsheet(t *testing.T) {
	if _, err := New(context.Background(), Config{}); err == nil {
		t.Fatal("expected error without spreadsheet id")
	}
}
