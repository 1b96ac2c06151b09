package reference

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"

	"github.com/yi-nology/campus_inventory/pkg/storage/local"

	"github.com/xuri/excelize/v2"
)

type countingSource struct {
	calls int
	fail  error
	table *Table
}

func (s *countingSource) Load(context.Context) (*Table, error) {
	s.calls++
	if s.fail != nil {
		return nil, s.fail
	}
	return s.table, nil
}

func (s *countingSource) Name() string { return "counting" }

func TestStaticProvider(t *testing.T) {
	ctx := context.Background()
	p := NewProvider(NewStaticSource(nil))

	sites, err := p.ListSites(ctx)
	if err != nil {
		t.Fatalf("ListSites returned error: %v", err)
	}
	if !reflect.DeepEqual(sites, []string{"CENTRO", "GSB", "NORTE"}) {
		t.Fatalf("unexpected sites %v", sites)
	}

	t.Run("KnownSite", func(t *testing.T) {
		buildings, err := p.ListBuildings(ctx, "GSB")
		if err != nil {
			t.Fatalf("ListBuildings returned error: %v", err)
		}
		if !reflect.DeepEqual(buildings, []string{"GSB"}) {
			t.Fatalf("expected [GSB], got %v", buildings)
		}
	})

	t.Run("UnknownSite", func(t *testing.T) {
		buildings, err := p.ListBuildings(ctx, "UNKNOWN")
		if err != nil {
			t.Fatalf("ListBuildings returned error: %v", err)
		}
		if buildings == nil || len(buildings) != 0 {
			t.Fatalf("expected empty slice, got %#v", buildings)
		}
	})

	t.Run("BuildingsSorted", func(t *testing.T) {
		buildings, _ := p.ListBuildings(ctx, "CENTRO")
		want := []string{"AULARIO", "BIBLIOTECA CENTRAL", "DAVILA", "RECTORADO"}
		if !reflect.DeepEqual(buildings, want) {
			t.Fatalf("expected %v, got %v", want, buildings)
		}
	})

	t.Run("CallerCannotMutateTable", func(t *testing.T) {
		sites, _ := p.ListSites(ctx)
		sites[0] = "MUTATED"
		again, _ := p.ListSites(ctx)
		if again[0] != "CENTRO" {
			t.Fatalf("table was mutated through returned slice: %v", again)
		}
	})
}

func TestProviderCachesUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	src := &countingSource{table: NewTable(map[string][]string{"NORTE": {"FCI"}})}
	p := NewProvider(src)

	for i := 0; i < 3; i++ {
		if _, err := p.ListSites(ctx); err != nil {
			t.Fatalf("ListSites returned error: %v", err)
		}
	}
	if src.calls != 1 {
		t.Fatalf("expected one load, got %d", src.calls)
	}

	p.Invalidate()
	if _, err := p.ListBuildings(ctx, "NORTE"); err != nil {
		t.Fatalf("ListBuildings returned error: %v", err)
	}
	if src.calls != 2 {
		t.Fatalf("expected reload after Invalidate, got %d loads", src.calls)
	}
}

func TestProviderDoesNotCacheFailures(t *testing.T) {
	ctx := context.Background()
	src := &countingSource{fail: errors.New("connection refused")}
	p := NewProvider(src)

	_, err := p.ListSites(ctx)
	if !errors.Is(err, ErrReferenceDataUnavailable) {
		t.Fatalf("expected ErrReferenceDataUnavailable, got %v", err)
	}

	src.fail = nil
	src.table = NewTable(map[string][]string{"GSB": {"GSB"}})
	sites, err := p.ListSites(ctx)
	if err != nil {
		t.Fatalf("ListSites returned error after recovery: %v", err)
	}
	if !reflect.DeepEqual(sites, []string{"GSB"}) {
		t.Fatalf("unexpected sites %v", sites)
	}
}

func TestParseRows(t *testing.T) {
	t.Run("DiscardsIncompleteRows", func(t *testing.T) {
		rows := [][]string{
			{"Edificio", "Sede", "Notas"},
			{"FCI", "NORTE"},
			{" DAVILA ", "CENTRO", "x"},
			{"", "CENTRO"},
			{"AULARIO"},
			{"FCI", "NORTE"},
		}
		table, err := ParseRows(rows, "Sede", "Edificio")
		if err != nil {
			t.Fatalf("ParseRows returned error: %v", err)
		}
		if !reflect.DeepEqual(table.Sites(), []string{"CENTRO", "NORTE"}) {
			t.Fatalf("unexpected sites %v", table.Sites())
		}
		if !reflect.DeepEqual(table.Buildings("CENTRO"), []string{"DAVILA"}) {
			t.Fatalf("unexpected CENTRO buildings %v", table.Buildings("CENTRO"))
		}
		if !reflect.DeepEqual(table.Buildings("NORTE"), []string{"FCI"}) {
			t.Fatalf("unexpected NORTE buildings %v", table.Buildings("NORTE"))
		}
	})

	t.Run("MissingColumn", func(t *testing.T) {
		_, err := ParseRows([][]string{{"Sede", "Piso"}}, "Sede", "Edificio")
		if !errors.Is(err, ErrReferenceDataUnavailable) {
			t.Fatalf("expected ErrReferenceDataUnavailable, got %v", err)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseRows(nil, "Sede", "Edificio")
		if !errors.Is(err, ErrReferenceDataUnavailable) {
			t.Fatalf("expected ErrReferenceDataUnavailable, got %v", err)
		}
	})
}

func TestWorkbookSource(t *testing.T) {
	ctx := context.Background()
	st, err := local.New(t.TempDir())
	if err != nil {
		t.Fatalf("local.New returned error: %v", err)
	}

	t.Run("XLSX", func(t *testing.T) {
		f := excelize.NewFile()
		defer f.Close()
		if err := f.SetSheetName("Sheet1", "Sedes"); err != nil {
			t.Fatalf("SetSheetName: %v", err)
		}
		rows := [][]interface{}{
			{"Sede", "Edificio"},
			{"NORTE", "FCI"},
			{"GSB", "GSB"},
			{"CENTRO", ""},
		}
		for i, row := range rows {
			cellName, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow("Sedes", cellName, &row); err != nil {
				t.Fatalf("SetSheetRow: %v", err)
			}
		}
		buf, err := f.WriteToBuffer()
		if err != nil {
			t.Fatalf("WriteToBuffer: %v", err)
		}
		if err := st.PutObject(ctx, "reference/sedes.xlsx", bytes.NewReader(buf.Bytes()), "", int64(buf.Len())); err != nil {
			t.Fatalf("PutObject: %v", err)
		}

		src, err := NewWorkbookSource(st, WorkbookConfig{Key: "reference/sedes.xlsx"})
		if err != nil {
			t.Fatalf("NewWorkbookSource returned error: %v", err)
		}
		p := NewProvider(src)
		sites, err := p.ListSites(ctx)
		if err != nil {
			t.Fatalf("ListSites returned error: %v", err)
		}
		if !reflect.DeepEqual(sites, []string{"GSB", "NORTE"}) {
			t.Fatalf("unexpected sites %v", sites)
		}
	})

	t.Run("CSV", func(t *testing.T) {
		content := "\xef\xbb\xbfSede,Edificio\nCENTRO,DAVILA\nCENTRO,AULARIO\n"
		if err := st.PutObject(ctx, "reference/sedes.csv", strings.NewReader(content), "text/csv", int64(len(content))); err != nil {
			t.Fatalf("PutObject: %v", err)
		}
		src, err := NewWorkbookSource(st, WorkbookConfig{Key: "reference/sedes.csv"})
		if err != nil {
			t.Fatalf("NewWorkbookSource returned error: %v", err)
		}
		buildings, err := NewProvider(src).ListBuildings(ctx, "CENTRO")
		if err != nil {
			t.Fatalf("ListBuildings returned error: %v", err)
		}
		if !reflect.DeepEqual(buildings, []string{"AULARIO", "DAVILA"}) {
			t.Fatalf("unexpected buildings %v", buildings)
		}
	})

	t.Run("MissingObject", func(t *testing.T) {
		src, err := NewWorkbookSource(st, WorkbookConfig{Key: "reference/missing.csv"})
		if err != nil {
			t.Fatalf("NewWorkbookSource returned error: %v", err)
		}
		_, err = NewProvider(src).ListSites(ctx)
		if !errors.Is(err, ErrReferenceDataUnavailable) || !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("expected ErrReferenceDataUnavailable wrapping fs.ErrNotExist, got %v", err)
		}
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		if _, err := NewWorkbookSource(st, WorkbookConfig{Key: "reference/sedes.ods"}); err == nil {
			t.Fatal("expected error for ods workbook")
		}
	})
}
