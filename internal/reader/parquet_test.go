package reader

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"

	"github.com/segmentio/parquet-go"

	"github.com/vegasq/csvcat/internal/table"
)

// PhoneRow defines the parquet test data structure
type PhoneRow struct {
	Name   string  `parquet:"name"`
	Brand  string  `parquet:"brand"`
	Price  int64   `parquet:"price"`
	Rating float64 `parquet:"rating"`
	Stock  *int32  `parquet:"stock,optional"`
	Active bool    `parquet:"active"`
}

// createTestParquetFile creates a temporary parquet file with test data
func createTestParquetFile(t *testing.T, dir, filename string, rows []PhoneRow) string {
	t.Helper()
	testFile := filepath.Join(dir, filename)

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	defer func() { _ = f.Close() }()

	writer := parquet.NewGenericWriter[PhoneRow](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	return testFile
}

func int32Ptr(v int32) *int32 { return &v }

func TestReadParquet(t *testing.T) {
	path := createTestParquetFile(t, t.TempDir(), "phones.parquet", []PhoneRow{
		{Name: "iphone 15 pro", Brand: "apple", Price: 999, Rating: 4.9, Stock: int32Ptr(12), Active: true},
		{Name: "redmi note 12", Brand: "xiaomi", Price: 199, Rating: 4.6, Stock: nil, Active: false},
	})

	tbl, err := ReadFile(path, Options{})
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	// Compare as sets: column order follows the file schema
	gotCols := slices.Sorted(slices.Values(tbl.Columns))
	wantCols := []string{"active", "brand", "name", "price", "rating", "stock"}
	if !reflect.DeepEqual(gotCols, wantCols) {
		t.Errorf("Columns = %v, want %v", tbl.Columns, wantCols)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}

	tests := []struct {
		row  int
		col  string
		want string
	}{
		{0, "name", "iphone 15 pro"},
		{0, "price", "999"},
		{0, "rating", "4.9"},
		{0, "stock", "12"},
		{0, "active", "true"},
		{1, "brand", "xiaomi"},
		{1, "stock", ""},
		{1, "active", "false"},
	}

	for _, tt := range tests {
		if got := tbl.Rows[tt.row][tt.col]; got != tt.want {
			t.Errorf("Rows[%d][%s] = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestReadParquet_Empty(t *testing.T) {
	path := createTestParquetFile(t, t.TempDir(), "empty.parquet", []PhoneRow{})

	tbl, err := ReadParquet(path)
	if err != nil {
		t.Fatalf("ReadParquet() error = %v", err)
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tbl.Len())
	}
	if len(tbl.Columns) != 6 {
		t.Errorf("Columns = %v, want the schema columns", tbl.Columns)
	}
}

func TestReadParquet_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.parquet")
	if err := os.WriteFile(path, []byte("this is not parquet"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadParquet(path); err == nil {
		t.Error("ReadParquet() expected error for invalid file")
	}
}

func TestParquetReader_CloseTwice(t *testing.T) {
	path := createTestParquetFile(t, t.TempDir(), "phones.parquet", []PhoneRow{{Name: "a"}})

	r, err := NewParquetReader(path)
	if err != nil {
		t.Fatalf("NewParquetReader() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestConvertRow_Repeated(t *testing.T) {
	columns := []string{"tags", "name"}

	tests := []struct {
		name   string
		values parquet.Row
		want   table.Row
	}{
		{
			name: "empty first element keeps separator",
			values: parquet.Row{
				parquet.ValueOf("").Level(0, 1, 0),
				parquet.ValueOf("a").Level(1, 1, 0),
				parquet.ValueOf("x").Level(0, 0, 1),
			},
			want: table.Row{"tags": ",a", "name": "x"},
		},
		{
			name: "empty last element",
			values: parquet.Row{
				parquet.ValueOf("a").Level(0, 1, 0),
				parquet.ValueOf("").Level(1, 1, 0),
				parquet.ValueOf("x").Level(0, 0, 1),
			},
			want: table.Row{"tags": "a,", "name": "x"},
		},
		{
			name: "null column",
			values: parquet.Row{
				parquet.ValueOf(nil).Level(0, 0, 0),
				parquet.ValueOf("x").Level(0, 0, 1),
			},
			want: table.Row{"tags": "", "name": "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertRow(columns, tt.values); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("convertRow() = %v, want %v", got, tt.want)
			}
		})
	}
}
