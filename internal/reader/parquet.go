package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/segmentio/parquet-go"

	"github.com/vegasq/csvcat/internal/table"
)

// rowBatchSize is the number of parquet rows decoded per ReadRows call
const rowBatchSize = 128

// ParquetReader reads a parquet file into a table.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewParquetReader opens and validates a parquet file.
//
// Example:
//
//	r, err := NewParquetReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &ParquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// Columns returns the leaf column names in schema order. Nested fields are
// joined with dots.
func (r *ParquetReader) Columns() []string {
	paths := r.pqFile.Schema().Columns()
	columns := make([]string, len(paths))
	for i, path := range paths {
		columns[i] = strings.Join(path, ".")
	}
	return columns
}

// ReadAll reads every row into memory.
//
// Null values become empty cells; repeated values are joined with commas.
func (r *ParquetReader) ReadAll() (*table.Table, error) {
	columns := r.Columns()
	rows := make([]table.Row, 0, r.pqFile.NumRows())

	pr := parquet.NewReader(r.pqFile)
	defer func() { _ = pr.Close() }()

	buf := make([]parquet.Row, rowBatchSize)
	for {
		n, err := pr.ReadRows(buf)
		for _, values := range buf[:n] {
			rows = append(rows, convertRow(columns, values))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return table.New(columns, rows), nil
}

// Close releases the file handle. It is safe to call Close multiple times.
func (r *ParquetReader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ReadParquet reads a whole parquet file
func ReadParquet(path string) (*table.Table, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.ReadAll()
}

// convertRow turns one parquet row into a text row
func convertRow(columns []string, values parquet.Row) table.Row {
	row := make(table.Row, len(columns))
	for _, col := range columns {
		row[col] = ""
	}

	// Elements seen per column; an empty first element still needs a separator
	seen := make([]int, len(columns))
	for _, v := range values {
		idx := v.Column()
		if idx < 0 || idx >= len(columns) || v.IsNull() {
			continue
		}
		col := columns[idx]
		if seen[idx] > 0 {
			row[col] += "," + formatValue(v)
		} else {
			row[col] = formatValue(v)
		}
		seen[idx]++
	}

	return row
}

// formatValue converts a parquet value to cell text
func formatValue(v parquet.Value) string {
	switch v.Kind() {
	case parquet.Boolean:
		return strconv.FormatBool(v.Boolean())
	case parquet.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Float:
		return strconv.FormatFloat(float64(v.Float()), 'g', -1, 32)
	case parquet.Double:
		return strconv.FormatFloat(v.Double(), 'g', -1, 64)
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return fmt.Sprintf("%v", v)
	}
}
