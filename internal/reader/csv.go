package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/csvcat/internal/table"
)

// ErrDuplicateColumn is returned when a header names the same column twice
var ErrDuplicateColumn = errors.New("duplicate column in header")

const utf8BOM = "\ufeff"

// ReadCSV reads delimited text with a header row.
//
// A zero delimiter means ','. Rows with a different field count than the
// header are rejected by the CSV reader. An empty input yields a table with
// no columns and no rows.
func ReadCSV(r io.Reader, delimiter rune) (*table.Table, error) {
	csvReader := csv.NewReader(r)
	if delimiter != 0 {
		csvReader.Comma = delimiter
	}

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return table.New(nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	seen := make(map[string]bool, len(header))
	for _, col := range header {
		if seen[col] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col)
		}
		seen[col] = true
	}

	rows := make([]table.Row, 0)
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(table.Row, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}

	return table.New(header, rows), nil
}
