// Package output renders a table.Table for display.
//
// Supported formats:
//   - table: a bordered grid with a line between rows (default)
//   - csv: comma-separated values with header row
//   - json, jsonl: one JSON object per row, keys in header order
//
// Example usage:
//
//	formatter, err := output.NewFormatter("table", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(tbl); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"fmt"
	"io"

	"github.com/vegasq/csvcat/internal/table"
)

// Formats lists the names accepted by NewFormatter
var Formats = []string{"table", "csv", "json", "jsonl"}

// Formatter defines the interface for output formatters.
//
// Implementers must render every column of the table in header order and
// every row in table order.
type Formatter interface {
	// Format writes the table in the formatter's specific format
	Format(t *table.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// NewFormatter returns the formatter registered under name
func NewFormatter(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "", "table":
		return NewTableFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", name)
	}
}
