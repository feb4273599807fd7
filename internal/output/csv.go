package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/csvcat/internal/table"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header and rows as CSV, columns in header order
func (c *CSVFormatter) Format(t *table.Table) error {
	csvWriter := csv.NewWriter(c.writer)

	if len(t.Columns) > 0 {
		if err := csvWriter.Write(t.Columns); err != nil {
			return err
		}

		for _, record := range t.Records() {
			for i, cell := range record {
				record[i] = sanitizeCell(cell)
			}
			if err := csvWriter.Write(record); err != nil {
				return err
			}
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// sanitizeCell guards against CSV injection by prefixing characters that
// could trigger formula execution in spreadsheet applications. Numbers with
// a leading sign are left alone.
func sanitizeCell(val string) string {
	if val == "" {
		return val
	}

	switch val[0] {
	case '=', '@', '\t', '\r', '\n', '|':
	case '+', '-':
		if isSignedNumber(val) {
			return val
		}
	default:
		return val
	}

	// Escape existing single quotes and prefix with quote
	return "'" + strings.ReplaceAll(val, "'", "''")
}

// isSignedNumber reports whether s is a plain signed decimal like -12.5
func isSignedNumber(s string) bool {
	digits := 0
	dot := false
	for i, r := range s {
		switch {
		case i == 0 && (r == '+' || r == '-'):
		case r >= '0' && r <= '9':
			digits++
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}
