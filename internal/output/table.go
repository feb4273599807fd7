package output

import (
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvcat/internal/table"
)

// truncationTail marks a cell that was cut to fit MaxWidth
const truncationTail = "..."

// TableFormatter outputs rows as a bordered grid
type TableFormatter struct {
	writer io.Writer

	// MaxWidth limits the display width of each cell; 0 means unlimited.
	MaxWidth int
}

// NewTableFormatter creates a new grid formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes the table as a grid. A table without columns writes nothing.
func (f *TableFormatter) Format(t *table.Table) error {
	if len(t.Columns) == 0 {
		return nil
	}

	grid := tablewriter.NewWriter(f.writer)
	grid.SetHeader(t.Columns)
	// Keep header case as read; the default upper-cases and rewrites "_"
	grid.SetAutoFormatHeaders(false)
	grid.SetAutoWrapText(false)
	grid.SetRowLine(true)

	for _, record := range t.Records() {
		if f.MaxWidth > 0 {
			for i, cell := range record {
				record[i] = runewidth.Truncate(cell, f.MaxWidth, truncationTail)
			}
		}
		grid.Append(record)
	}

	grid.Render()
	return nil
}
