package output

import (
	"bufio"
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/csvcat/internal/table"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row. Keys follow the header order,
// values are strings as read.
func (j *JSONFormatter) Format(t *table.Table) error {
	// Column names are encoded once and reused for every row
	keys := make([][]byte, len(t.Columns))
	for i, col := range t.Columns {
		key, err := json.Marshal(col)
		if err != nil {
			return err
		}
		keys[i] = key
	}

	bw := bufio.NewWriter(j.writer)
	for _, record := range t.Records() {
		bw.WriteByte('{')
		for i, cell := range record {
			if i > 0 {
				bw.WriteByte(',')
			}
			value, err := json.Marshal(cell)
			if err != nil {
				return err
			}
			bw.Write(keys[i])
			bw.WriteByte(':')
			bw.Write(value)
		}
		bw.WriteString("}\n")
	}

	return bw.Flush()
}
