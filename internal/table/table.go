// Package table holds the in-memory tabular store shared by the reader,
// query and output packages.
//
// A Table is an ordered sequence of rows plus the header order. Rows are
// maps from column name to the cell text exactly as it was read; no type
// conversion happens at load time. Operations never mutate a Table or its
// rows, they build new tables that may share Row values with their input.
package table

// Row maps column names to cell text
type Row map[string]string

// Table is an ordered row collection with a fixed column set.
//
// Every row in a Table carries exactly the columns listed in Columns.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates a table from a header and rows
func New(columns []string, rows []Row) *Table {
	if rows == nil {
		rows = make([]Row, 0)
	}
	return &Table{Columns: columns, Rows: rows}
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether name is part of the header
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// WithRows returns a new table with the same header and the given rows
func (t *Table) WithRows(rows []Row) *Table {
	return New(t.Columns, rows)
}

// Head returns a table with at most n rows. A non-positive n keeps all rows.
func (t *Table) Head(n int) *Table {
	if n <= 0 || n >= len(t.Rows) {
		return t
	}
	return t.WithRows(t.Rows[:n])
}

// Records returns the rows as string slices in header order.
//
// Cells missing from a row are rendered as empty strings.
func (t *Table) Records() [][]string {
	records := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		record := make([]string, len(t.Columns))
		for j, col := range t.Columns {
			record[j] = row[col]
		}
		records[i] = record
	}
	return records
}
