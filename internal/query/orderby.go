package query

import (
	"slices"

	"github.com/vegasq/csvcat/internal/table"
)

// ApplySort returns a new table ordered by the sort expression.
//
// The sort is stable in both directions: rows with equal keys keep their
// input order.
func ApplySort(t *table.Table, expr string) (*table.Table, error) {
	dir, err := ParseSort(expr)
	if err != nil {
		return nil, err
	}
	return SortRows(t, dir, expr)
}

// SortRows applies an already parsed sort directive
func SortRows(t *table.Table, dir SortDirective, expr string) (*table.Table, error) {
	if !t.HasColumn(dir.Column) {
		return nil, columnNotFound("sort", expr, dir.Column)
	}

	// Coerce each key once instead of on every comparison
	type keyed struct {
		key Value
		row table.Row
	}
	items := make([]keyed, len(t.Rows))
	for i, row := range t.Rows {
		cell, exists := row[dir.Column]
		if !exists {
			return nil, columnNotFound("sort", expr, dir.Column)
		}
		items[i] = keyed{key: Coerce(cell), row: row}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		c := Compare(a.key, b.key)
		if dir.Direction == Descending {
			return -c
		}
		return c
	})

	sorted := make([]table.Row, len(items))
	for i, item := range items {
		sorted[i] = item.row
	}

	return t.WithRows(sorted), nil
}
