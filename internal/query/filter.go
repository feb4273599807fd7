package query

import (
	"github.com/vegasq/csvcat/internal/table"
)

// Evaluate reports whether row satisfies the predicate.
//
// A row without the predicate's column is an error, not a mismatch.
func (p Predicate) Evaluate(row table.Row) (bool, error) {
	cell, exists := row[p.Column]
	if !exists {
		return false, ErrColumnNotFound
	}
	return Matches(Coerce(cell), p.Operator, Coerce(p.Literal)), nil
}

// ApplyFilter keeps the rows matching the filter expression, in their
// original order.
func ApplyFilter(t *table.Table, expr string) (*table.Table, error) {
	pred, err := ParseFilter(expr)
	if err != nil {
		return nil, err
	}
	return FilterRows(t, pred, expr)
}

// FilterRows applies an already parsed predicate. expr is only used in
// error messages.
func FilterRows(t *table.Table, pred Predicate, expr string) (*table.Table, error) {
	if !t.HasColumn(pred.Column) {
		return nil, columnNotFound("filter", expr, pred.Column)
	}

	filtered := make([]table.Row, 0)
	for _, row := range t.Rows {
		match, err := pred.Evaluate(row)
		if err != nil {
			return nil, columnNotFound("filter", expr, pred.Column)
		}
		if match {
			filtered = append(filtered, row)
		}
	}

	return t.WithRows(filtered), nil
}
