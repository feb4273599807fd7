package query

import (
	"fmt"

	"github.com/vegasq/csvcat/internal/table"
)

// ApplyAggregation reduces one column of the table to a single number.
//
// Unlike filtering and sorting, every cell must parse as a number; there is
// no text fallback. On an empty table count is 0 and every other function
// fails with ErrEmptyAggregation.
func ApplyAggregation(t *table.Table, expr string) (AggregateResult, error) {
	dir, err := ParseAggregation(expr)
	if err != nil {
		return AggregateResult{}, err
	}
	return AggregateRows(t, dir, expr)
}

// AggregateRows applies an already parsed aggregation directive
func AggregateRows(t *table.Table, dir AggregateDirective, expr string) (AggregateResult, error) {
	if !t.HasColumn(dir.Column) {
		return AggregateResult{}, columnNotFound("aggregation", expr, dir.Column)
	}

	values := make([]float64, 0, len(t.Rows))
	for i, row := range t.Rows {
		cell, exists := row[dir.Column]
		if !exists {
			return AggregateResult{}, columnNotFound("aggregation", expr, dir.Column)
		}
		num, ok := parseNumber(cell)
		if !ok {
			return AggregateResult{}, fmt.Errorf("%w: column %q contains non-numeric value %q (row %d)",
				ErrNonNumericColumn, dir.Column, cell, i+1)
		}
		values = append(values, num)
	}

	value, err := evaluateAggregate(dir.Op, values)
	if err != nil {
		return AggregateResult{}, fmt.Errorf("%s(%s): %w", dir.Op, dir.Column, err)
	}

	return AggregateResult{Op: dir.Op, Value: value}, nil
}

// evaluateAggregate computes op over values
func evaluateAggregate(op AggregateOp, values []float64) (float64, error) {
	if op == AggCount {
		return float64(len(values)), nil
	}
	if len(values) == 0 {
		return 0, ErrEmptyAggregation
	}

	switch op {
	case AggSum:
		return sum(values), nil
	case AggAvg:
		return sum(values) / float64(len(values)), nil
	case AggMin:
		m := values[0]
		for _, v := range values[1:] {
			if v < m {
				m = v
			}
		}
		return m, nil
	case AggMax:
		m := values[0]
		for _, v := range values[1:] {
			if v > m {
				m = v
			}
		}
		return m, nil
	default:
		return 0, fmt.Errorf("unknown aggregate function: %s", op)
	}
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
