// Package query implements the filter, sort and aggregation operations that
// csvcat applies to an in-memory table.
//
// Each operation is driven by a compact expression:
//
//	filter:      price>300, brand == "apple", rating<=4.6
//	sort:        price=asc, name=DESC
//	aggregation: price=sum, rating=avg
//
// Expressions are parsed into directives (Predicate, SortDirective,
// AggregateDirective) and evaluated against the cell text after a
// best-effort numeric coercion (see Coerce).
//
// Example usage:
//
//	filtered, err := query.ApplyFilter(tbl, "price>300")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sorted, err := query.ApplySort(filtered, "price=asc")
package query

import (
	"fmt"
	"strconv"

	"github.com/vegasq/csvcat/internal/table"
)

// Operator is a filter comparison operator
type Operator int

const (
	OpEqual        Operator = iota // ==
	OpNotEqual                     // !=
	OpLess                         // <
	OpGreater                      // >
	OpLessEqual                    // <=
	OpGreaterEqual                 // >=
)

// String returns the operator token
func (o Operator) String() string {
	switch o {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	case OpLessEqual:
		return "<="
	case OpGreaterEqual:
		return ">="
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Direction is a sort direction
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns the direction keyword
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// AggregateOp is an aggregation function
type AggregateOp int

const (
	AggSum AggregateOp = iota
	AggAvg
	AggCount
	AggMin
	AggMax
)

// String returns the function name, which is also the result key
func (a AggregateOp) String() string {
	switch a {
	case AggSum:
		return "sum"
	case AggAvg:
		return "avg"
	case AggCount:
		return "count"
	case AggMin:
		return "min"
	case AggMax:
		return "max"
	default:
		return fmt.Sprintf("AggregateOp(%d)", int(a))
	}
}

// Predicate is a parsed filter expression
type Predicate struct {
	Column   string
	Operator Operator
	Literal  string
}

// SortDirective is a parsed sort expression
type SortDirective struct {
	Column    string
	Direction Direction
}

// AggregateDirective is a parsed aggregation expression
type AggregateDirective struct {
	Column string
	Op     AggregateOp
}

// AggregateResult is the single value produced by an aggregation
type AggregateResult struct {
	Op    AggregateOp
	Value float64
}

// Map returns the result as a one-entry map keyed by the function name
func (r AggregateResult) Map() map[string]float64 {
	return map[string]float64{r.Op.String(): r.Value}
}

// Table returns the result as a one-column, one-row table for display
func (r AggregateResult) Table() *table.Table {
	key := r.Op.String()
	return table.New([]string{key}, []table.Row{{key: FormatNumber(r.Value)}})
}

// FormatNumber renders a float with the fewest digits that represent it
// exactly, so whole numbers print without a fractional part.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
