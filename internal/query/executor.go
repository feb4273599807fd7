package query

import (
	"io"
	"log"

	"github.com/vegasq/csvcat/internal/table"
)

// Plan lists the operations to run on a table. Empty expressions are
// skipped; Limit <= 0 keeps every row.
type Plan struct {
	Where     string
	OrderBy   string
	Aggregate string
	Limit     int
}

// Execute runs the plan in the fixed order filter, sort, aggregate, limit.
//
// All expressions are parsed before any row is touched, so a malformed
// aggregation is reported even when the filter would fail later. When an
// aggregation is requested the returned table is its single result row.
// logger may be nil.
func Execute(t *table.Table, plan Plan, logger *log.Logger) (*table.Table, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	var (
		pred   Predicate
		dir    SortDirective
		agg    AggregateDirective
		err    error
		result = t
	)

	if plan.Where != "" {
		if pred, err = ParseFilter(plan.Where); err != nil {
			return nil, err
		}
	}
	if plan.OrderBy != "" {
		if dir, err = ParseSort(plan.OrderBy); err != nil {
			return nil, err
		}
	}
	if plan.Aggregate != "" {
		if agg, err = ParseAggregation(plan.Aggregate); err != nil {
			return nil, err
		}
	}

	if plan.Where != "" {
		before := result.Len()
		if result, err = FilterRows(result, pred, plan.Where); err != nil {
			return nil, err
		}
		logger.Printf("filter %s %s %q kept %d of %d rows", pred.Column, pred.Operator, pred.Literal, result.Len(), before)
	}

	if plan.OrderBy != "" {
		if result, err = SortRows(result, dir, plan.OrderBy); err != nil {
			return nil, err
		}
		logger.Printf("sorted %d rows by %s %s", result.Len(), dir.Column, dir.Direction)
	}

	if plan.Aggregate != "" {
		res, err := AggregateRows(result, agg, plan.Aggregate)
		if err != nil {
			return nil, err
		}
		logger.Printf("%s(%s) over %d rows = %s", res.Op, agg.Column, result.Len(), FormatNumber(res.Value))
		result = res.Table()
	}

	if plan.Limit > 0 && result.Len() > plan.Limit {
		logger.Printf("limit %d of %d rows", plan.Limit, result.Len())
		result = result.Head(plan.Limit)
	}

	return result, nil
}
