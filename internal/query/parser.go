package query

import (
	"strings"
)

// operatorTokens lists filter operators in match priority. Two-character
// operators come before their one-character prefixes.
var operatorTokens = []struct {
	token string
	op    Operator
}{
	{"==", OpEqual},
	{"!=", OpNotEqual},
	{"<=", OpLessEqual},
	{">=", OpGreaterEqual},
	{"<", OpLess},
	{">", OpGreater},
}

// ParseFilter parses "column <op> literal".
//
// The first operator from the priority list found anywhere in the input
// splits it once. Column and literal are trimmed and one layer of matching
// quotes is removed from the literal.
func ParseFilter(input string) (Predicate, error) {
	const kind = "filter"
	if err := validateExpression(kind, input); err != nil {
		return Predicate{}, err
	}

	for _, candidate := range operatorTokens {
		idx := strings.Index(input, candidate.token)
		if idx < 0 {
			continue
		}

		column := strings.TrimSpace(input[:idx])
		literal := strings.TrimSpace(input[idx+len(candidate.token):])

		if err := validateColumnName(kind, input, column); err != nil {
			return Predicate{}, err
		}
		if isMixedComparison(input, idx, candidate.token) {
			return Predicate{}, formatError(kind, input, "unexpected operator in value")
		}

		return Predicate{
			Column:   column,
			Operator: candidate.op,
			Literal:  unquote(literal),
		}, nil
	}

	return Predicate{}, formatError(kind, input, "no comparison operator")
}

// isMixedComparison reports a one-character comparison fused with another
// angle bracket, as in "price<>999" or "price><1". Values after == and !=
// are taken as written.
func isMixedComparison(input string, idx int, token string) bool {
	if len(token) != 1 {
		return false
	}
	next := idx + 1
	if next < len(input) && (input[next] == '<' || input[next] == '>') {
		return true
	}
	return idx > 0 && (input[idx-1] == '<' || input[idx-1] == '>')
}

// unquote strips one layer of matching single or double quotes
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// ParseSort parses "column=asc" or "column=desc"
func ParseSort(input string) (SortDirective, error) {
	const kind = "sort"
	column, value, err := splitAssignment(kind, input)
	if err != nil {
		return SortDirective{}, err
	}

	switch value {
	case "asc":
		return SortDirective{Column: column, Direction: Ascending}, nil
	case "desc":
		return SortDirective{Column: column, Direction: Descending}, nil
	default:
		return SortDirective{}, formatError(kind, input, "order must be asc or desc")
	}
}

// ParseAggregation parses "column=function" for sum, avg, count, min, max
func ParseAggregation(input string) (AggregateDirective, error) {
	const kind = "aggregation"
	column, value, err := splitAssignment(kind, input)
	if err != nil {
		return AggregateDirective{}, err
	}

	var op AggregateOp
	switch value {
	case "sum":
		op = AggSum
	case "avg":
		op = AggAvg
	case "count":
		op = AggCount
	case "min":
		op = AggMin
	case "max":
		op = AggMax
	default:
		return AggregateDirective{}, formatError(kind, input, "function must be one of sum, avg, count, min, max")
	}

	return AggregateDirective{Column: column, Op: op}, nil
}

// splitAssignment splits "column=value" on its single '=' and returns the
// trimmed column and the trimmed, lower-cased value.
func splitAssignment(kind, input string) (string, string, error) {
	if err := validateExpression(kind, input); err != nil {
		return "", "", err
	}
	if strings.Count(input, "=") != 1 {
		return "", "", formatError(kind, input, "expected exactly one '='")
	}

	column, value, _ := strings.Cut(input, "=")
	column = strings.TrimSpace(column)
	if err := validateColumnName(kind, input, column); err != nil {
		return "", "", err
	}

	return column, strings.ToLower(strings.TrimSpace(value)), nil
}
