package query

import (
	"cmp"
	"errors"
	"strconv"
	"strings"
)

// Kind tells which variant a Value holds
type Kind int

const (
	KindNumber Kind = iota
	KindText
)

// Value is a cell after coercion: either a number or the original text
type Value struct {
	Kind Kind
	Num  float64
	Text string
}

// Number creates a numeric value
func Number(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// Text creates a textual value
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// IsNumber reports whether v holds a number
func (v Value) IsNumber() bool {
	return v.Kind == KindNumber
}

func (v Value) String() string {
	if v.IsNumber() {
		return FormatNumber(v.Num)
	}
	return v.Text
}

// Coerce interprets s as a float64 when strconv accepts it (surrounding
// whitespace ignored) and keeps the original text otherwise. Values out of
// float64 range become ±Inf.
func Coerce(s string) Value {
	if f, ok := parseNumber(s); ok {
		return Number(f)
	}
	return Text(s)
}

// parseNumber is the strict numeric parse shared by coercion and aggregation
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err == nil {
		return f, true
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return f, true
	}
	return 0, false
}

// Compare orders two values and returns -1, 0 or +1.
//
// Numbers sort before text. Numbers compare numerically with NaN below
// every other number; text compares byte-wise.
func Compare(a, b Value) int {
	switch {
	case a.IsNumber() && b.IsNumber():
		return cmp.Compare(a.Num, b.Num)
	case a.IsNumber():
		return -1
	case b.IsNumber():
		return 1
	default:
		return strings.Compare(a.Text, b.Text)
	}
}

// Matches evaluates left <op> right.
//
// Two numbers use IEEE comparison, so NaN never equals anything. A number
// and a text value are never equal; their ordering follows Compare.
func Matches(left Value, op Operator, right Value) bool {
	if left.IsNumber() && right.IsNumber() {
		return compareNumbers(left.Num, op, right.Num)
	}
	if left.Kind != right.Kind {
		switch op {
		case OpEqual:
			return false
		case OpNotEqual:
			return true
		}
	}
	return compareOrdered(Compare(left, right), op)
}

// compareNumbers compares two numbers
func compareNumbers(left float64, op Operator, right float64) bool {
	switch op {
	case OpEqual:
		return left == right
	case OpNotEqual:
		return left != right
	case OpLess:
		return left < right
	case OpGreater:
		return left > right
	case OpLessEqual:
		return left <= right
	case OpGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// compareOrdered applies op to the result of Compare
func compareOrdered(c int, op Operator) bool {
	switch op {
	case OpEqual:
		return c == 0
	case OpNotEqual:
		return c != 0
	case OpLess:
		return c < 0
	case OpGreater:
		return c > 0
	case OpLessEqual:
		return c <= 0
	case OpGreaterEqual:
		return c >= 0
	default:
		return false
	}
}
