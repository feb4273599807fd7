package query

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Validation limits for user supplied expressions
const (
	// MaxExpressionLength is the maximum allowed expression length
	MaxExpressionLength = 4096

	// MaxColumnNameLength is the maximum length for a column name
	MaxColumnNameLength = 256
)

var (
	// ErrInvalidFormat matches every FormatError
	ErrInvalidFormat = errors.New("invalid format")

	// ErrColumnNotFound is the cause of a FormatError for an unknown column
	ErrColumnNotFound = errors.New("column not found")

	// ErrNonNumericColumn is returned when an aggregated column holds text
	ErrNonNumericColumn = errors.New("non-numeric column")

	// ErrEmptyAggregation is returned when a value aggregate runs on no rows
	ErrEmptyAggregation = errors.New("aggregation over empty table")
)

// FormatError reports an expression that does not match its grammar or
// names a column the table does not have.
type FormatError struct {
	Kind   string // "filter", "sort" or "aggregation"
	Input  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s format: %s", e.Kind, e.Input)
	}
	return fmt.Sprintf("invalid %s format: %s: %s", e.Kind, e.Input, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidFormat) hold for every FormatError
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatError(kind, input, reason string) *FormatError {
	return &FormatError{Kind: kind, Input: input, Reason: reason}
}

func columnNotFound(kind, input, column string) *FormatError {
	return &FormatError{
		Kind:   kind,
		Input:  input,
		Reason: fmt.Sprintf("column %q not found", column),
		Err:    ErrColumnNotFound,
	}
}

// validateExpression checks expression and column lengths
func validateExpression(kind, input string) error {
	if len(input) > MaxExpressionLength {
		return formatError(kind, shorten(input, 32),
			fmt.Sprintf("expression too long: %d bytes (max %d)", len(input), MaxExpressionLength))
	}
	return nil
}

// shorten cuts s to at most n bytes on a rune boundary and marks the cut
func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

func validateColumnName(kind, input, name string) error {
	if name == "" {
		return formatError(kind, input, "missing column name")
	}
	if len(name) > MaxColumnNameLength {
		return formatError(kind, input,
			fmt.Sprintf("column name too long: %d chars (max %d)", len(name), MaxColumnNameLength))
	}
	return nil
}
