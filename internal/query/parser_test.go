package query

import (
	"errors"
	"strings"
	"testing"
)

func TestParseFilter_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Predicate
	}{
		{"equal", "price==100", Predicate{"price", OpEqual, "100"}},
		{"not equal", "rating!=5", Predicate{"rating", OpNotEqual, "5"}},
		{"less", "price<1000", Predicate{"price", OpLess, "1000"}},
		{"greater", "price>500", Predicate{"price", OpGreater, "500"}},
		{"less equal", "rating<=4.5", Predicate{"rating", OpLessEqual, "4.5"}},
		{"greater equal", "rating>=4.0", Predicate{"rating", OpGreaterEqual, "4.0"}},
		{"double quoted", `brand=="apple"`, Predicate{"brand", OpEqual, "apple"}},
		{"single quoted", "name!='iphone'", Predicate{"name", OpNotEqual, "iphone"}},
		{"spaces", "  price  >  300 ", Predicate{"price", OpGreater, "300"}},
		{"spaces inside quotes kept", `name == " poco "`, Predicate{"name", OpEqual, " poco "}},
		{"one quote layer only", `name=="'x'"`, Predicate{"name", OpEqual, "'x'"}},
		{"mismatched quotes kept", `name=="x'`, Predicate{"name", OpEqual, `"x'`}},
		{"column with spaces", "model name == a", Predicate{"model name", OpEqual, "a"}},
		{"empty literal", "brand==", Predicate{"brand", OpEqual, ""}},
		{"quoted operator in literal", `expr=="=x"`, Predicate{"expr", OpEqual, "=x"}},
		{"angle brackets after equal", "tag==<none>", Predicate{"tag", OpEqual, "<none>"}},
		{"bang after not equal", "tag!=!urgent", Predicate{"tag", OpNotEqual, "!urgent"}},
		{"equals after equal", "tag == =x", Predicate{"tag", OpEqual, "=x"}},
		{"triple equals", "price===1", Predicate{"price", OpEqual, "=1"}},
		{"bracket literal after less", "tag< =x", Predicate{"tag", OpLess, "=x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilter(tt.input)
			if err != nil {
				t.Fatalf("ParseFilter(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFilter(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFilter_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no operator", "invalid_format"},
		{"missing column", ">=10"},
		{"single equals", "price=100"},
		{"diamond", "price<>999"},
		{"reversed diamond", "price><999"},
		{"spaced diamond", "price <> 999"},
		{"empty", ""},
		{"too long", "a==" + strings.Repeat("x", MaxExpressionLength)},
		{"column too long", strings.Repeat("c", MaxColumnNameLength+1) + "==1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFilter(tt.input)
			if err == nil {
				t.Fatalf("ParseFilter(%q) expected error", tt.input)
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ParseFilter(%q) error = %v, want ErrInvalidFormat", tt.input, err)
			}
		})
	}
}

func TestParseFilter_ErrorMessage(t *testing.T) {
	_, err := ParseFilter("price<>999")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "invalid filter format") || !strings.Contains(err.Error(), "price<>999") {
		t.Errorf("error message %q should name the kind and the input", err.Error())
	}

	var fe *FormatError
	if !errors.As(err, &fe) || fe.Input != "price<>999" {
		t.Errorf("error should be a *FormatError carrying the input, got %#v", err)
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SortDirective
		wantErr bool
	}{
		{"desc", "price=desc", SortDirective{"price", Descending}, false},
		{"asc", "price=asc", SortDirective{"price", Ascending}, false},
		{"upper case", "price=DESC", SortDirective{"price", Descending}, false},
		{"spaces", "  name  =  Asc ", SortDirective{"name", Ascending}, false},
		{"no separator", "invalid_format", SortDirective{}, true},
		{"bad order", "price=invalid_order", SortDirective{}, true},
		{"missing column", "=desc", SortDirective{}, true},
		{"missing order", "price=", SortDirective{}, true},
		{"two separators", "price=asc=desc", SortDirective{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSort(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("ParseSort(%q) error = %v, want ErrInvalidFormat", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseSort(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAggregation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    AggregateDirective
		wantErr bool
	}{
		{"sum", "price=sum", AggregateDirective{"price", AggSum}, false},
		{"avg", "price=avg", AggregateDirective{"price", AggAvg}, false},
		{"count", "price=count", AggregateDirective{"price", AggCount}, false},
		{"min", "price=min", AggregateDirective{"price", AggMin}, false},
		{"max", "price=max", AggregateDirective{"price", AggMax}, false},
		{"spaces and case", "  price  =  SUM  ", AggregateDirective{"price", AggSum}, false},
		{"no separator", "invalid_format", AggregateDirective{}, true},
		{"missing function", "price=", AggregateDirective{}, true},
		{"missing column", "=sum", AggregateDirective{}, true},
		{"unknown function", "price=unknown_func", AggregateDirective{}, true},
		{"two separators", "price=sum=avg", AggregateDirective{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAggregation(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAggregation(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("ParseAggregation(%q) error = %v, want ErrInvalidFormat", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseAggregation(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOperatorString(t *testing.T) {
	for _, candidate := range operatorTokens {
		if got := candidate.op.String(); got != candidate.token {
			t.Errorf("Operator(%d).String() = %q, want %q", candidate.op, got, candidate.token)
		}
	}
}
