package query

import (
	"testing"

	"github.com/vegasq/csvcat/internal/table"
)

// phoneTable returns the sample dataset used across the package tests
func phoneTable(t *testing.T) *table.Table {
	t.Helper()
	return table.New([]string{"name", "brand", "price", "rating"}, []table.Row{
		{"name": "iphone 15 pro", "brand": "apple", "price": "999", "rating": "4.9"},
		{"name": "galaxy s23 ultra", "brand": "samsung", "price": "1199", "rating": "4.8"},
		{"name": "redmi note 12", "brand": "xiaomi", "price": "199", "rating": "4.6"},
		{"name": "poco x5 pro", "brand": "xiaomi", "price": "299", "rating": "4.4"},
	})
}

// rowIndexes maps each row of got back to its position in src. Rows are
// compared by identity of their "name" cell, which is unique in phoneTable.
func rowIndexes(t *testing.T, src, got *table.Table) []int {
	t.Helper()
	indexes := make([]int, 0, got.Len())
	for _, row := range got.Rows {
		found := -1
		for i, candidate := range src.Rows {
			if candidate["name"] == row["name"] {
				found = i
				break
			}
		}
		if found < 0 {
			t.Fatalf("row %v not present in source table", row)
		}
		indexes = append(indexes, found)
	}
	return indexes
}
