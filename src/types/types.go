// Package types holds the benchmark result model shared by the aggregator and the chart renderer.
package types

// Category is a coarse graph-size bucket. One summary CSV exists per category.
type Category string

const (
	Small      Category = "small"
	Medium     Category = "medium"
	Large      Category = "large"
	ExtraLarge Category = "extra_large"
)

// Categories lists the known buckets in size order.
var Categories = []Category{Small, Medium, Large, ExtraLarge}

// Known reports whether c is one of the fixed size buckets.
func (c Category) Known() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Initial returns the first character of the category label ("" for an empty label).
func (c Category) Initial() string {
	for _, r := range string(c) {
		return string(r)
	}
	return ""
}

// CSV header names of a summary file.
const (
	ColVertices          = "Vertices"
	ColEdges             = "Edges"
	ColPrimTime          = "PrimTime(ms)"
	ColKruskalTime       = "KruskalTime(ms)"
	ColPrimOperations    = "PrimOperations"
	ColKruskalOperations = "KruskalOperations"
)

// RequiredColumns are the headers every summary CSV must carry.
var RequiredColumns = []string{ColVertices, ColEdges, ColPrimTime, ColKruskalTime, ColPrimOperations, ColKruskalOperations}

// ResultRow is one Prim vs Kruskal benchmark run on a single graph.
type ResultRow struct {
	Category          Category `json:"category"`
	Vertices          int      `json:"vertices"`
	Edges             int      `json:"edges"`
	PrimTimeMs        float64  `json:"prim_time_ms"`
	KruskalTimeMs     float64  `json:"kruskal_time_ms"`
	PrimOperations    int64    `json:"prim_operations"`
	KruskalOperations int64    `json:"kruskal_operations"`
}

// ResultTable is the ordered concatenation of all loaded rows (file order, then row order).
type ResultTable struct {
	Rows []ResultRow
}

// Len returns the number of rows.
func (t ResultTable) Len() int { return len(t.Rows) }

// Append adds rows at the end of the table.
func (t *ResultTable) Append(rows ...ResultRow) {
	t.Rows = append(t.Rows, rows...)
}

// Filter returns the rows of category c in table order.
func (t ResultTable) Filter(c Category) []ResultRow {
	var out []ResultRow
	for _, r := range t.Rows {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out
}

// CategoriesPresent returns the categories that have at least one row: known buckets
// first in size order, then any other labels in order of first appearance.
func (t ResultTable) CategoriesPresent() []Category {
	seen := map[Category]bool{}
	var extra []Category
	for _, r := range t.Rows {
		if seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		if !r.Category.Known() {
			extra = append(extra, r.Category)
		}
	}
	var out []Category
	for _, c := range Categories {
		if seen[c] {
			out = append(out, c)
		}
	}
	return append(out, extra...)
}
