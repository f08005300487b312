package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/iafilius/MSTBenchCharts/src/logging"
	"github.com/iafilius/MSTBenchCharts/src/types"
)

// Metric extracts one numeric measurement from a row.
type Metric func(types.ResultRow) float64

func Vertices(r types.ResultRow) float64          { return float64(r.Vertices) }
func Edges(r types.ResultRow) float64             { return float64(r.Edges) }
func PrimTime(r types.ResultRow) float64          { return r.PrimTimeMs }
func KruskalTime(r types.ResultRow) float64       { return r.KruskalTimeMs }
func PrimOperations(r types.ResultRow) float64    { return float64(r.PrimOperations) }
func KruskalOperations(r types.ResultRow) float64 { return float64(r.KruskalOperations) }

// Column returns fn applied to every row, in order.
func Column(rows []types.ResultRow, fn Metric) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = fn(r)
	}
	return out
}

// Ratio returns num/den. ok is false when the ratio is undefined (zero denominator or a
// non-finite result).
func Ratio(num, den float64) (float64, bool) {
	if den == 0 {
		return 0, false
	}
	v := num / den
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// RatioPoint is a defined Kruskal/Prim ratio for the row at Index of the source slice.
type RatioPoint struct {
	Index int
	Row   types.ResultRow
	Value float64
}

func ratios(rows []types.ResultRow, name string, num, den Metric) []RatioPoint {
	out := make([]RatioPoint, 0, len(rows))
	skipped := 0
	for i, r := range rows {
		v, ok := Ratio(num(r), den(r))
		if !ok {
			skipped++
			logging.Debugf("%s undefined for %s row %d (V=%d)", name, r.Category, i, r.Vertices)
			continue
		}
		out = append(out, RatioPoint{Index: i, Row: r, Value: v})
	}
	if skipped > 0 {
		logging.Warnf("%s: excluded %d of %d rows with a zero Prim denominator", name, skipped, len(rows))
	}
	return out
}

// SpeedupRatios returns KruskalTime/PrimTime per row, as used by the per-category speedup bars.
func SpeedupRatios(rows []types.ResultRow) []RatioPoint {
	return ratios(rows, "speedup ratio", KruskalTime, PrimTime)
}

// TimeRatios returns KruskalTime/PrimTime per row, as plotted against graph size.
func TimeRatios(rows []types.ResultRow) []RatioPoint {
	return ratios(rows, "time ratio", KruskalTime, PrimTime)
}

// OpsRatios returns KruskalOperations/PrimOperations per row.
func OpsRatios(rows []types.ResultRow) []RatioPoint {
	return ratios(rows, "operations ratio", KruskalOperations, PrimOperations)
}

// GroupValue is one per-category aggregate.
type GroupValue struct {
	Category types.Category
	Value    float64
}

// GroupMeans returns the mean of fn per category, ordered by table.CategoriesPresent.
func GroupMeans(table types.ResultTable, fn Metric) []GroupValue {
	cats := table.CategoriesPresent()
	out := make([]GroupValue, 0, len(cats))
	for _, c := range cats {
		out = append(out, GroupValue{Category: c, Value: stat.Mean(Column(table.Filter(c), fn), nil)})
	}
	return out
}

// GroupStat is the mean and sample standard deviation of a series within one category.
type GroupStat struct {
	Category types.Category
	Mean     float64
	Std      float64
	N        int
}

// GroupMeanStd groups ratio points by category (known buckets in size order, then others by
// first appearance) and returns mean and sample std per group. A single-point group has std 0.
func GroupMeanStd(points []RatioPoint) []GroupStat {
	tbl := types.ResultTable{}
	byCat := map[types.Category][]float64{}
	for _, p := range points {
		tbl.Append(p.Row)
		byCat[p.Row.Category] = append(byCat[p.Row.Category], p.Value)
	}
	var out []GroupStat
	for _, c := range tbl.CategoriesPresent() {
		vs := byCat[c]
		mean, std := stat.MeanStdDev(vs, nil)
		if math.IsNaN(std) {
			std = 0
		}
		out = append(out, GroupStat{Category: c, Mean: mean, Std: std, N: len(vs)})
	}
	return out
}

// Wins counts which algorithm was strictly faster per row.
type Wins struct {
	Prim    int
	Kruskal int
	Ties    int
}

// Total is the number of rows counted.
func (w Wins) Total() int { return w.Prim + w.Kruskal + w.Ties }

// CountWins tallies strict wins per algorithm; equal times are ties.
func CountWins(rows []types.ResultRow) Wins {
	var w Wins
	for _, r := range rows {
		switch {
		case r.PrimTimeMs < r.KruskalTimeMs:
			w.Prim++
		case r.PrimTimeMs > r.KruskalTimeMs:
			w.Kruskal++
		default:
			w.Ties++
		}
	}
	return w
}
