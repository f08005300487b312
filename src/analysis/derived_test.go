package analysis

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iafilius/MSTBenchCharts/src/types"
)

func row(cat types.Category, v int, prim, kruskal float64, pOps, kOps int64) types.ResultRow {
	return types.ResultRow{Category: cat, Vertices: v, Edges: v * 2, PrimTimeMs: prim, KruskalTimeMs: kruskal, PrimOperations: pOps, KruskalOperations: kOps}
}

func TestSpeedupRatios_Formula(t *testing.T) {
	rows := []types.ResultRow{
		row(types.Small, 10, 1.2, 1.5, 100, 120),
		row(types.Small, 20, 2.4, 2.1, 200, 180),
		row(types.Medium, 50, 3.3, 3.3, 10, 10),
	}
	got := SpeedupRatios(rows)
	require.Len(t, got, 3)
	for i, p := range got {
		assert.Equal(t, i, p.Index)
		assert.InDelta(t, rows[i].KruskalTimeMs/rows[i].PrimTimeMs, p.Value, 1e-12)
	}
	assert.Equal(t, 1.0, got[2].Value)

	// Time ratio is the same formula derived separately.
	assert.Equal(t, got, TimeRatios(rows))
}

func TestRatios_ZeroDenominatorExcluded(t *testing.T) {
	rows := []types.ResultRow{
		row(types.Small, 10, 0, 1.5, 0, 120),
		row(types.Small, 20, 2.0, 1.0, 200, 100),
	}
	sp := SpeedupRatios(rows)
	require.Len(t, sp, 1)
	assert.Equal(t, 1, sp[0].Index)
	assert.Equal(t, 0.5, sp[0].Value)

	ops := OpsRatios(rows)
	require.Len(t, ops, 1)
	assert.Equal(t, 0.5, ops[0].Value)

	_, ok := Ratio(0, 0)
	assert.False(t, ok)
}

func TestRatios_DoNotMutateInput(t *testing.T) {
	rows := []types.ResultRow{row(types.Large, 1000, 4, 8, 10, 30)}
	before := append([]types.ResultRow(nil), rows...)
	SpeedupRatios(rows)
	OpsRatios(rows)
	assert.Equal(t, before, rows)
}

func TestGroupMeanStd_SingleRowStdIsZero(t *testing.T) {
	rows := []types.ResultRow{
		row(types.Medium, 100, 2, 4, 1, 1),
		row(types.Small, 10, 1, 1, 1, 1),
		row(types.Small, 20, 1, 3, 1, 1),
	}
	stats := GroupMeanStd(SpeedupRatios(rows))
	require.Len(t, stats, 2)

	assert.Equal(t, types.Small, stats[0].Category)
	assert.InDelta(t, 2.0, stats[0].Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(2), stats[0].Std, 1e-12)
	assert.Equal(t, 2, stats[0].N)

	assert.Equal(t, types.Medium, stats[1].Category)
	assert.Equal(t, 2.0, stats[1].Mean)
	assert.Equal(t, 0.0, stats[1].Std)
	assert.False(t, math.IsNaN(stats[1].Std))
}

func TestGroupMeans_AbsentCategoryOmitted(t *testing.T) {
	tbl := types.ResultTable{Rows: []types.ResultRow{
		row(types.Large, 1000, 10, 20, 5000, 9000),
		row(types.Small, 10, 1, 2, 50, 90),
	}}
	means := GroupMeans(tbl, PrimOperations)
	require.Len(t, means, 2)
	assert.Equal(t, types.Small, means[0].Category)
	assert.Equal(t, types.Large, means[1].Category)
	assert.Equal(t, 5000.0, means[1].Value)
}

func TestCountWins_SumsToRowCount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 50; n++ {
		rows := make([]types.ResultRow, n)
		for i := range rows {
			// Small integer times make ties likely.
			rows[i] = row(types.Small, i+1, float64(rng.Intn(3)), float64(rng.Intn(3)), 1, 1)
		}
		w := CountWins(rows)
		assert.Equal(t, n, w.Prim+w.Kruskal+w.Ties)
		assert.Equal(t, n, w.Total())
	}
}

func TestCountWins_StrictComparison(t *testing.T) {
	w := CountWins([]types.ResultRow{
		row(types.Small, 10, 1.2, 1.5, 1, 1),
		row(types.Small, 20, 2.4, 2.1, 1, 1),
		row(types.Small, 30, 2.0, 2.0, 1, 1),
	})
	assert.Equal(t, Wins{Prim: 1, Kruskal: 1, Ties: 1}, w)
}
