package analysis

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iafilius/MSTBenchCharts/src/logging"
	"github.com/iafilius/MSTBenchCharts/src/types"
)

const summaryHeader = "Vertices,Edges,PrimTime(ms),KruskalTime(ms),PrimOperations,KruskalOperations\n"

// writeSummary writes a summary CSV named <cat>_summary.csv into dir.
func writeSummary(t *testing.T, dir, cat string, lines ...string) {
	t.Helper()
	body := summaryHeader + strings.Join(lines, "\n")
	if len(lines) > 0 {
		body += "\n"
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, cat+SummarySuffix), []byte(body), 0o644))
}

// quietProgress discards progress lines for the duration of the test and returns them.
func quietProgress(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logging.SetProgressOutput(&buf)
	t.Cleanup(func() { logging.SetProgressOutput(prev) })
	return &buf
}

func TestAggregate_SmallScenario(t *testing.T) {
	progress := quietProgress(t)
	dir := t.TempDir()
	writeSummary(t, dir, "small",
		"10,15,1.2,1.5,100,120",
		"20,30,2.4,2.1,200,180",
	)

	tbl, err := Aggregate(dir)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	for _, r := range tbl.Rows {
		assert.Equal(t, types.Small, r.Category)
	}
	assert.Equal(t, types.ResultRow{Category: types.Small, Vertices: 10, Edges: 15, PrimTimeMs: 1.2, KruskalTimeMs: 1.5, PrimOperations: 100, KruskalOperations: 120}, tbl.Rows[0])

	means := GroupMeans(tbl, PrimTime)
	require.Len(t, means, 1)
	assert.InDelta(t, 1.8, means[0].Value, 1e-12)
	assert.InDelta(t, 1.8, GroupMeans(tbl, KruskalTime)[0].Value, 1e-12)

	assert.Equal(t, "Loaded 2 graphs from small\n", progress.String())
}

func TestAggregate_ConcatenatesInFileOrder(t *testing.T) {
	quietProgress(t)
	dir := t.TempDir()
	writeSummary(t, dir, "small", "10,15,1,1,1,1", "12,18,1,1,1,1")
	writeSummary(t, dir, "medium", "100,300,5,6,10,12")
	writeSummary(t, dir, "extra_large", "10000,50000,90,80,1000,900", "20000,90000,200,150,2000,1700", "30000,120000,400,300,3000,2500")

	tbl, err := Aggregate(dir)
	require.NoError(t, err)
	require.Equal(t, 6, tbl.Len())

	// Glob order is lexical: extra_large, medium, small.
	want := []struct {
		cat types.Category
		v   int
	}{
		{types.ExtraLarge, 10000}, {types.ExtraLarge, 20000}, {types.ExtraLarge, 30000},
		{types.Medium, 100},
		{types.Small, 10}, {types.Small, 12},
	}
	for i, w := range want {
		assert.Equal(t, w.cat, tbl.Rows[i].Category, "row %d", i)
		assert.Equal(t, w.v, tbl.Rows[i].Vertices, "row %d", i)
	}
}

func TestAggregate_NoFilesIsNoData(t *testing.T) {
	quietProgress(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.csv"), []byte(summaryHeader), 0o644))

	_, err := Aggregate(dir)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = Aggregate(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, ErrNoData)
}

func TestAggregate_HeaderOnlyFilesAreNoData(t *testing.T) {
	progress := quietProgress(t)
	dir := t.TempDir()
	writeSummary(t, dir, "small")

	_, err := Aggregate(dir)
	assert.ErrorIs(t, err, ErrNoData)
	assert.Contains(t, progress.String(), "Loaded 0 graphs from small")
}

func TestAggregate_MalformedValueFails(t *testing.T) {
	quietProgress(t)
	dir := t.TempDir()
	writeSummary(t, dir, "small", "10,15,1.2,1.5,100,120", "20,30,fast,2.1,200,180")

	_, err := Aggregate(dir)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "PrimTime(ms)")
}

func TestLoadSummaryCSV_ColumnsByNameAndExtras(t *testing.T) {
	in := "Graph, KruskalOperations,PrimOperations,Edges,Vertices,KruskalTime(ms),PrimTime(ms),MSTWeight\n" +
		"g1, 120,100,15,10,1.5,1.2,42\n"
	rows, err := LoadSummaryCSV(strings.NewReader(in), types.Medium)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, types.ResultRow{Category: types.Medium, Vertices: 10, Edges: 15, PrimTimeMs: 1.2, KruskalTimeMs: 1.5, PrimOperations: 100, KruskalOperations: 120}, rows[0])
}

func TestLoadSummaryCSV_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"missing column":   "Vertices,Edges,PrimTime(ms),KruskalTime(ms),PrimOperations\n1,2,3,4,5\n",
		"fractional count": summaryHeader + "10.5,15,1,1,1,1\n",
		"zero vertices":    summaryHeader + "0,15,1,1,1,1\n",
		"negative time":    summaryHeader + "10,15,-1,1,1,1\n",
		"ragged row":       summaryHeader + "10,15,1,1\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSummaryCSV(strings.NewReader(in), types.Small)
			assert.Error(t, err)
		})
	}
}

func TestLoadSummaryCSV_IntegralFloatCounts(t *testing.T) {
	rows, err := LoadSummaryCSV(strings.NewReader(summaryHeader+"10,15,1,1,100.0,120\n"), types.Small)
	require.NoError(t, err)
	assert.Equal(t, int64(100), rows[0].PrimOperations)
}

func TestCategoryFromFilename(t *testing.T) {
	assert.Equal(t, types.Small, CategoryFromFilename("small_summary.csv"))
	assert.Equal(t, types.ExtraLarge, CategoryFromFilename("extra_large_summary.csv"))
	assert.Equal(t, types.Category("huge"), CategoryFromFilename("huge_graphs_summary.csv"))
	assert.Equal(t, types.Category("dense"), CategoryFromFilename("dense_summary.csv"))
}
