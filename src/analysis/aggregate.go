// Package analysis loads per-category benchmark summaries into one table and derives the
// series the charts are drawn from. Nothing in here mutates a loaded table.
package analysis

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/iafilius/MSTBenchCharts/src/logging"
	"github.com/iafilius/MSTBenchCharts/src/types"
)

// DefaultResultsDir is where summaries are read from and charts are written to.
const DefaultResultsDir = "results"

// SummarySuffix terminates every summary file name: <category>_summary.csv.
const SummarySuffix = "_summary.csv"

// ErrNoData means no summary file (or no row) was found. It is not a failure of the run.
var ErrNoData = errors.New("no summary data")

// Aggregate loads every <category>_summary.csv in dir, in file name order, and concatenates
// the rows into one table tagged with their category.
func Aggregate(dir string) (types.ResultTable, error) {
	defer logging.TimeTrack(time.Now(), "aggregate "+dir)
	var table types.ResultTable
	files, err := filepath.Glob(filepath.Join(dir, "*"+SummarySuffix))
	if err != nil {
		return table, fmt.Errorf("glob summaries: %w", err)
	}
	if len(files) == 0 {
		return table, ErrNoData
	}
	for _, f := range files {
		cat := CategoryFromFilename(filepath.Base(f))
		rows, err := loadSummaryFile(f, cat)
		if err != nil {
			return types.ResultTable{}, err
		}
		table.Append(rows...)
		logging.Progressf("Loaded %d graphs from %s", len(rows), cat)
	}
	if table.Len() == 0 {
		return table, ErrNoData
	}
	return table, nil
}

// CategoryFromFilename derives the category of a summary file. A known bucket name before
// the suffix wins (extra_large_summary.csv -> extra_large); otherwise the text before the
// first underscore is used.
func CategoryFromFilename(name string) types.Category {
	base := strings.TrimSuffix(name, SummarySuffix)
	if c := types.Category(base); c.Known() {
		return c
	}
	if i := strings.Index(name, "_"); i >= 0 {
		return types.Category(name[:i])
	}
	return types.Category(base)
}

func loadSummaryFile(path string, cat types.Category) ([]types.ResultRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open summary: %w", err)
	}
	defer f.Close()
	rows, err := LoadSummaryCSV(f, cat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// LoadSummaryCSV parses one summary table. Columns are located by header name; extra columns
// are ignored. Every row is tagged with cat.
func LoadSummaryCSV(r io.Reader, cat types.Category) ([]types.ResultRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range types.RequiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var rows []types.ResultRow
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		p := rowParser{rec: rec, idx: idx, line: line}
		row := types.ResultRow{
			Category:          cat,
			Vertices:          int(p.count(types.ColVertices, true)),
			Edges:             int(p.count(types.ColEdges, true)),
			PrimTimeMs:        p.real(types.ColPrimTime),
			KruskalTimeMs:     p.real(types.ColKruskalTime),
			PrimOperations:    p.count(types.ColPrimOperations, false),
			KruskalOperations: p.count(types.ColKruskalOperations, false),
		}
		if p.err != nil {
			return nil, p.err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// rowParser converts the cells of one record and keeps the first error.
type rowParser struct {
	rec  []string
	idx  map[string]int
	line int
	err  error
}

func (p *rowParser) cell(col string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	i := p.idx[col]
	if i >= len(p.rec) {
		p.err = fmt.Errorf("line %d: column %s: missing value", p.line, col)
		return "", false
	}
	return strings.TrimSpace(p.rec[i]), true
}

func (p *rowParser) fail(col, raw, why string) {
	p.err = fmt.Errorf("line %d: column %s: %q %s", p.line, col, raw, why)
}

func (p *rowParser) real(col string) float64 {
	s, ok := p.cell(col)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		p.fail(col, s, "is not a number")
		return 0
	}
	if v < 0 {
		p.fail(col, s, "is negative")
		return 0
	}
	return v
}

// count parses an integer column; "120.0" is accepted as 120.
func (p *rowParser) count(col string, positive bool) int64 {
	s, ok := p.cell(col)
	if !ok {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64 {
			p.fail(col, s, "is not an integer")
			return 0
		}
		v = int64(f)
	}
	switch {
	case positive && v <= 0:
		p.fail(col, s, "must be positive")
		return 0
	case v < 0:
		p.fail(col, s, "is negative")
		return 0
	}
	return v
}
