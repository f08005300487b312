package charts

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// niceTicker places about N labelled ticks on 1/2/2.5/5 multiples of a power of ten.
type niceTicker struct {
	N int
}

var _ plot.Ticker = niceTicker{}

// Ticks implements plot.Ticker.
func (t niceTicker) Ticks(min, max float64) []plot.Tick {
	n := t.N
	if n < 2 {
		n = 6
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	if max <= min {
		return []plot.Tick{{Value: min, Label: formatTick(min)}}
	}
	step := niceStep(max-min, n)
	start := math.Ceil(min/step) * step
	var ticks []plot.Tick
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > max+step*1e-9 {
			break
		}
		// Snap values like 0.30000000000000004 before labelling.
		v = math.Round(v/step) * step
		ticks = append(ticks, plot.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

// niceStep picks the candidate step whose tick count is closest to n.
func niceStep(span float64, n int) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	best, bestScore := mag, math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Max(math.Floor(span/step)+1, 2)
		if score := math.Abs(count - float64(n)); score < bestScore {
			best, bestScore = step, score
		}
	}
	return best
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return trimZeros(fmt.Sprintf("%.1f", v))
	case av >= 0.01:
		return trimZeros(fmt.Sprintf("%.2f", v))
	default:
		return fmt.Sprintf("%.1e", v)
	}
}

func trimZeros(s string) string {
	for len(s) > 1 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
