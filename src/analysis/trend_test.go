package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyFit_RecoversQuadratic(t *testing.T) {
	f := func(x float64) float64 { return 2 + 0.003*x + 1.5e-6*x*x }
	xs := []float64{100, 500, 1000, 5000, 10000, 50000, 100000}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	p, err := PolyFit(xs, ys, 2)
	require.NoError(t, err)
	for _, x := range []float64{100, 2500, 75000} {
		assert.InEpsilon(t, f(x), p.Eval(x), 1e-9, "x=%v", x)
	}
}

func TestPolyFit_TwoPointsPassesThrough(t *testing.T) {
	p, err := PolyFit([]float64{10, 20}, []float64{1.2, 2.4}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.2, p.Eval(10), 1e-9)
	assert.InDelta(t, 2.4, p.Eval(20), 1e-9)
}

func TestPolyFit_Degenerate(t *testing.T) {
	_, err := PolyFit([]float64{10}, []float64{1}, 2)
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = PolyFit([]float64{10, 10, 10}, []float64{1, 2, 3}, 2)
	assert.ErrorIs(t, err, ErrDegenerateFit)

	_, err = PolyFit([]float64{1, 2}, []float64{1}, 2)
	assert.Error(t, err)
}

func TestLinspace(t *testing.T) {
	xs := Linspace(10, 20, 100)
	require.Len(t, xs, 100)
	assert.Equal(t, 10.0, xs[0])
	assert.Equal(t, 20.0, xs[99])
	assert.InDelta(t, 10.0/99, xs[1]-xs[0], 1e-12)

	assert.Equal(t, []float64{3}, Linspace(3, 9, 1))
	assert.Nil(t, Linspace(3, 9, 0))
}

func TestTrendCurve_SpansObservedRange(t *testing.T) {
	cx, cy, err := TrendCurve([]float64{20, 10, 40}, []float64{4, 1, 16}, 2, 100)
	require.NoError(t, err)
	require.Len(t, cx, 100)
	require.Len(t, cy, 100)
	assert.Equal(t, 10.0, cx[0])
	assert.Equal(t, 40.0, cx[99])
	assert.InDelta(t, 16.0, cy[99], 1e-9)
}

func TestPolyFit_RepeatedVerticesLowersDegree(t *testing.T) {
	// Three graphs share V=100; only two distinct sizes are available for a quadratic.
	xs := []float64{100, 100, 100, 200}
	ys := []float64{1, 2, 3, 6}
	p, err := PolyFit(xs, ys, 2)
	require.NoError(t, err)
	require.Len(t, p.Coeffs, 3)
	assert.Equal(t, 0.0, p.Coeffs[2])
	assert.InDelta(t, 2.0, p.Eval(100), 1e-9)
	assert.InDelta(t, 6.0, p.Eval(200), 1e-9)
}
