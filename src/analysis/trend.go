package analysis

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrTooFewPoints is returned when a fit has fewer than two samples.
	ErrTooFewPoints = errors.New("polynomial fit needs at least 2 points")
	// ErrDegenerateFit is returned when every sample shares the same x.
	ErrDegenerateFit = errors.New("polynomial fit needs at least 2 distinct x values")
)

// Polynomial is a least-squares fit in the normalised variable t = (x-Shift)/Scale.
// Coeffs are in ascending order of power.
type Polynomial struct {
	Coeffs []float64
	Shift  float64
	Scale  float64
}

// Eval evaluates the polynomial at x.
func (p Polynomial) Eval(x float64) float64 {
	t := (x - p.Shift) / p.Scale
	var y float64
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y = y*t + p.Coeffs[i]
	}
	return y
}

// PolyFit fits a polynomial of the given degree to (xs, ys) by least squares. With fewer
// distinct x values than coefficients the fit degree is lowered to keep the system full rank
// and the unused higher-order coefficients are zero.
func PolyFit(xs, ys []float64, degree int) (Polynomial, error) {
	if len(xs) != len(ys) {
		return Polynomial{}, fmt.Errorf("polynomial fit: %d x values vs %d y values", len(xs), len(ys))
	}
	if degree < 0 {
		return Polynomial{}, fmt.Errorf("polynomial fit: negative degree %d", degree)
	}
	if len(xs) < 2 {
		return Polynomial{}, ErrTooFewPoints
	}
	lo, hi := floats.Min(xs), floats.Max(xs)
	if hi == lo {
		return Polynomial{}, ErrDegenerateFit
	}
	p := Polynomial{Shift: stat.Mean(xs, nil), Scale: (hi - lo) / 2, Coeffs: make([]float64, degree+1)}
	fit := degree
	if d := distinct(xs) - 1; d < fit {
		fit = d
	}

	a := mat.NewDense(len(xs), fit+1, nil)
	for i, x := range xs {
		t := (x - p.Shift) / p.Scale
		v := 1.0
		for j := 0; j <= fit; j++ {
			a.Set(i, j, v)
			v *= t
		}
	}
	b := mat.NewVecDense(len(ys), append([]float64(nil), ys...))
	var c mat.VecDense
	if err := c.SolveVec(a, b); err != nil {
		return Polynomial{}, fmt.Errorf("polynomial fit: %w", err)
	}
	for j := 0; j <= fit; j++ {
		p.Coeffs[j] = c.AtVec(j)
	}
	return p, nil
}

func distinct(xs []float64) int {
	seen := make(map[float64]struct{}, len(xs))
	for _, x := range xs {
		seen[x] = struct{}{}
	}
	return len(seen)
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	xs := floats.Span(make([]float64, n), lo, hi)
	xs[n-1] = hi
	return xs
}

// TrendCurve fits ys against xs and samples the fit at n points across the x range.
func TrendCurve(xs, ys []float64, degree, n int) (cx, cy []float64, err error) {
	p, err := PolyFit(xs, ys, degree)
	if err != nil {
		return nil, nil, err
	}
	cx = Linspace(floats.Min(xs), floats.Max(xs), n)
	cy = make([]float64, len(cx))
	for i, x := range cx {
		cy[i] = p.Eval(x)
	}
	return cx, cy, nil
}
