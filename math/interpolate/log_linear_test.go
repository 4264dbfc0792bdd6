package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func logSpaced(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	llo, lhi := math.Log(lo), math.Log(hi)
	for i := range xs {
		xs[i] = math.Exp(llo + (lhi-llo)*float64(i)/float64(n-1))
	}
	return xs
}

func TestLogLinearNodeRecovery(t *testing.T) {
	xs := logSpaced(0.05, 30, 40)
	vals := make([]float64, len(xs))
	for i, x := range xs {
		vals[i] = math.Exp(-x) * 7
	}
	lin := NewLogLinear(xs, vals)

	for i := range xs {
		assert.InDelta(t, vals[i], lin.Eval(xs[i]), 1e-10,
			"node %d", i)
	}
}

func TestLogLinearClamp(t *testing.T) {
	xs := []float64{1, 2, 4, 8}
	vals := []float64{10, 6, 2, 1}
	lin := NewLogLinear(xs, vals)

	assert.Equal(t, 10.0, lin.Eval(0.5), "left clamp")
	assert.Equal(t, 10.0, lin.Eval(1e-8), "far left clamp")
	assert.Equal(t, 1.0, lin.Eval(100), "right clamp")
}

func TestLogLinearBracketLinearity(t *testing.T) {
	xs := []float64{1, 2, 4, 8}
	vals := []float64{10, 6, 2, 1}
	lin := NewLogLinear(xs, vals)

	// q = 2 sits exactly on a node, q = 3 is halfway through [2, 4] in
	// ordinary space, so the result is the ordinary linear interpolant, not
	// the log one.
	assert.InDelta(t, 6.0, lin.Eval(2), 1e-12)
	assert.InDelta(t, 4.0, lin.Eval(3), 1e-12)

	// The log-space bucket guess for q = 6 already lands on the last node,
	// so the right clamp fires instead of the [4, 8] interpolant.
	assert.Equal(t, 1.0, lin.Eval(6))
}

func TestLogLinearEvalAll(t *testing.T) {
	xs := logSpaced(0.1, 10, 30)
	vals := make([]float64, len(xs))
	for i, x := range xs {
		vals[i] = 1 / (1 + x*x)
	}
	lin := NewLogLinear(xs, vals)

	qs := []float64{0.01, 0.3, 1, 2.5, 9.9, 50}
	out := lin.EvalAll(qs)
	assert.Len(t, out, len(qs))
	for i, q := range qs {
		assert.Equal(t, lin.Eval(q), out[i])
	}

	buf := make([]float64, len(qs))
	ret := lin.EvalAll(qs, buf)
	assert.Equal(t, out, buf)
	assert.Equal(t, out, ret)
}

func TestLogLinearEvalAllAdd(t *testing.T) {
	xs := logSpaced(0.1, 10, 20)
	vals := make([]float64, len(xs))
	for i := range xs {
		vals[i] = float64(i)
	}
	lin := NewLogLinear(xs, vals)

	qs := []float64{0.2, 1, 3}
	out := []float64{100, 200, 300}
	lin.EvalAllAdd(qs, out)
	for i, q := range qs {
		assert.InDelta(t, 100*float64(i+1)+lin.Eval(q), out[i], 1e-12)
	}
}

func TestLogInterp(t *testing.T) {
	xs := []float64{1, 2, 4, 8}
	vals := []float64{10, 6, 2, 1}

	assert.InDelta(t, 6.0, LogInterp(2, xs, vals), 1e-12)
	assert.InDelta(t, 4.0, LogInterp(3, xs, vals), 1e-12)
	assert.Equal(t, 10.0, LogInterp(0.5, xs, vals))
	assert.Equal(t, 1.0, LogInterp(100, xs, vals))
}

func TestNewLogLinearPanics(t *testing.T) {
	assert.Panics(t, func() { NewLogLinear([]float64{1, 2}, []float64{1}) },
		"length mismatch")
	assert.Panics(t, func() { NewLogLinear([]float64{1}, []float64{1}) },
		"too short")
	assert.Panics(t, func() { NewLogLinear([]float64{0, 1}, []float64{1, 2}) },
		"non-positive point")
	assert.Panics(t, func() {
		NewLogLinear([]float64{1, 3, 2}, []float64{1, 2, 3})
	}, "non-monotonic")
}
