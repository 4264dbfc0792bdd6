package surface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrentLinear(t *testing.T) {
	f := func(x float64) float64 { return 3*x - 6 }
	root, ok := brent(f, 0, 10, 1e-10, 60)
	assert.True(t, ok)
	assert.InDelta(t, 2.0, root, 1e-9)
}

func TestBrentSqrt2(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	root, ok := brent(f, 0, 2, 1e-12, 80)
	assert.True(t, ok)
	assert.InDelta(t, math.Sqrt2, root, 1e-10)
}

func TestBrentSigmoidCrossing(t *testing.T) {
	// A weight-like monotonic profile crossing one half at a known radius.
	tStar := 1.37
	f := func(x float64) float64 {
		return 1/(1+math.Exp(8*(x-tStar))) - 0.5
	}
	root, ok := brent(f, 0.1, 20, 1e-7, 40)
	assert.True(t, ok)
	assert.InDelta(t, tStar, root, 1e-6)
}

func TestBrentNonConvergenceReturnsUpper(t *testing.T) {
	f := func(x float64) float64 { return x - 0.5 }
	root, ok := brent(f, 0, 64, 1e-12, 2)
	assert.False(t, ok)
	assert.Equal(t, 64.0, root)
}
