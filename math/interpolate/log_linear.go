package interpolate

import (
	"fmt"
	"math"
)

// LogLinear is a linear interpolator for tables whose nodes are
// approximately uniform in log x. Lookups guess a bucket from the query's
// position in log space and then scan forward to the true bucket, which is
// O(1) for geometrically spaced nodes. Values are interpolated linearly in
// ordinary (not log) space within a bucket.
//
// Queries below xs[0] evaluate to vals[0] and queries above xs[n-1] evaluate
// to vals[n-1]. These clamps are the only bounds checks on the hot path.
type LogLinear struct {
	xs, vals []float64
	lb       float64 // log(xs[0])
	scale    float64 // n / (log(xs[n-1]) - log(xs[0]))
	n        int
}

// NewLogLinear creates a log-space linear interpolator for a strictly
// increasing sequence of positive points, xs, which take on the values given
// by vals.
//
// xs and vals must not be modified throughout the lifetime of the
// interpolator.
func NewLogLinear(xs, vals []float64) *LogLinear {
	if len(xs) != len(vals) {
		panic(fmt.Sprintf(
			"Table given to NewLogLinear() has len(xs) = %d but "+
				"len(vals) = %d.", len(xs), len(vals),
		))
	}
	if len(xs) < 2 {
		panic(fmt.Sprintf(
			"Table given to NewLogLinear() has length of %d.", len(xs),
		))
	}
	if xs[0] <= 0 {
		panic(fmt.Sprintf(
			"Table given to NewLogLinear() starts at %g, but all points "+
				"must be positive.", xs[0],
		))
	}
	for i := 0; i < len(xs)-1; i++ {
		if xs[i+1] <= xs[i] {
			panic("Table given to NewLogLinear() not strictly increasing.")
		}
	}

	lin := &LogLinear{}
	lin.xs, lin.vals = xs, vals
	lin.n = len(xs)
	lin.lb = math.Log(xs[0])
	lin.scale = float64(lin.n) / (math.Log(xs[len(xs)-1]) - lin.lb)
	return lin
}

// Eval returns the interpolated value at q. q must be positive.
func (lin *LogLinear) Eval(q float64) float64 {
	j := int(math.Floor((math.Log(q) - lin.lb) * lin.scale))
	if j <= 0 {
		return lin.vals[0]
	}
	if j >= lin.n-1 {
		return lin.vals[lin.n-1]
	}
	// The guess lands within a node or two of the true bucket for
	// geometrically spaced tables, so a forward scan beats a binary search
	// here. Strict monotonicity of xs guarantees termination.
	for lin.xs[j] < q {
		j++
	}

	x1, x2 := lin.xs[j-1], lin.xs[j]
	v1, v2 := lin.vals[j-1], lin.vals[j]
	return ((v2-v1)/(x2-x1))*(q-x1) + v1
}

// EvalAll evaluates the interpolator at all the given query points. If an
// output array is given, the output is written to that array (the array is
// still returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *LogLinear) EvalAll(qs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(qs))}
	}
	for i, q := range qs {
		out[0][i] = lin.Eval(q)
	}
	return out[0]
}

// EvalAllAdd evaluates the interpolator at all the given query points and
// adds each result to the corresponding element of out. This allows sums
// over many tables without an intermediate buffer per table.
func (lin *LogLinear) EvalAllAdd(qs []float64, out []float64) {
	for i, q := range qs {
		out[i] += lin.Eval(q)
	}
}

// LogInterp interpolates a raw (xs, vals) table at q without constructing an
// interpolator. It is a convenience for one-off lookups outside the density
// pipeline; repeated queries against the same table should use NewLogLinear.
//
// The table must satisfy the same requirements as NewLogLinear.
func LogInterp(q float64, xs, vals []float64) float64 {
	return NewLogLinear(xs, vals).Eval(q)
}
