package density

import (
	"fmt"

	"github.com/phil-mansfield/promol/math/interpolate"
)

// RadialTable is a precomputed spherically averaged density (or gradient
// magnitude) profile for a single element. Radii are in Bohr and must be
// strictly increasing; the spacing is assumed to be approximately geometric.
//
// A RadialTable is immutable once created and is safe to share between every
// atom of the same element and between goroutines.
type RadialTable struct {
	rs, vals []float64
	interp   *interpolate.LogLinear
}

// NewRadialTable creates a RadialTable from a radius column and a value
// column. It rejects tables which violate the interpolator's requirements so
// that the per-lookup hot path does not have to check them.
func NewRadialTable(rs, vals []float64) (*RadialTable, error) {
	if len(rs) != len(vals) {
		return nil, fmt.Errorf(
			"Table has %d radii but %d values.", len(rs), len(vals),
		)
	}
	if len(rs) < 2 {
		return nil, fmt.Errorf(
			"Table needs at least 2 points, but has %d.", len(rs),
		)
	}
	if rs[0] <= 0 {
		return nil, fmt.Errorf(
			"Table radii must be positive, but start at %g.", rs[0],
		)
	}
	for i := 0; i < len(rs)-1; i++ {
		if rs[i+1] <= rs[i] {
			return nil, fmt.Errorf(
				"Table radii must be strictly increasing, but "+
					"rs[%d] = %g and rs[%d] = %g.", i, rs[i], i+1, rs[i+1],
			)
		}
	}

	return &RadialTable{rs, vals, interpolate.NewLogLinear(rs, vals)}, nil
}

// Len returns the number of nodes in the table.
func (t *RadialTable) Len() int { return len(t.rs) }

// MaxRadius returns the largest tabulated radius in Bohr.
func (t *RadialTable) MaxRadius() float64 { return t.rs[len(t.rs)-1] }

// Eval returns the tabulated value at a radius of r Bohr.
func (t *RadialTable) Eval(r float64) float64 { return t.interp.Eval(r) }

// EvalAllAdd adds the tabulated value at every radius in rs to the
// corresponding element of out.
func (t *RadialTable) EvalAllAdd(rs, out []float64) {
	t.interp.EvalAllAdd(rs, out)
}
