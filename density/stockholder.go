package density

import (
	"fmt"

	"github.com/phil-mansfield/promol/geom"
)

// StockholderWeight is the fractional share of the total density at a point
// which is attributable to an "inside" density rather than its surrounding
// "outside" density. Its 0.5 level set is the Hirshfeld surface of the
// inside fragment.
//
// The weight holds references to both densities, which must stay alive and
// unmodified for its lifetime.
type StockholderWeight struct {
	Inside, Outside *PromoleculeDensity

	// Background is an optional constant density added to the denominator,
	// which suppresses the weight far from all atoms. Zero by default.
	Background float64
}

// NewStockholderWeight creates a stockholder weight from an inside and an
// outside density.
func NewStockholderWeight(
	inside, outside *PromoleculeDensity,
) (*StockholderWeight, error) {
	if inside == nil || outside == nil {
		return nil, fmt.Errorf("Stockholder weight given a nil density.")
	}
	return &StockholderWeight{inside, outside, 0}, nil
}

// Weight returns rho_in / (rho_in + rho_out + Background) at pt.
//
// If both densities underflow to zero far from every atom and Background is
// zero, the result is NaN. Callers control this by keeping sampling brackets
// inside MaxRadius of at least one density.
func (s *StockholderWeight) Weight(pt geom.Vec) float64 {
	in := s.Inside.Rho(pt)
	return in / (in + s.Outside.Rho(pt) + s.Background)
}

// WeightAll evaluates the weight at all the given points. If an output array
// is given, the output is written to that array (the array is still returned
// as a convenience).
//
// If more than one output array is provided, only the first is used.
func (s *StockholderWeight) WeightAll(
	pts []geom.Vec, out ...[]float64,
) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(pts))}
	}
	in := s.Inside.RhoAll(pts, out[0])
	ex := s.Outside.RhoAll(pts)
	for i := range in {
		in[i] = in[i] / (in[i] + ex[i] + s.Background)
	}
	return in
}

// DNorm returns the normalized contact distance at pt,
//
//	(d_i - vdw_i)/vdw_i + (d_e - vdw_e)/vdw_e,
//
// where d_i and d_e are the distances from pt to the nearest inside and
// outside atoms and vdw_i, vdw_e are those atoms' van der Waals radii. Both
// densities must have been constructed with element data.
func (s *StockholderWeight) DNorm(pt geom.Vec) float64 {
	i, di := s.Inside.Nearest(pt)
	e, de := s.Outside.Nearest(pt)
	vi := s.Inside.element(i).VdwRadius()
	ve := s.Outside.element(e).VdwRadius()
	return (di-vi)/vi + (de-ve)/ve
}

// DNormAll evaluates DNorm at all the given points. If an output array is
// given, the output is written to that array (the array is still returned as
// a convenience).
//
// If more than one output array is provided, only the first is used.
func (s *StockholderWeight) DNormAll(
	pts []geom.Vec, out ...[]float64,
) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(pts))}
	}
	for i, pt := range pts {
		out[0][i] = s.DNorm(pt)
	}
	return out[0]
}
