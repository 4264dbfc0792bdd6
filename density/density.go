/*package density evaluates approximate molecular electron densities built by
summing tabulated isolated-atom profiles ("promolecule densities") and the
stockholder weights used to partition space between two such densities.

Positions handed to this package are in Angstroms; they are converted to
Bohr internally before any table lookup. Table values are passed through
unconverted.

Evaluation never mutates a density, so a single PromoleculeDensity or
StockholderWeight may be shared freely between goroutines.
*/
package density

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/promol/geom"
)

// AngstromPerBohr converts Bohr radii to Angstroms. Distances in Angstroms
// are divided by this before being looked up in a RadialTable.
const AngstromPerBohr = 0.5291772108

// PromoleculeDensity is a sum of isolated-atom radial density profiles
// centered on fixed atomic positions. positions[i] is evaluated with
// tables[i]; atoms of the same element share a single table.
type PromoleculeDensity struct {
	positions []geom.Vec
	tables    []*RadialTable
	els       []Element
	maxRadius float64
}

// NewPromoleculeDensity creates a density from parallel position and table
// slices. els gives each atom's element and may be nil if no property which
// needs element data (e.g. DNorm) will be evaluated.
func NewPromoleculeDensity(
	positions []geom.Vec, tables []*RadialTable, els []Element,
) (*PromoleculeDensity, error) {
	if len(positions) != len(tables) {
		return nil, fmt.Errorf(
			"Density has %d positions but %d tables.",
			len(positions), len(tables),
		)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("Density needs at least one atom.")
	}
	if els != nil && len(els) != len(positions) {
		return nil, fmt.Errorf(
			"Density has %d positions but %d elements.",
			len(positions), len(els),
		)
	}
	for i, t := range tables {
		if t == nil {
			return nil, fmt.Errorf("Atom %d has a nil table.", i)
		}
	}

	maxRadius := 0.0
	for _, t := range tables {
		if r := t.MaxRadius() * AngstromPerBohr; r > maxRadius {
			maxRadius = r
		}
	}

	return &PromoleculeDensity{positions, tables, els, maxRadius}, nil
}

// NumAtoms returns the number of atoms in the density.
func (p *PromoleculeDensity) NumAtoms() int { return len(p.positions) }

// Position returns the position of atom i in Angstroms.
func (p *PromoleculeDensity) Position(i int) geom.Vec { return p.positions[i] }

// MaxRadius returns the largest tabulated radius of any atom's profile in
// Angstroms. Density values beyond this distance from every atom are pure
// clamp fill and carry no information, which makes it a natural upper bound
// for sampling brackets.
func (p *PromoleculeDensity) MaxRadius() float64 { return p.maxRadius }

// Rho returns the promolecule density at pt.
func (p *PromoleculeDensity) Rho(pt geom.Vec) float64 {
	rho := 0.0
	for i, pos := range p.positions {
		rho += p.tables[i].Eval(pt.Dist(pos) / AngstromPerBohr)
	}
	return rho
}

// RhoAll evaluates the density at all the given points. If an output array
// is given, the output is written to that array (the array is still returned
// as a convenience).
//
// If more than one output array is provided, only the first is used.
func (p *PromoleculeDensity) RhoAll(
	pts []geom.Vec, out ...[]float64,
) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(pts))}
	}
	buf := out[0]
	if len(buf) != len(pts) {
		panic(fmt.Sprintf(
			"RhoAll() given %d points but an output buffer of length %d.",
			len(pts), len(buf),
		))
	}
	for i := range buf {
		buf[i] = 0
	}

	// Atoms in the outer loop so each table's interpolator streams over a
	// contiguous distance buffer. The summation order over atoms is fixed,
	// so results do not depend on batching.
	rs := make([]float64, len(pts))
	for ai, pos := range p.positions {
		for pi, pt := range pts {
			rs[pi] = pt.Dist(pos) / AngstromPerBohr
		}
		p.tables[ai].EvalAllAdd(rs, buf)
	}
	return buf
}

// Nearest returns the index of the atom closest to pt and the distance to it
// in Angstroms.
func (p *PromoleculeDensity) Nearest(pt geom.Vec) (i int, d float64) {
	i, d = 0, math.Inf(1)
	for j, pos := range p.positions {
		if dj := pt.Dist(pos); dj < d {
			i, d = j, dj
		}
	}
	return i, d
}

// element returns the element of atom i, panicking if element data was not
// supplied at construction.
func (p *PromoleculeDensity) element(i int) Element {
	if p.els == nil {
		panic("Density was constructed without element data.")
	}
	return p.els[i]
}
