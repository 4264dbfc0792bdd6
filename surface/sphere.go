package surface

import (
	"fmt"
	"math"
	"runtime"

	"github.com/phil-mansfield/promol/density"
	"github.com/phil-mansfield/promol/geom"
)

// DefaultIsovalue is the level set which defines a Hirshfeld surface.
const DefaultIsovalue = 0.5

// PromoleculeIsovalue is the conventional density level set for promolecule
// isosurfaces, in the tables' native density units.
const PromoleculeIsovalue = 2e-4

// Grid is an ordered set of (azimuth, polar) angle pairs in radians, stored
// as index-aligned slices.
type Grid struct {
	Thetas, Phis []float64
}

// NewGrid creates a grid from parallel azimuth and polar angle slices.
func NewGrid(thetas, phis []float64) *Grid {
	if len(thetas) != len(phis) {
		panic(fmt.Sprintf(
			"Grid given %d azimuths but %d polar angles.",
			len(thetas), len(phis),
		))
	}
	return &Grid{thetas, phis}
}

// Len returns the number of directions in the grid.
func (g *Grid) Len() int { return len(g.Thetas) }

// UVSphereGrid creates a grid of nTheta azimuth samples on each of nPhi rings
// of constant polar angle. Ring centers are offset by half a step so that
// neither pole is sampled directly.
func UVSphereGrid(nTheta, nPhi int) *Grid {
	if nTheta <= 0 || nPhi <= 0 {
		panic(fmt.Sprintf(
			"UVSphereGrid given non-positive sample counts %d, %d.",
			nTheta, nPhi,
		))
	}

	thetas := make([]float64, 0, nTheta*nPhi)
	phis := make([]float64, 0, nTheta*nPhi)
	for j := 0; j < nPhi; j++ {
		phi := (float64(j) + 0.5) * math.Pi / float64(nPhi)
		for i := 0; i < nTheta; i++ {
			thetas = append(thetas, float64(i)*2*math.Pi/float64(nTheta))
			phis = append(phis, phi)
		}
	}
	return &Grid{thetas, phis}
}

// StockholderRadii returns, for every direction in g, the distance from
// origin at which the stockholder weight crosses isovalue, found with
// Brent's method inside [lo, hi]. Directions which fail to converge within
// maxIter iterations report hi.
//
// Distances are in Angstroms. Every direction is independent, and the work
// is spread across all CPUs; results are deterministic regardless of worker
// count. The caller must bracket the crossing: lo must sit inside the
// isovalue contour and hi outside it.
func StockholderRadii(
	s *density.StockholderWeight, origin geom.Vec, g *Grid,
	lo, hi, tol float64, maxIter int, isovalue float64,
) []float64 {
	return isoRadii(s.Weight, origin, g, lo, hi, tol, maxIter, isovalue)
}

// PromoleculeRadii is StockholderRadii for a bare promolecule density
// crossing isovalue (conventionally PromoleculeIsovalue).
func PromoleculeRadii(
	p *density.PromoleculeDensity, origin geom.Vec, g *Grid,
	lo, hi, tol float64, maxIter int, isovalue float64,
) []float64 {
	return isoRadii(p.Rho, origin, g, lo, hi, tol, maxIter, isovalue)
}

func isoRadii(
	field func(geom.Vec) float64, origin geom.Vec, g *Grid,
	lo, hi, tol float64, maxIter int, isovalue float64,
) []float64 {
	if lo >= hi {
		panic(fmt.Sprintf("Invalid bracket [%g, %g].", lo, hi))
	}
	if tol <= 0 {
		panic(fmt.Sprintf("Non-positive tolerance %g.", tol))
	}
	if maxIter <= 0 {
		panic(fmt.Sprintf("Non-positive iteration cap %d.", maxIter))
	}

	rs := make([]float64, g.Len())
	workers := runtime.NumCPU()
	if workers > g.Len() {
		workers = g.Len()
	}
	if workers < 1 {
		return rs
	}

	out := make(chan int, workers)
	sample := func(id int) {
		// Each worker owns the strided index set id, id+workers, ... and
		// writes only to those output slots.
		for i := id; i < g.Len(); i += workers {
			ray := geom.Ray{
				Origin: origin,
				Dir:    geom.Direction(g.Thetas[i], g.Phis[i]),
			}
			f := func(t float64) float64 {
				return field(ray.At(t)) - isovalue
			}
			rs[i], _ = brent(f, lo, hi, tol, maxIter)
		}
		out <- id
	}

	for id := 0; id < workers-1; id++ {
		go sample(id)
	}
	sample(workers - 1)

	for i := 0; i < workers; i++ {
		<-out
	}
	return rs
}
