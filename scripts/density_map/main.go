package main

import (
	"log"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/phil-mansfield/promol/geom"
	"github.com/phil-mansfield/promol/io"
)

// Renders log10 of the promolecule density on the z = 0 plane as a heat map.

type densitySlice struct {
	x0, y0, d float64
	nx, ny    int
	vals      []float64
}

func (s *densitySlice) Dims() (c, r int)   { return s.nx, s.ny }
func (s *densitySlice) Z(c, r int) float64 { return s.vals[r*s.nx+c] }
func (s *densitySlice) X(c int) float64    { return s.x0 + float64(c)*s.d }
func (s *densitySlice) Y(r int) float64    { return s.y0 + float64(r)*s.d }

func main() {
	if len(os.Args) != 5 {
		log.Fatalf(
			"Required file use: $ %s atom_file table_dir half_width out.png",
			os.Args[0],
		)
	}
	atomFile, tableDir, out := os.Args[1], os.Args[2], os.Args[4]
	halfWidth, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil || halfWidth <= 0 {
		log.Fatalf("Invalid half width '%s'.", os.Args[3])
	}

	p, err := io.ReadDensity(atomFile, tableDir)
	if err != nil {
		log.Fatal(err.Error())
	}

	n := 256
	s := &densitySlice{
		x0: -halfWidth, y0: -halfWidth,
		d:  2 * halfWidth / float64(n-1),
		nx: n, ny: n,
	}

	pts := make([]geom.Vec, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			pts[r*n+c] = geom.Vec{s.X(c), s.Y(r), 0}
		}
	}
	s.vals = p.RhoAll(pts)
	for i, rho := range s.vals {
		s.vals[i] = math.Log10(rho)
	}

	pl := plot.New()
	pl.Title.Text = "Promolecule density"
	pl.X.Label.Text = "x [A]"
	pl.Y.Label.Text = "y [A]"
	pl.Add(plotter.NewHeatMap(s, palette.Heat(48, 1)))

	if err := pl.Save(6*vg.Inch, 6*vg.Inch, out); err != nil {
		log.Fatal(err.Error())
	}
}
