package main

import (
	"log"
	"math"
	"os"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/promol/density"
	"github.com/phil-mansfield/promol/geom"
	"github.com/phil-mansfield/promol/io"
)

// Plots the stockholder weight along equatorial rays from the fragment
// centroid, one curve per azimuth, together with the 0.5 level that the
// surface sampler solves for.

const (
	rMin, rMax = 0.05, 6.0
	samples    = 300
	curves     = 6
)

var colors = []string{"r", "g", "b", "c", "m", "y"}

func main() {
	if len(os.Args) != 5 {
		log.Fatalf(
			"Required file use: $ %s atom_file env_file table_dir out.png",
			os.Args[0],
		)
	}
	atomFile, envFile, tableDir, out :=
		os.Args[1], os.Args[2], os.Args[3], os.Args[4]

	inside, err := io.ReadDensity(atomFile, tableDir)
	if err != nil {
		log.Fatal(err.Error())
	}
	outside, err := io.ReadDensity(envFile, tableDir)
	if err != nil {
		log.Fatal(err.Error())
	}
	s, err := density.NewStockholderWeight(inside, outside)
	if err != nil {
		log.Fatal(err.Error())
	}

	origin := geom.Vec{}
	for i := 0; i < inside.NumAtoms(); i++ {
		origin = origin.Add(inside.Position(i))
	}
	origin = origin.Scale(1 / float64(inside.NumAtoms()))

	rs := make([]float64, samples)
	for i := range rs {
		rs[i] = rMin * math.Pow(rMax/rMin, float64(i)/float64(samples-1))
	}

	plt.Figure()
	plt.Plot([]float64{rMin, rMax}, []float64{0.5, 0.5}, "k", plt.LW(2))

	ws := make([]float64, samples)
	pts := make([]geom.Vec, samples)
	for c := 0; c < curves; c++ {
		theta := 2 * math.Pi * float64(c) / float64(curves)
		ray := geom.Ray{Origin: origin, Dir: geom.Direction(theta, math.Pi/2)}
		for i, r := range rs {
			pts[i] = ray.At(r)
		}
		s.WeightAll(pts, ws)
		plt.Plot(rs, ws, plt.LW(2), plt.C(colors[c%len(colors)]))
	}

	plt.Title("Stockholder weight profiles")
	plt.XLabel(`$r$ $[{\rm \AA}]$`, plt.FontSize(16))
	plt.YLabel(`$w(r)$`, plt.FontSize(16))
	plt.XScale("log")
	plt.YLim(0, 1)
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"), plt.Which("both"))
	plt.SaveFig(out)

	plt.Execute()
}
