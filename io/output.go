package io

import (
	"fmt"
	"os"

	"github.com/phil-mansfield/promol/surface"
)

// WriteRadii writes one "theta phi radius" line per grid direction.
func WriteRadii(file string, g *surface.Grid, rs []float64) error {
	if g.Len() != len(rs) {
		return fmt.Errorf(
			"Grid has %d directions but %d radii were given.",
			g.Len(), len(rs),
		)
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# theta phi r\n")
	for i := range rs {
		_, err := fmt.Fprintf(
			f, "%.10g %.10g %.10g\n", g.Thetas[i], g.Phis[i], rs[i],
		)
		if err != nil {
			return err
		}
	}
	return nil
}
