package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/phil-mansfield/promol/density"
	"github.com/phil-mansfield/promol/geom"
	"github.com/phil-mansfield/promol/io"
	"github.com/phil-mansfield/promol/surface"
)

func main() {
	var (
		surfaceFile   string
		exampleConfig string
	)
	vars := map[string]*string{
		"Surface":       &surfaceFile,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&surfaceFile, "Surface", "",
		"Configuration file for [Surface] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Surface'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Surface":
		con, err := io.ReadSurfaceConfig(surfaceFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		if err := con.CheckInit(); err != nil {
			log.Fatal(err.Error())
		}
		surfaceMain(con)
	case "ExampleConfig":
		switch exampleConfig {
		case "Surface":
			fmt.Println(io.ExampleSurfaceFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only " +
					"recognized argument is 'Surface'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but promol only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func surfaceMain(con *io.SurfaceConfig) {
	if con.ValidLogFile() {
		f, err := os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer f.Close()
		log.SetOutput(f)
	}

	log.Printf("Running %s surface main.", con.Mode)

	inside, err := io.ReadDensity(con.Atoms, con.TableDir)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Read %d fragment atoms.", inside.NumAtoms())

	origin := centroid(inside)
	grid := surface.UVSphereGrid(con.ThetaBins, con.PhiBins)
	isovalue := con.DefaultedIsovalue()

	var rs []float64
	switch con.Mode {
	case "Stockholder":
		outside, err := io.ReadDensity(con.Environment, con.TableDir)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Read %d environment atoms.", outside.NumAtoms())

		s, err := density.NewStockholderWeight(inside, outside)
		if err != nil {
			log.Fatal(err.Error())
		}
		rs = surface.StockholderRadii(
			s, origin, grid, con.RMin, con.RMax,
			con.Tolerance, con.MaxIters, isovalue,
		)
	case "Promolecule":
		rs = surface.PromoleculeRadii(
			inside, origin, grid, con.RMin, con.RMax,
			con.Tolerance, con.MaxIters, isovalue,
		)
	}

	log.Printf("Sampled %d directions.", grid.Len())

	if err := io.WriteRadii(con.Output, grid, rs); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %s.", con.Output)
}

func centroid(p *density.PromoleculeDensity) geom.Vec {
	c := geom.Vec{}
	for i := 0; i < p.NumAtoms(); i++ {
		c = c.Add(p.Position(i))
	}
	return c.Scale(1 / float64(p.NumAtoms()))
}
