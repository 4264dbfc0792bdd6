package io

import (
	"fmt"
	"path"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/promol/density"
	"github.com/phil-mansfield/promol/geom"
)

// ReadRadialTable reads a whitespace-separated (radius, density) table. Radii
// are in Bohr.
func ReadRadialTable(file string) (*density.RadialTable, error) {
	cols, err := table.ReadTable(file, []int{0, 1}, nil)
	if err != nil {
		return nil, err
	}
	tab, err := density.NewRadialTable(cols[0], cols[1])
	if err != nil {
		return nil, fmt.Errorf("Table file '%s': %s", file, err.Error())
	}
	return tab, nil
}

// ReadAtoms reads a whitespace-separated atom list with columns
// (atomic number, x, y, z), coordinates in Angstroms.
func ReadAtoms(file string) ([]density.Element, []geom.Vec, error) {
	cols, err := table.ReadTable(file, []int{0, 1, 2, 3}, nil)
	if err != nil {
		return nil, nil, err
	}

	els := make([]density.Element, len(cols[0]))
	positions := make([]geom.Vec, len(cols[0]))
	for i := range els {
		el := density.Element(int(cols[0][i]))
		if el < 1 || el > density.MaxElement {
			return nil, nil, fmt.Errorf(
				"Atom %d in '%s' has invalid atomic number %g.",
				i, file, cols[0][i],
			)
		}
		els[i] = el
		positions[i] = geom.Vec{cols[1][i], cols[2][i], cols[3][i]}
	}
	return els, positions, nil
}

// ElementTableName returns the file name holding an element's radial density
// table, e.g. "006.dat" for carbon.
func ElementTableName(el density.Element) string {
	return fmt.Sprintf("%03d.dat", int(el))
}

// ReadElementTables reads the radial density table of every element in els
// from dir, reading each distinct element's file once and sharing the
// resulting table between all atoms of that element.
func ReadElementTables(
	dir string, els []density.Element,
) ([]*density.RadialTable, error) {
	cache := map[density.Element]*density.RadialTable{}
	tabs := make([]*density.RadialTable, len(els))
	for i, el := range els {
		if tab, ok := cache[el]; ok {
			tabs[i] = tab
			continue
		}
		tab, err := ReadRadialTable(path.Join(dir, ElementTableName(el)))
		if err != nil {
			return nil, err
		}
		cache[el] = tab
		tabs[i] = tab
	}
	return tabs, nil
}

// ReadDensity reads an atom list and its element tables and assembles a
// promolecule density.
func ReadDensity(
	atomFile, tableDir string,
) (*density.PromoleculeDensity, error) {
	els, positions, err := ReadAtoms(atomFile)
	if err != nil {
		return nil, err
	}
	tabs, err := ReadElementTables(tableDir, els)
	if err != nil {
		return nil, err
	}
	return density.NewPromoleculeDensity(positions, tabs, els)
}
