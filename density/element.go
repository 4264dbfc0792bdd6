package density

import (
	"fmt"
	"strings"
)

// Element identifies a chemical element by atomic number.
type Element int

// elementData holds per-element reference radii in Angstroms.
type elementData struct {
	symbol   string
	cov, vdw float64
}

var elements = []elementData{
	{"H", 0.23, 1.09}, {"He", 1.50, 1.40}, {"Li", 1.28, 1.82},
	{"Be", 0.96, 2.00}, {"B", 0.83, 2.00}, {"C", 0.68, 1.70},
	{"N", 0.68, 1.55}, {"O", 0.68, 1.52}, {"F", 0.64, 1.47},
	{"Ne", 1.50, 1.54}, {"Na", 1.66, 2.27}, {"Mg", 1.41, 1.73},
	{"Al", 1.21, 2.00}, {"Si", 1.20, 2.10}, {"P", 1.05, 1.80},
	{"S", 1.02, 1.80}, {"Cl", 0.99, 1.75}, {"Ar", 1.51, 1.88},
	{"K", 2.03, 2.75}, {"Ca", 1.76, 2.00}, {"Sc", 1.70, 2.00},
	{"Ti", 1.60, 2.00}, {"V", 1.53, 2.00}, {"Cr", 1.39, 2.00},
	{"Mn", 1.61, 2.00}, {"Fe", 1.52, 2.00}, {"Co", 1.26, 2.00},
	{"Ni", 1.24, 1.63}, {"Cu", 1.32, 1.40}, {"Zn", 1.22, 1.39},
	{"Ga", 1.22, 1.87}, {"Ge", 1.17, 2.00}, {"As", 1.21, 1.85},
	{"Se", 1.22, 1.90}, {"Br", 1.21, 1.85}, {"Kr", 1.50, 2.02},
	{"Rb", 2.20, 2.00}, {"Sr", 1.95, 2.00}, {"Y", 1.90, 2.00},
	{"Zr", 1.75, 2.00}, {"Nb", 1.64, 2.00}, {"Mo", 1.54, 2.00},
	{"Tc", 1.47, 2.00}, {"Ru", 1.46, 2.00}, {"Rh", 1.45, 2.00},
	{"Pd", 1.39, 1.63}, {"Ag", 1.45, 1.72}, {"Cd", 1.44, 1.58},
	{"In", 1.42, 1.93}, {"Sn", 1.39, 2.17}, {"Sb", 1.39, 2.00},
	{"Te", 1.47, 2.06}, {"I", 1.40, 1.98}, {"Xe", 1.50, 2.16},
	{"Cs", 2.44, 2.00}, {"Ba", 2.15, 2.00}, {"La", 2.07, 2.00},
	{"Ce", 2.04, 2.00}, {"Pr", 2.03, 2.00}, {"Nd", 2.01, 2.00},
	{"Pm", 1.99, 2.00}, {"Sm", 1.98, 2.00}, {"Eu", 1.98, 2.00},
	{"Gd", 1.96, 2.00}, {"Tb", 1.94, 2.00}, {"Dy", 1.92, 2.00},
	{"Ho", 1.92, 2.00}, {"Er", 1.89, 2.00}, {"Tm", 1.90, 2.00},
	{"Yb", 1.87, 2.00}, {"Lu", 1.87, 2.00}, {"Hf", 1.75, 2.00},
	{"Ta", 1.70, 2.00}, {"W", 1.62, 2.00}, {"Re", 1.51, 2.00},
	{"Os", 1.44, 2.00}, {"Ir", 1.41, 2.00}, {"Pt", 1.36, 1.72},
	{"Au", 1.50, 1.66}, {"Hg", 1.32, 1.55}, {"Tl", 1.45, 1.96},
	{"Pb", 1.46, 2.02}, {"Bi", 1.48, 2.00}, {"Po", 1.40, 2.00},
	{"At", 1.21, 2.00}, {"Rn", 1.50, 2.00}, {"Fr", 2.60, 2.00},
	{"Ra", 2.21, 2.00}, {"Ac", 2.15, 2.00}, {"Th", 2.06, 2.00},
	{"Pa", 2.00, 2.00}, {"U", 1.96, 1.86}, {"Np", 1.90, 2.00},
	{"Pu", 1.87, 2.00}, {"Am", 1.80, 2.00}, {"Cm", 1.69, 2.00},
	{"Bk", 1.54, 2.00}, {"Cf", 1.83, 2.00}, {"Es", 1.50, 2.00},
	{"Fm", 1.50, 2.00}, {"Md", 1.50, 2.00}, {"No", 1.50, 2.00},
	{"Lr", 1.50, 2.00},
}

// MaxElement is the largest atomic number with tabulated reference radii.
const MaxElement = Element(103)

func (el Element) valid() bool {
	return el >= 1 && int(el) <= len(elements)
}

// Symbol returns the element's chemical symbol.
func (el Element) Symbol() string {
	if !el.valid() {
		panic(fmt.Sprintf("No element with atomic number %d.", int(el)))
	}
	return elements[el-1].symbol
}

// VdwRadius returns the element's van der Waals radius in Angstroms.
func (el Element) VdwRadius() float64 {
	if !el.valid() {
		panic(fmt.Sprintf("No element with atomic number %d.", int(el)))
	}
	return elements[el-1].vdw
}

// CovalentRadius returns the element's covalent radius in Angstroms.
func (el Element) CovalentRadius() float64 {
	if !el.valid() {
		panic(fmt.Sprintf("No element with atomic number %d.", int(el)))
	}
	return elements[el-1].cov
}

// ElementFromSymbol returns the element with the given chemical symbol. The
// lookup is case-insensitive.
func ElementFromSymbol(s string) (el Element, ok bool) {
	for i := range elements {
		if strings.EqualFold(elements[i].symbol, s) {
			return Element(i + 1), true
		}
	}
	return 0, false
}
