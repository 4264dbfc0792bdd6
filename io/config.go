/*package io reads surface job configuration files, tabulated element
densities, and atom lists, and writes sampled radii.
*/
package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

const ExampleSurfaceFile = `[Surface]

#######################
# Required Parameters #
#######################

# File listing the atoms of the fragment whose surface is computed. Each line
# is "Z x y z" with the atomic number first and coordinates in Angstroms.
Atoms = path/to/fragment.txt

# File listing the surrounding atoms, in the same format. Not required in
# Promolecule mode.
Environment = path/to/environment.txt

# Directory containing one radial density table per element, named by atomic
# number (e.g. 006.dat for carbon). Each line is "radius density" with radii
# in Bohr.
TableDir = path/to/tables

# Output file for the sampled radii.
Output = surface.txt

#######################
# Optional Parameters #
#######################

# Mode is one of [ Stockholder | Promolecule ]. Stockholder surfaces need an
# Environment; Promolecule surfaces ignore it. Default is Stockholder.
# Mode = Stockholder

# Number of azimuth samples per ring and number of rings.
# ThetaBins = 72
# PhiBins = 36

# Ray bracket in Angstroms. Every surface crossing must lie between the two.
# RMin = 0.1
# RMax = 20.0

# Root finder tolerance in Angstroms, and iteration cap per direction.
# Tolerance = 1e-7
# MaxIters = 30

# Level set value. Defaults to 0.5 for Stockholder mode and 2e-4 for
# Promolecule mode.
# Isovalue = 0.5

# Redirect log output to a file.
# LogFile = log.out`

type SurfaceConfig struct {
	// Required
	Atoms       string
	Environment string
	TableDir    string
	Output      string

	// Optional
	Mode               string
	ThetaBins, PhiBins int
	RMin, RMax         float64
	Tolerance          float64
	MaxIters           int
	Isovalue           float64
	LogFile            string
}

type SurfaceWrapper struct {
	Surface SurfaceConfig
}

func DefaultSurfaceWrapper() *SurfaceWrapper {
	con := SurfaceConfig{}
	con.Mode = "Stockholder"
	con.ThetaBins = 72
	con.PhiBins = 36
	con.RMin = 0.1
	con.RMax = 20.0
	con.Tolerance = 1e-7
	con.MaxIters = 30
	con.Isovalue = -1
	return &SurfaceWrapper{con}
}

// ReadSurfaceConfig reads a [Surface] config file into a default-initialized
// wrapper.
func ReadSurfaceConfig(fname string) (*SurfaceConfig, error) {
	wrap := DefaultSurfaceWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return &wrap.Surface, nil
}

func (con *SurfaceConfig) ValidAtoms() bool {
	return con.Atoms != ""
}
func (con *SurfaceConfig) ValidEnvironment() bool {
	return con.Environment != ""
}
func (con *SurfaceConfig) ValidTableDir() bool {
	return con.TableDir != ""
}
func (con *SurfaceConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SurfaceConfig) ValidMode() bool {
	return con.Mode == "Stockholder" || con.Mode == "Promolecule"
}
func (con *SurfaceConfig) ValidBins() bool {
	return con.ThetaBins > 0 && con.PhiBins > 0
}
func (con *SurfaceConfig) ValidBracket() bool {
	return con.RMin > 0 && con.RMin < con.RMax
}
func (con *SurfaceConfig) ValidTolerance() bool {
	return con.Tolerance > 0
}
func (con *SurfaceConfig) ValidMaxIters() bool {
	return con.MaxIters > 0
}
func (con *SurfaceConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

// DefaultedIsovalue returns the configured isovalue, or the mode's
// conventional level set if none was given.
func (con *SurfaceConfig) DefaultedIsovalue() float64 {
	if con.Isovalue > 0 {
		return con.Isovalue
	}
	if con.Mode == "Promolecule" {
		return 2e-4
	}
	return 0.5
}

// CheckInit validates the config after reading, returning a descriptive
// error for the first problem found.
func (con *SurfaceConfig) CheckInit() error {
	if !con.ValidAtoms() {
		return fmt.Errorf("Invalid/non-existent 'Atoms' value.")
	} else if !con.ValidTableDir() {
		return fmt.Errorf("Invalid/non-existent 'TableDir' value.")
	} else if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidMode() {
		return fmt.Errorf(
			"'Mode' must be 'Stockholder' or 'Promolecule', not '%s'.",
			con.Mode,
		)
	} else if con.Mode == "Stockholder" && !con.ValidEnvironment() {
		return fmt.Errorf(
			"Stockholder mode requires an 'Environment' value.",
		)
	} else if !con.ValidBins() {
		return fmt.Errorf(
			"'ThetaBins' and 'PhiBins' must be positive, not %d and %d.",
			con.ThetaBins, con.PhiBins,
		)
	} else if !con.ValidBracket() {
		return fmt.Errorf(
			"'RMin' and 'RMax' must satisfy 0 < RMin < RMax, not %g and %g.",
			con.RMin, con.RMax,
		)
	} else if !con.ValidTolerance() {
		return fmt.Errorf(
			"'Tolerance' must be positive, not %g.", con.Tolerance,
		)
	} else if !con.ValidMaxIters() {
		return fmt.Errorf(
			"'MaxIters' must be positive, not %d.", con.MaxIters,
		)
	}
	return nil
}
