// Package input models the YAML input file of a lipid order-parameter
// analysis and validates it before any analysis work begins.
//
// The package is pure: it never touches the file system. None of the
// paths referenced by a loaded Analysis are opened or checked for
// existence here; that belongs to the analysis engine that consumes
// the configuration. Loading a file from disk is handled by
// internal/io/input.
//
// # Variant fields
//
// Several keys of the input file are polymorphic. Their kind is
// selected by a YAML local tag, for example:
//
//	type: !AAOrder
//	  heavy_atoms: "resname POPC and name C210 C215"
//	  hydrogens: "resname POPC and name H101 H102 H103"
//
// Each such field is represented by a struct carrying a Kind
// discriminant and one pointer per variant; exactly one pointer is
// set. Unknown tags are rejected during decoding.
//
// # Lifecycle
//
// An Analysis is constructed once (from a document or
// programmatically), validated immediately, and treated as read-only
// afterwards.
package input

import "math"

// Analysis is the root of an analysis input file. It describes what to
// calculate, from which files, and where to write the results.
type Analysis struct {
	// Structure is the path to the structure file (TPR, GRO, PDB...).
	Structure string `yaml:"structure"`

	// Trajectory is one or more trajectory files read back to back.
	Trajectory PathList `yaml:"trajectory"`

	// Index is the path to an NDX file with atom groups.
	Index string `yaml:"index"`

	// Bonds is an optional path to a file the bond topology is read
	// from, when the structure file does not provide it.
	Bonds string `yaml:"bonds"`

	// Type selects the kind of order parameters to calculate.
	Type *OrderType `yaml:"type"`

	// Output is the path to the main YAML results file.
	Output string `yaml:"output"`

	// Optional results in other formats.
	OutputTab string `yaml:"output_tab"`
	OutputXvg string `yaml:"output_xvg"`
	OutputCsv string `yaml:"output_csv"`

	// MembraneNormal is the direction of the membrane normal.
	MembraneNormal *Normal `yaml:"membrane_normal"`

	// Begin and End delimit the analyzed part of the trajectory, in
	// ps. The defaults cover the whole trajectory.
	Begin float64 `yaml:"begin"`
	End   float64 `yaml:"end"`

	// Step means every Nth frame is analyzed.
	Step int `yaml:"step" validate:"min=1"`

	// MinSamples is the number of samples a bond must collect for its
	// order parameter to be reported.
	MinSamples int `yaml:"min_samples" validate:"min=1"`

	// NThreads is the number of threads the analysis engine should
	// use. It does not affect loading of this file.
	NThreads int `yaml:"n_threads" validate:"min=1"`

	// Leaflets optionally assigns lipids to membrane leaflets so
	// order parameters are also reported per leaflet.
	Leaflets *Leaflets `yaml:"leaflets"`

	// Map optionally configures spatial maps of order parameters.
	Map *OrderMap `yaml:"map"`

	// EstimateError optionally configures block-averaging error
	// estimation.
	EstimateError *ErrorEstimate `yaml:"estimate_error"`

	// Geometry optionally restricts the analysis to a region of the
	// membrane.
	Geometry *Geometry `yaml:"geometry"`

	// Overwrite makes the engine overwrite existing output files
	// instead of backing them up.
	Overwrite bool `yaml:"overwrite"`

	// Silent suppresses progress reporting of the engine.
	Silent bool `yaml:"silent"`

	// HandlePBC makes geometry calculations aware of periodic
	// boundary conditions.
	HandlePBC bool `yaml:"handle_pbc"`
}

// New returns an Analysis with the engine defaults filled in:
// whole trajectory, every frame, one thread, PBC handling on.
// Required fields (paths, analysis type, membrane normal) are left
// empty and must be provided before the Analysis validates.
func New() *Analysis {
	return &Analysis{
		Begin:      0,
		End:        math.Inf(1),
		Step:       1,
		MinSamples: 1,
		NThreads:   1,
		HandlePBC:  true,
	}
}
