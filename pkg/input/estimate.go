package input

import "gopkg.in/yaml.v3"

// ErrorEstimate configures error estimation of the analysis using
// block averaging.
type ErrorEstimate struct {
	// NBlocks is the number of blocks the trajectory is split into.
	NBlocks int `yaml:"n_blocks"`
	// OutputConvergence is an optional path to an XVG file where the
	// convergence of the analysis is written.
	OutputConvergence string `yaml:"output_convergence"`
}

// DefaultErrorEstimate returns an ErrorEstimate with the engine
// default of 5 blocks and no convergence output.
func DefaultErrorEstimate() ErrorEstimate {
	return ErrorEstimate{NBlocks: 5}
}

func (e *ErrorEstimate) UnmarshalYAML(node *yaml.Node) error {
	type raw ErrorEstimate
	r := raw(DefaultErrorEstimate())
	if err := node.Decode(&r); err != nil {
		return schemaErrorf("estimate_error",
			"invalid error estimation parameters: %v", err)
	}
	*e = ErrorEstimate(r)
	return nil
}

func (e *ErrorEstimate) validate() error {
	if e.NBlocks < 2 {
		return validationErrorf("estimate_error.n_blocks",
			"block averaging requires at least 2 blocks, got %d", e.NBlocks)
	}
	return nil
}
