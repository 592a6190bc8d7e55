package input

import "gopkg.in/yaml.v3"

// Kinds of ordermap grid span specification.
const (
	GridAuto   = "Auto"
	GridManual = "Manual"
)

// GridSpan describes how the ordermap grid bounds are set along one
// dimension of the projection plane: '!Auto' infers them from the
// simulation box, '!Manual' gives them explicitly.
type GridSpan struct {
	Kind  string
	Start float64
	End   float64
}

// AutoGridSpan returns a grid span inferred from the simulation box.
func AutoGridSpan() GridSpan {
	return GridSpan{Kind: GridAuto}
}

// ManualGridSpan returns an explicit grid span, in nm.
func ManualGridSpan(start, end float64) GridSpan {
	return GridSpan{Kind: GridManual, Start: start, End: end}
}

func (g *GridSpan) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!Auto":
		*g = GridSpan{Kind: GridAuto}
		return nil
	case "!Manual":
		var params struct {
			Start float64 `yaml:"start"`
			End   float64 `yaml:"end"`
		}
		if err := node.Decode(&params); err != nil {
			return schemaErrorf("map.dim",
				"'!Manual' requires start and end: %v", err)
		}
		*g = GridSpan{Kind: GridManual, Start: params.Start, End: params.End}
		return nil
	default:
		return schemaErrorf("map.dim",
			"unknown dimension '%s', expected !Auto or !Manual", node.Tag)
	}
}

func (g GridSpan) validate(field string) error {
	if g.Kind == GridManual && g.Start > g.End {
		return validationErrorf(field,
			"grid start (%g) cannot be greater than grid end (%g)",
			g.Start, g.End)
	}
	return nil
}

// OrderMap configures the construction of spatial maps of order
// parameters projected onto a plane of the simulation box.
type OrderMap struct {
	// OutputDirectory is where the maps are written. It does not have
	// to exist before the analysis.
	OutputDirectory string `yaml:"output_directory"`
	// MinSamples is the number of samples a grid bin must collect for
	// its order parameter to be reported.
	MinSamples int `yaml:"min_samples"`
	// BinSize is the size of a grid bin along each dimension of the
	// plane, in nm.
	BinSize [2]float64 `yaml:"bin_size"`
	// Plane of the projection. When unset, the consumer derives it
	// from the membrane normal.
	Plane Plane `yaml:"plane"`
	// Dim sets the grid bounds along each dimension of the plane.
	Dim [2]GridSpan `yaml:"dim"`
}

// DefaultOrderMap returns an OrderMap with the engine defaults:
// 0.1 nm bins, automatic bounds, every sampled bin reported.
func DefaultOrderMap() OrderMap {
	return OrderMap{
		MinSamples: 1,
		BinSize:    [2]float64{0.1, 0.1},
		Dim:        [2]GridSpan{AutoGridSpan(), AutoGridSpan()},
	}
}

func (m *OrderMap) UnmarshalYAML(node *yaml.Node) error {
	type raw OrderMap
	r := raw(DefaultOrderMap())
	if err := node.Decode(&r); err != nil {
		if serr, ok := AsSchemaError(err); ok {
			return serr
		}
		return schemaErrorf("map", "invalid ordermap parameters: %v", err)
	}
	*m = OrderMap(r)
	return nil
}

func (m *OrderMap) validate() error {
	if m.OutputDirectory == "" {
		return validationErrorf("map.output_directory",
			"output directory for ordermaps must be set")
	}
	if m.MinSamples < 1 {
		return validationErrorf("map.min_samples",
			"minimum number of samples must be at least 1, got %d", m.MinSamples)
	}
	for i, size := range m.BinSize {
		if size <= 0 {
			return validationErrorf("map.bin_size",
				"bin size must be positive, got %g (dimension %d)", size, i)
		}
	}
	for _, dim := range m.Dim {
		if err := dim.validate("map.dim"); err != nil {
			return err
		}
	}
	return nil
}
