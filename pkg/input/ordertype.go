package input

import "gopkg.in/yaml.v3"

// Kinds of order-parameter calculations. The kind is selected in YAML
// by the tag of the 'type' key: !AAOrder, !CGOrder or !UAOrder.
const (
	KindAAOrder = "AAOrder"
	KindCGOrder = "CGOrder"
	KindUAOrder = "UAOrder"
)

// OrderType selects the kind of order parameters to calculate and
// carries the atom selections the calculation needs. Exactly one of
// the parameter fields is set, matching Kind.
type OrderType struct {
	Kind string
	AA   *AAOrderParams
	CG   *CGOrderParams
	UA   *UAOrderParams
}

// AAOrderParams are selections for atomistic order parameters.
type AAOrderParams struct {
	// HeavyAtoms selects the heavy atoms for which order parameters
	// are calculated.
	HeavyAtoms string `yaml:"heavy_atoms"`
	// Hydrogens selects the hydrogens bonded to the heavy atoms.
	Hydrogens string `yaml:"hydrogens"`
}

// CGOrderParams are selections for coarse-grained order parameters.
type CGOrderParams struct {
	// Beads selects the lipid beads used in the analysis.
	Beads string `yaml:"beads"`
}

// UAOrderParams are selections for united-atom order parameters.
// All selections are optional; an empty selection means "none".
type UAOrderParams struct {
	Saturated   string `yaml:"saturated"`
	Unsaturated string `yaml:"unsaturated"`
	Ignore      string `yaml:"ignore"`
}

// AAOrder creates an atomistic order-parameter calculation.
func AAOrder(heavyAtoms, hydrogens string) *OrderType {
	return &OrderType{
		Kind: KindAAOrder,
		AA:   &AAOrderParams{HeavyAtoms: heavyAtoms, Hydrogens: hydrogens},
	}
}

// CGOrder creates a coarse-grained order-parameter calculation.
func CGOrder(beads string) *OrderType {
	return &OrderType{Kind: KindCGOrder, CG: &CGOrderParams{Beads: beads}}
}

// UAOrder creates a united-atom order-parameter calculation.
func UAOrder(saturated, unsaturated, ignore string) *OrderType {
	return &OrderType{
		Kind: KindUAOrder,
		UA: &UAOrderParams{
			Saturated:   saturated,
			Unsaturated: unsaturated,
			Ignore:      ignore,
		},
	}
}

func (t *OrderType) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!AAOrder":
		var params AAOrderParams
		if err := node.Decode(&params); err != nil {
			return schemaErrorf("type", "invalid !AAOrder parameters: %v", err)
		}
		*t = OrderType{Kind: KindAAOrder, AA: &params}
	case "!CGOrder":
		var params CGOrderParams
		if err := node.Decode(&params); err != nil {
			return schemaErrorf("type", "invalid !CGOrder parameters: %v", err)
		}
		*t = OrderType{Kind: KindCGOrder, CG: &params}
	case "!UAOrder":
		var params UAOrderParams
		if err := node.Decode(&params); err != nil {
			return schemaErrorf("type", "invalid !UAOrder parameters: %v", err)
		}
		*t = OrderType{Kind: KindUAOrder, UA: &params}
	default:
		return schemaErrorf("type",
			"unknown analysis type '%s', expected !AAOrder, !CGOrder or !UAOrder",
			node.Tag)
	}
	return nil
}

func (t *OrderType) validate() error {
	switch t.Kind {
	case KindAAOrder:
		if t.AA.HeavyAtoms == "" {
			return validationErrorf("type.heavy_atoms",
				"selection of heavy atoms cannot be empty")
		}
		if t.AA.Hydrogens == "" {
			return validationErrorf("type.hydrogens",
				"selection of hydrogens cannot be empty")
		}
	case KindCGOrder:
		if t.CG.Beads == "" {
			return validationErrorf("type.beads",
				"selection of beads cannot be empty")
		}
	case KindUAOrder:
		// all selections are optional
	}
	return nil
}
