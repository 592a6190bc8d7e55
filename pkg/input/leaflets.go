package input

import "gopkg.in/yaml.v3"

// Kinds of leaflet classification. The kind is selected in YAML by
// the tag of the 'leaflets' key.
const (
	KindGlobalLeaflets     = "Global"
	KindLocalLeaflets      = "Local"
	KindIndividualLeaflets = "Individual"
	KindClusteringLeaflets = "Clustering"
	KindFromFileLeaflets   = "FromFile"
	KindFromNdxLeaflets    = "FromNdx"
)

// Leaflets describes how lipids are assigned to the upper and lower
// leaflet of the membrane. Exactly one of the parameter fields is
// set, matching Kind.
type Leaflets struct {
	Kind       string
	Global     *GlobalLeafletsParams
	Local      *LocalLeafletsParams
	Individual *IndividualLeafletsParams
	Clustering *ClusteringLeafletsParams
	FromFile   *FromFileLeafletsParams
	FromNdx    *FromNdxLeafletsParams
}

// GlobalLeafletsParams assign leaflets by comparing each head group
// to the global membrane center of geometry.
type GlobalLeafletsParams struct {
	// Membrane selects all lipid atoms of the membrane.
	Membrane string `yaml:"membrane"`
	// Heads selects one head-group atom per lipid molecule.
	Heads string `yaml:"heads"`
	// Frequency of the leaflet assignment.
	Frequency Frequency `yaml:"frequency"`
	// MembraneNormal optionally overrides the axis used for the
	// assignment.
	MembraneNormal *Axis `yaml:"membrane_normal"`
}

// LocalLeafletsParams assign leaflets by comparing each head group to
// the local membrane center within the given radius.
type LocalLeafletsParams struct {
	Membrane string `yaml:"membrane"`
	Heads    string `yaml:"heads"`
	// Radius of the cylinder, in nm, used to calculate the local
	// membrane center.
	Radius         float64   `yaml:"radius"`
	Frequency      Frequency `yaml:"frequency"`
	MembraneNormal *Axis     `yaml:"membrane_normal"`
}

// IndividualLeafletsParams assign leaflets from the orientation of
// each lipid, comparing its head group to the ends of its tails.
type IndividualLeafletsParams struct {
	Heads string `yaml:"heads"`
	// Methyls selects the last atoms of the lipid tails.
	Methyls        string    `yaml:"methyls"`
	Frequency      Frequency `yaml:"frequency"`
	MembraneNormal *Axis     `yaml:"membrane_normal"`
}

// ClusteringLeafletsParams assign leaflets by spectral clustering of
// the head groups.
type ClusteringLeafletsParams struct {
	Heads     string    `yaml:"heads"`
	Frequency Frequency `yaml:"frequency"`
}

// FromFileLeafletsParams read the leaflet assignment from a file.
type FromFileLeafletsParams struct {
	File      string    `yaml:"file"`
	Frequency Frequency `yaml:"frequency"`
}

// FromNdxLeafletsParams read the leaflet assignment from NDX groups.
type FromNdxLeafletsParams struct {
	// Ndx lists the NDX files to read, one per assignment, or a
	// single file used for the whole trajectory.
	Ndx   PathList `yaml:"ndx"`
	Heads string   `yaml:"heads"`
	// UpperLeaflet and LowerLeaflet name the NDX groups holding the
	// lipids of the respective leaflets.
	UpperLeaflet string    `yaml:"upper_leaflet"`
	LowerLeaflet string    `yaml:"lower_leaflet"`
	Frequency    Frequency `yaml:"frequency"`
}

// GlobalLeaflets creates a global leaflet classification.
func GlobalLeaflets(membrane, heads string) *Leaflets {
	return &Leaflets{
		Kind: KindGlobalLeaflets,
		Global: &GlobalLeafletsParams{
			Membrane:  membrane,
			Heads:     heads,
			Frequency: DefaultFrequency(),
		},
	}
}

// LocalLeaflets creates a local leaflet classification.
func LocalLeaflets(membrane, heads string, radius float64) *Leaflets {
	return &Leaflets{
		Kind: KindLocalLeaflets,
		Local: &LocalLeafletsParams{
			Membrane:  membrane,
			Heads:     heads,
			Radius:    radius,
			Frequency: DefaultFrequency(),
		},
	}
}

// IndividualLeaflets creates a per-lipid leaflet classification.
func IndividualLeaflets(heads, methyls string) *Leaflets {
	return &Leaflets{
		Kind: KindIndividualLeaflets,
		Individual: &IndividualLeafletsParams{
			Heads:     heads,
			Methyls:   methyls,
			Frequency: DefaultFrequency(),
		},
	}
}

func decodeLeafletParams[T any](node *yaml.Node, tag string, params *T) error {
	if err := node.Decode(params); err != nil {
		return schemaErrorf("leaflets", "invalid %s parameters: %v", tag, err)
	}
	return nil
}

func (l *Leaflets) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!Global":
		params := GlobalLeafletsParams{Frequency: DefaultFrequency()}
		if err := decodeLeafletParams(node, "!Global", &params); err != nil {
			return err
		}
		*l = Leaflets{Kind: KindGlobalLeaflets, Global: &params}
	case "!Local":
		params := LocalLeafletsParams{Frequency: DefaultFrequency()}
		if err := decodeLeafletParams(node, "!Local", &params); err != nil {
			return err
		}
		*l = Leaflets{Kind: KindLocalLeaflets, Local: &params}
	case "!Individual":
		params := IndividualLeafletsParams{Frequency: DefaultFrequency()}
		if err := decodeLeafletParams(node, "!Individual", &params); err != nil {
			return err
		}
		*l = Leaflets{Kind: KindIndividualLeaflets, Individual: &params}
	case "!Clustering":
		params := ClusteringLeafletsParams{Frequency: DefaultFrequency()}
		if err := decodeLeafletParams(node, "!Clustering", &params); err != nil {
			return err
		}
		*l = Leaflets{Kind: KindClusteringLeaflets, Clustering: &params}
	case "!FromFile":
		params := FromFileLeafletsParams{Frequency: DefaultFrequency()}
		if err := decodeLeafletParams(node, "!FromFile", &params); err != nil {
			return err
		}
		*l = Leaflets{Kind: KindFromFileLeaflets, FromFile: &params}
	case "!FromNdx":
		params := FromNdxLeafletsParams{Frequency: DefaultFrequency()}
		if err := decodeLeafletParams(node, "!FromNdx", &params); err != nil {
			return err
		}
		*l = Leaflets{Kind: KindFromNdxLeaflets, FromNdx: &params}
	default:
		return schemaErrorf("leaflets",
			"unknown leaflet classification '%s', expected !Global, !Local, !Individual, !Clustering, !FromFile or !FromNdx",
			node.Tag)
	}
	return nil
}

func (l *Leaflets) validate() error {
	switch l.Kind {
	case KindGlobalLeaflets:
		p := l.Global
		if p.Membrane == "" {
			return validationErrorf("leaflets.membrane",
				"selection of membrane atoms cannot be empty")
		}
		if p.Heads == "" {
			return validationErrorf("leaflets.heads",
				"selection of lipid heads cannot be empty")
		}
		return p.Frequency.validate("leaflets")
	case KindLocalLeaflets:
		p := l.Local
		if p.Membrane == "" {
			return validationErrorf("leaflets.membrane",
				"selection of membrane atoms cannot be empty")
		}
		if p.Heads == "" {
			return validationErrorf("leaflets.heads",
				"selection of lipid heads cannot be empty")
		}
		if p.Radius <= 0 {
			return validationErrorf("leaflets.radius",
				"radius must be positive, got %g", p.Radius)
		}
		return p.Frequency.validate("leaflets")
	case KindIndividualLeaflets:
		p := l.Individual
		if p.Heads == "" {
			return validationErrorf("leaflets.heads",
				"selection of lipid heads cannot be empty")
		}
		if p.Methyls == "" {
			return validationErrorf("leaflets.methyls",
				"selection of lipid methyls cannot be empty")
		}
		return p.Frequency.validate("leaflets")
	case KindClusteringLeaflets:
		p := l.Clustering
		if p.Heads == "" {
			return validationErrorf("leaflets.heads",
				"selection of lipid heads cannot be empty")
		}
		return p.Frequency.validate("leaflets")
	case KindFromFileLeaflets:
		p := l.FromFile
		if p.File == "" {
			return validationErrorf("leaflets.file",
				"path to the leaflet assignment file cannot be empty")
		}
		return p.Frequency.validate("leaflets")
	case KindFromNdxLeaflets:
		p := l.FromNdx
		if len(p.Ndx) == 0 {
			return validationErrorf("leaflets.ndx",
				"at least one NDX file is required")
		}
		if p.Heads == "" {
			return validationErrorf("leaflets.heads",
				"selection of lipid heads cannot be empty")
		}
		if p.UpperLeaflet == "" || p.LowerLeaflet == "" {
			return validationErrorf("leaflets",
				"both upper_leaflet and lower_leaflet groups must be named")
		}
		return p.Frequency.validate("leaflets")
	}
	return nil
}
