package input

import "gopkg.in/yaml.v3"

// Kinds of membrane normal specification.
const (
	NormalStatic   = "Static"
	NormalDynamic  = "Dynamic"
	NormalFromFile = "FromFile"
)

// Normal describes the direction of the membrane normal. It is
// written in YAML as a plain axis scalar ('x', 'y', 'z'), as
// '!Dynamic' with parameters for per-lipid normal estimation, or as
// '!FromFile path' pointing to a file with precomputed normals.
type Normal struct {
	Kind string
	// Axis is set for a static normal.
	Axis Axis
	// Dynamic is set when the normal is estimated per lipid.
	Dynamic *DynamicNormalParams
	// File is set when normals are read from a file.
	File string
}

// DynamicNormalParams configure per-lipid membrane normal estimation.
type DynamicNormalParams struct {
	// Heads selects one head-group atom per lipid molecule.
	Heads string `yaml:"heads"`
	// Radius of the sphere, in nm, used to collect neighboring lipids.
	Radius float64 `yaml:"radius"`
}

// StaticNormal creates a membrane normal along a box axis.
func StaticNormal(axis Axis) *Normal {
	return &Normal{Kind: NormalStatic, Axis: axis}
}

// DynamicNormal creates a membrane normal estimated per lipid.
func DynamicNormal(heads string, radius float64) *Normal {
	return &Normal{
		Kind:    NormalDynamic,
		Dynamic: &DynamicNormalParams{Heads: heads, Radius: radius},
	}
}

// NormalFromFileSpec creates a membrane normal read from a file.
func NormalFromFileSpec(path string) *Normal {
	return &Normal{Kind: NormalFromFile, File: path}
}

func (p *DynamicNormalParams) UnmarshalYAML(node *yaml.Node) error {
	type raw DynamicNormalParams
	r := raw{Radius: 2.0}
	if err := node.Decode(&r); err != nil {
		return schemaErrorf("membrane_normal",
			"invalid !Dynamic parameters: %v", err)
	}
	*p = DynamicNormalParams(r)
	return nil
}

func (n *Normal) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!Dynamic":
		var params DynamicNormalParams
		if err := params.UnmarshalYAML(node); err != nil {
			return err
		}
		*n = Normal{Kind: NormalDynamic, Dynamic: &params}
	case "!FromFile":
		*n = Normal{Kind: NormalFromFile, File: node.Value}
	case "!!str":
		axis, ok := ParseAxis(node.Value)
		if !ok {
			return schemaErrorf("membrane_normal",
				"'%s' is not a valid membrane normal, expected x, y, z, !Dynamic or !FromFile",
				node.Value)
		}
		*n = Normal{Kind: NormalStatic, Axis: axis}
	default:
		return schemaErrorf("membrane_normal",
			"unknown membrane normal '%s', expected x, y, z, !Dynamic or !FromFile",
			node.Tag)
	}
	return nil
}

func (n *Normal) String() string {
	switch n.Kind {
	case NormalStatic:
		return string(n.Axis)
	case NormalDynamic:
		return "dynamic"
	case NormalFromFile:
		return "from file " + n.File
	}
	return "unknown"
}

func (n *Normal) validate() error {
	switch n.Kind {
	case NormalDynamic:
		if n.Dynamic.Heads == "" {
			return validationErrorf("membrane_normal.heads",
				"selection of lipid heads cannot be empty")
		}
		if n.Dynamic.Radius <= 0 {
			return validationErrorf("membrane_normal.radius",
				"radius must be positive, got %g", n.Dynamic.Radius)
		}
	case NormalFromFile:
		if n.File == "" {
			return validationErrorf("membrane_normal",
				"'!FromFile' requires a path")
		}
	}
	return nil
}
