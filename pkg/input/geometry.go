package input

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Kinds of geometric region selection.
const (
	KindCuboid   = "Cuboid"
	KindCylinder = "Cylinder"
	KindSphere   = "Sphere"
)

// Span is a closed interval along one dimension, in nm. Either bound
// may be infinite ('-.inf' / '.inf' in YAML).
type Span [2]float64

// FullSpan returns the span covering the whole dimension.
func FullSpan() Span {
	return Span{math.Inf(-1), math.Inf(1)}
}

func (s *Span) UnmarshalYAML(node *yaml.Node) error {
	var vals []float64
	if err := node.Decode(&vals); err != nil || len(vals) != 2 {
		return schemaErrorf("span", "expected a pair of numbers")
	}
	*s = Span{vals[0], vals[1]}
	return nil
}

func (s Span) validate(field string) error {
	if s[0] > s[1] {
		return validationErrorf(field,
			"span start (%g) cannot be greater than span end (%g)", s[0], s[1])
	}
	return nil
}

// Kinds of geometry reference points.
const (
	RefPoint     = "Point"
	RefCenter    = "Center"
	RefSelection = "Selection"
)

// GeomReference is the point the dimensions of a geometric selection
// relate to. It is written in YAML as '!Center' (dynamically
// calculated simulation box center), as a sequence of three
// coordinates (static point), or as a selection string (dynamically
// calculated center of geometry of the selected atoms).
type GeomReference struct {
	Kind      string
	Point     [3]float64
	Selection string
}

// PointReference creates a static reference point.
func PointReference(x, y, z float64) GeomReference {
	return GeomReference{Kind: RefPoint, Point: [3]float64{x, y, z}}
}

// CenterReference creates a reference at the simulation box center.
func CenterReference() GeomReference {
	return GeomReference{Kind: RefCenter}
}

// SelectionReference creates a reference at the center of geometry of
// the selected atoms.
func SelectionReference(query string) GeomReference {
	return GeomReference{Kind: RefSelection, Selection: query}
}

func (r *GeomReference) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!Center" {
		*r = GeomReference{Kind: RefCenter}
		return nil
	}
	switch node.Kind {
	case yaml.SequenceNode:
		var point [3]float64
		if err := node.Decode(&point); err != nil {
			return schemaErrorf("geometry.reference",
				"expected three coordinates")
		}
		*r = GeomReference{Kind: RefPoint, Point: point}
		return nil
	case yaml.ScalarNode:
		*r = GeomReference{Kind: RefSelection, Selection: node.Value}
		return nil
	default:
		return schemaErrorf("geometry.reference",
			"expected !Center, a point or an atom selection")
	}
}

func (r GeomReference) String() string {
	switch r.Kind {
	case RefCenter:
		return "box center"
	case RefSelection:
		return fmt.Sprintf("center of '%s'", r.Selection)
	default:
		return fmt.Sprintf("[%g, %g, %g]", r.Point[0], r.Point[1], r.Point[2])
	}
}

// Geometry restricts the analysis to a region of the membrane.
// Exactly one of the parameter fields is set, matching Kind.
type Geometry struct {
	Kind     string
	Cuboid   *CuboidParams
	Cylinder *CylinderParams
	Sphere   *SphereParams
}

// CuboidParams describe a cuboidal region.
type CuboidParams struct {
	// Reference is the point the dimensions relate to.
	Reference GeomReference `yaml:"reference"`
	XDim      Span          `yaml:"xdim"`
	YDim      Span          `yaml:"ydim"`
	ZDim      Span          `yaml:"zdim"`
}

// CylinderParams describe a cylindrical region.
type CylinderParams struct {
	Reference GeomReference `yaml:"reference"`
	// Radius of the cylinder, in nm.
	Radius float64 `yaml:"radius"`
	// Span of the cylinder along its main axis.
	Span Span `yaml:"span"`
	// Orientation of the main axis.
	Orientation Axis `yaml:"orientation"`
}

// SphereParams describe a spherical region.
type SphereParams struct {
	Reference GeomReference `yaml:"reference"`
	Radius    float64       `yaml:"radius"`
}

// Cuboid creates a cuboidal region selection.
func Cuboid(reference GeomReference, xdim, ydim, zdim Span) *Geometry {
	return &Geometry{
		Kind: KindCuboid,
		Cuboid: &CuboidParams{
			Reference: reference, XDim: xdim, YDim: ydim, ZDim: zdim,
		},
	}
}

// Cylinder creates a cylindrical region selection.
func Cylinder(reference GeomReference, radius float64, span Span, orientation Axis) *Geometry {
	return &Geometry{
		Kind: KindCylinder,
		Cylinder: &CylinderParams{
			Reference: reference, Radius: radius,
			Span: span, Orientation: orientation,
		},
	}
}

// Sphere creates a spherical region selection.
func Sphere(reference GeomReference, radius float64) *Geometry {
	return &Geometry{
		Kind:   KindSphere,
		Sphere: &SphereParams{Reference: reference, Radius: radius},
	}
}

func (g *Geometry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!Cuboid":
		params := CuboidParams{
			XDim: FullSpan(), YDim: FullSpan(), ZDim: FullSpan(),
		}
		if err := node.Decode(&params); err != nil {
			if serr, ok := AsSchemaError(err); ok {
				return serr
			}
			return schemaErrorf("geometry", "invalid !Cuboid parameters: %v", err)
		}
		*g = Geometry{Kind: KindCuboid, Cuboid: &params}
	case "!Cylinder":
		params := CylinderParams{Span: FullSpan()}
		if err := node.Decode(&params); err != nil {
			if serr, ok := AsSchemaError(err); ok {
				return serr
			}
			return schemaErrorf("geometry", "invalid !Cylinder parameters: %v", err)
		}
		*g = Geometry{Kind: KindCylinder, Cylinder: &params}
	case "!Sphere":
		var params SphereParams
		if err := node.Decode(&params); err != nil {
			if serr, ok := AsSchemaError(err); ok {
				return serr
			}
			return schemaErrorf("geometry", "invalid !Sphere parameters: %v", err)
		}
		*g = Geometry{Kind: KindSphere, Sphere: &params}
	default:
		return schemaErrorf("geometry",
			"unknown geometry '%s', expected !Cuboid, !Cylinder or !Sphere",
			node.Tag)
	}
	return nil
}

func (g *Geometry) String() string {
	switch g.Kind {
	case KindCuboid:
		return "cuboid"
	case KindCylinder:
		return fmt.Sprintf("cylinder (radius %g nm along %s)",
			g.Cylinder.Radius, g.Cylinder.Orientation)
	case KindSphere:
		return fmt.Sprintf("sphere (radius %g nm)", g.Sphere.Radius)
	}
	return "unknown"
}

func (g *Geometry) validate() error {
	switch g.Kind {
	case KindCuboid:
		p := g.Cuboid
		if err := p.Reference.validate(); err != nil {
			return err
		}
		for _, dim := range []struct {
			field string
			span  Span
		}{
			{"geometry.xdim", p.XDim},
			{"geometry.ydim", p.YDim},
			{"geometry.zdim", p.ZDim},
		} {
			if err := dim.span.validate(dim.field); err != nil {
				return err
			}
		}
	case KindCylinder:
		p := g.Cylinder
		if err := p.Reference.validate(); err != nil {
			return err
		}
		if p.Radius <= 0 {
			return validationErrorf("geometry.radius",
				"radius must be positive, got %g", p.Radius)
		}
		if p.Orientation == "" {
			return validationErrorf("geometry.orientation",
				"orientation of the cylinder must be set")
		}
		if err := p.Span.validate("geometry.span"); err != nil {
			return err
		}
	case KindSphere:
		p := g.Sphere
		if err := p.Reference.validate(); err != nil {
			return err
		}
		if p.Radius <= 0 {
			return validationErrorf("geometry.radius",
				"radius must be positive, got %g", p.Radius)
		}
	}
	return nil
}

func (r GeomReference) validate() error {
	if r.Kind == RefSelection && r.Selection == "" {
		return validationErrorf("geometry.reference",
			"reference selection cannot be empty")
	}
	return nil
}
