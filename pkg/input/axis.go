package input

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Axis is one of the three cartesian axes of the simulation box.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// ParseAxis converts a string to an Axis. It accepts "x", "y", "z"
// case-insensitively.
func ParseAxis(s string) (Axis, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, true
	case "y":
		return AxisY, true
	case "z":
		return AxisZ, true
	}
	return "", false
}

func (a *Axis) UnmarshalYAML(node *yaml.Node) error {
	axis, ok := ParseAxis(node.Value)
	if !ok {
		return schemaErrorf("axis",
			"'%s' is not a valid axis, expected x, y or z", node.Value)
	}
	*a = axis
	return nil
}

// Plane is a projection plane of the simulation box, used by ordermaps.
type Plane string

const (
	PlaneXY Plane = "xy"
	PlaneXZ Plane = "xz"
	PlaneYZ Plane = "yz"
)

// ParsePlane converts a string to a Plane. It accepts "xy", "xz", "yz"
// case-insensitively.
func ParsePlane(s string) (Plane, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xy":
		return PlaneXY, true
	case "xz":
		return PlaneXZ, true
	case "yz":
		return PlaneYZ, true
	}
	return "", false
}

func (p *Plane) UnmarshalYAML(node *yaml.Node) error {
	plane, ok := ParsePlane(node.Value)
	if !ok {
		return schemaErrorf("map.plane",
			"'%s' is not a valid plane, expected xy, xz or yz", node.Value)
	}
	*p = plane
	return nil
}
