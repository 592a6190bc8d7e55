package input

import "gopkg.in/yaml.v3"

// PathList is a list of file paths that can be written in YAML either
// as a single scalar or as a sequence. Trajectories are commonly split
// into multiple files that are read back to back.
type PathList []string

func (p *PathList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*p = PathList{node.Value}
		return nil
	case yaml.SequenceNode:
		var paths []string
		if err := node.Decode(&paths); err != nil {
			return schemaErrorf("trajectory",
				"expected a path or a list of paths")
		}
		*p = PathList(paths)
		return nil
	default:
		return schemaErrorf("trajectory",
			"expected a path or a list of paths")
	}
}
