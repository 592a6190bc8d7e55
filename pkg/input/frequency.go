package input

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frequency describes how often leaflet assignment is recalculated
// during the analysis. It is written in YAML either as '!Once'
// (assign leaflets from the first frame only) or as '!Every N'
// (reassign every Nth analyzed frame).
type Frequency struct {
	Once  bool
	Every int
}

// DefaultFrequency returns the frequency used when none is given:
// reassignment every analyzed frame.
func DefaultFrequency() Frequency {
	return Frequency{Every: 1}
}

// Once creates a Frequency that assigns leaflets a single time.
func Once() Frequency {
	return Frequency{Once: true}
}

// Every creates a Frequency that reassigns leaflets every nth frame.
func Every(n int) Frequency {
	return Frequency{Every: n}
}

func (f *Frequency) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!Once":
		*f = Frequency{Once: true}
		return nil
	case "!Every":
		n, err := strconv.Atoi(strings.TrimSpace(node.Value))
		if err != nil {
			return schemaErrorf("frequency",
				"'!Every' requires an integer number of frames, got '%s'", node.Value)
		}
		*f = Frequency{Every: n}
		return nil
	default:
		return schemaErrorf("frequency",
			"unknown frequency '%s', expected !Once or !Every N", node.Tag)
	}
}

func (f Frequency) String() string {
	if f.Once {
		return "once"
	}
	if f.Every == 1 {
		return "every frame"
	}
	return fmt.Sprintf("every %d frames", f.Every)
}

// validate checks the frequency invariants. The field argument is the
// path of the enclosing block, e.g. "leaflets".
func (f Frequency) validate(field string) error {
	if !f.Once && f.Every < 1 {
		return validationErrorf(field+".frequency",
			"'!Every' requires a positive number of frames, got %d", f.Every)
	}
	return nil
}
