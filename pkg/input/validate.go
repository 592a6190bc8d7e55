package input

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// vld checks the scalar struct-tag constraints (step, min_samples,
// n_threads). Cross-field and variant invariants are checked in code.
var vld = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields under their YAML names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// CheckSchema verifies that all required top-level keys of the input
// file are present. It returns a *SchemaError naming the first
// missing key, or nil. The loader calls it right after decoding;
// configs built programmatically normally skip it and go straight to
// Validate.
func (a *Analysis) CheckSchema() error {
	switch {
	case a.Structure == "":
		return schemaErrorf("structure", "required key is missing")
	case len(a.Trajectory) == 0:
		return schemaErrorf("trajectory", "required key is missing")
	case a.Index == "":
		return schemaErrorf("index", "required key is missing")
	case a.Type == nil:
		return schemaErrorf("type", "required key is missing")
	case a.Output == "":
		return schemaErrorf("output", "required key is missing")
	case a.MembraneNormal == nil:
		return schemaErrorf("membrane_normal", "required key is missing")
	}
	return nil
}

// Validate checks the semantic invariants of the configuration. It is
// separate from parsing so configs constructed programmatically can be
// validated without going through YAML. A nil result means the
// configuration is safe to hand to the analysis engine.
func (a *Analysis) Validate() error {
	if err := vld.Struct(a); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok || len(verrs) == 0 {
			return err
		}
		fe := verrs[0]
		return validationErrorf(fe.Field(),
			"value %v violates constraint '%s'", fe.Value(), fe.Tag())
	}

	for _, traj := range a.Trajectory {
		if traj == "" {
			return validationErrorf("trajectory",
				"trajectory path cannot be empty")
		}
	}

	if a.Begin > a.End {
		return validationErrorf("begin/end",
			"begin (%g) cannot be greater than end (%g)", a.Begin, a.End)
	}
	if a.Begin < 0 {
		return validationErrorf("begin",
			"begin cannot be negative, got %g", a.Begin)
	}

	if a.Type != nil {
		if err := a.Type.validate(); err != nil {
			return err
		}
	}
	if a.MembraneNormal != nil {
		if err := a.MembraneNormal.validate(); err != nil {
			return err
		}
	}
	if a.Leaflets != nil {
		if err := a.Leaflets.validate(); err != nil {
			return err
		}
	}
	if a.Map != nil {
		if err := a.Map.validate(); err != nil {
			return err
		}
	}
	if a.EstimateError != nil {
		if err := a.EstimateError.validate(); err != nil {
			return err
		}
	}
	if a.Geometry != nil {
		if err := a.Geometry.validate(); err != nil {
			return err
		}
	}
	return nil
}
