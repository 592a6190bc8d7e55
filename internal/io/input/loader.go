// Package input provides I/O operations for analysis input files.
// This is an impure package that reads documents from the file system
// or a stream; the data model and validation live in pkg/input.
package input

import (
	"fmt"
	"io"
	"os"

	"github.com/lipidtools/ordercfg/pkg/input"
	"gopkg.in/yaml.v3"
)

// Load reads an analysis input file, decodes it and validates it.
//
// The returned error is one of the taxonomy of pkg/input:
//   - *input.ParseError for a document that is not well-formed YAML,
//   - *input.SchemaError for a missing required key, a wrong value
//     shape or an unknown variant tag,
//   - *input.ValidationError for a document that decodes cleanly but
//     violates a semantic invariant.
//
// Paths referenced inside the document are not opened or checked.
func Load(path string) (*input.Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis input file: %w", err)
	}
	return Parse(data)
}

// Read decodes and validates an analysis input document from a
// stream. See Load for the error contract.
func Read(r io.Reader) (*input.Analysis, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis input: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates an analysis input document held in
// memory. See Load for the error contract.
func Parse(data []byte) (*input.Analysis, error) {
	// Defaults first; the document only overrides what it sets.
	a := input.New()

	if err := yaml.Unmarshal(data, a); err != nil {
		return nil, classifyDecodeError(err)
	}

	if err := a.CheckSchema(); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// classifyDecodeError sorts yaml decoding failures into the error
// taxonomy. Errors raised by the variant unmarshalers of pkg/input
// pass through unchanged; yaml type errors mean the document shape
// does not match the schema; everything else is a parse failure.
func classifyDecodeError(err error) error {
	if serr, ok := input.AsSchemaError(err); ok {
		return serr
	}
	if terr, ok := err.(*yaml.TypeError); ok {
		return &input.SchemaError{
			Field: "",
			Msg:   "document does not match the input schema",
			Err:   terr,
		}
	}
	return &input.ParseError{Err: err}
}
