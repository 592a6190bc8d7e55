package input

import (
	"errors"
	"fmt"
)

// ParseError reports a document that is not well-formed YAML.
// Nothing can be said about the configuration itself; the text
// could not be read at all.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse analysis input: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a well-formed document that does not match the
// analysis-input schema: a required key is missing, a value has the
// wrong shape, or a variant tag is not recognized.
type SchemaError struct {
	// Field is the path of the offending key, e.g. "structure"
	// or "leaflets".
	Field string
	Msg   string
	Err   error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid analysis input: field '%s': %s: %v", e.Field, e.Msg, e.Err)
	}
	return fmt.Sprintf("invalid analysis input: field '%s': %s", e.Field, e.Msg)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// ValidationError reports a configuration that decoded cleanly but
// violates a semantic invariant, for example an inverted frame range
// or a non-positive radius.
type ValidationError struct {
	// Field is the path of the offending value, e.g. "geometry.radius".
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid analysis input: field '%s': %s", e.Field, e.Msg)
}

// AsSchemaError unwraps a SchemaError from an error chain, so
// variant unmarshalers can pass through errors raised by nested
// variant fields instead of re-wrapping them.
func AsSchemaError(err error) (*SchemaError, bool) {
	var serr *SchemaError
	if errors.As(err, &serr) {
		return serr, true
	}
	return nil, false
}

// schemaErrorf is a shorthand for variant unmarshalers.
func schemaErrorf(field, format string, args ...any) *SchemaError {
	return &SchemaError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// validationErrorf is a shorthand used by Validate.
func validationErrorf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
