// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "fmt"

// SchemaError reports a data row whose column count does not match the
// fixed arity of the requested record kind. It aborts the whole run.
type SchemaError struct {
	Line     int
	Expected int
	Actual   int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("line %d: expected %d columns, got %d", e.Line, e.Expected, e.Actual)
}

// CoercionError reports a mandatory field whose raw value cannot be
// interpreted (a required number that does not parse, or a boolean token
// outside the accepted set). It aborts the whole run.
type CoercionError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("line %d: field %q: cannot interpret %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}
