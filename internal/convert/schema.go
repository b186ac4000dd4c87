// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"strconv"
	"strings"
)

// Coercion identifies how one raw column is converted to a typed value.
// The set is closed; every schema field references exactly one member.
type Coercion int

const (
	// Verbatim copies the raw text unchanged, with no trimming.
	Verbatim Coercion = iota

	// MandatoryFloat parses a required decimal number. Failure is fatal.
	MandatoryFloat

	// OptionalInt parses a signed integer; empty or unparsable input
	// yields an absent value.
	OptionalInt

	// OptionalUint parses an unsigned integer; empty or unparsable input
	// yields an absent value.
	OptionalUint

	// OptionalFloat parses a decimal number; empty or unparsable input
	// yields an absent value.
	OptionalFloat

	// Boolean accepts yes/no (case-insensitive) and 1/0. Anything else
	// is fatal.
	Boolean

	// CommaList splits on commas, trimming whitespace around each
	// element. An empty string yields an empty list.
	CommaList
)

// Field pairs a column name with its coercion rule. Name doubles as the
// output field name and the SQLite column name.
type Field struct {
	Name   string
	Coerce Coercion
}

// Schema describes the fixed row layout of one record kind: an ordered
// list of fields whose length is the kind's arity.
type Schema struct {
	Fields []Field
}

// Arity returns the exact number of columns a data row must have.
func (s Schema) Arity() int {
	return len(s.Fields)
}

// Row holds one decoded row. Values are indexed by schema position and
// typed according to the field's coercion: string, float64, *int64,
// *uint64, *float64, bool, or []string.
type Row []any

func (r Row) String(i int) string { v, _ := r[i].(string); return v }

func (r Row) Float(i int) float64 { v, _ := r[i].(float64); return v }

func (r Row) Bool(i int) bool { v, _ := r[i].(bool); return v }

func (r Row) OptInt(i int) *int64 { v, _ := r[i].(*int64); return v }

func (r Row) OptUint(i int) *uint64 { v, _ := r[i].(*uint64); return v }

func (r Row) OptFloat(i int) *float64 { v, _ := r[i].(*float64); return v }

func (r Row) List(i int) []string { v, _ := r[i].([]string); return v }

// Decode validates raw against the schema's arity and coerces each column
// in order. line is the 1-based input line used in error messages.
func (s Schema) Decode(line int, raw []string) (Row, error) {
	if len(raw) != len(s.Fields) {
		return nil, &SchemaError{Line: line, Expected: len(s.Fields), Actual: len(raw)}
	}
	row := make(Row, len(raw))
	for i, f := range s.Fields {
		v, err := coerce(f.Coerce, raw[i])
		if err != nil {
			return nil, &CoercionError{Line: line, Field: f.Name, Value: raw[i], Err: err}
		}
		row[i] = v
	}
	return row, nil
}

var errBadBool = errors.New("not a yes/no value")

func coerce(c Coercion, raw string) (any, error) {
	switch c {
	case Verbatim:
		return raw, nil
	case MandatoryFloat:
		return strconv.ParseFloat(raw, 64)
	case OptionalInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return (*int64)(nil), nil
		}
		return &n, nil
	case OptionalUint:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return (*uint64)(nil), nil
		}
		return &n, nil
	case OptionalFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return (*float64)(nil), nil
		}
		return &f, nil
	case Boolean:
		switch strings.ToLower(raw) {
		case "yes", "1":
			return true, nil
		case "no", "0":
			return false, nil
		}
		return nil, errBadBool
	case CommaList:
		return splitList(raw), nil
	}
	return nil, errors.New("unknown coercion")
}

// splitList turns "a, b" into ["a","b"]. The empty string maps to an
// empty list, never to a single empty element.
func splitList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}
