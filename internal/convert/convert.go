// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the record mapper: it decodes OurAirports CSV
// rows into typed records through per-kind schema descriptors and
// serializes the resulting list as a JSON or YAML document.
//
// The mapper is all-or-nothing: any schema-width or mandatory-field
// failure aborts the whole run and no output is produced.
package convert

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/avdata/ourairports-convert/pkg/types"
)

// Parse reads a CSV table from r and decodes every data row into a typed
// record of the given kind. The first row is the header and is skipped.
// Row order is preserved. Progress messages go to progress; they are
// informational and not part of the output contract.
func Parse(kind Kind, r io.Reader, progress io.Writer) ([]any, error) {
	fmt.Fprintln(progress, "Converting data")

	rdr := csv.NewReader(r)
	// The schema layer owns the arity check so that mismatches surface
	// as a SchemaError naming expected vs actual counts.
	rdr.FieldsPerRecord = -1

	if _, err := rdr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty input: missing header row")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	records := make([]any, 0)
	for line := 2; ; line++ {
		raw, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}
		rec, err := kind.Decode(line, raw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Serialize encodes an ordered record list as a single document. Field
// order follows struct declaration order, so identical input always
// yields identical bytes. For JSON, Pretty selects two-space indentation;
// YAML output is indented by nature and ignores the flag.
func Serialize(records []any, cfg types.ConvertConfig) ([]byte, error) {
	switch cfg.Format {
	case types.FormatYAML:
		out, err := yaml.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return out, nil
	case types.FormatJSON, "":
		if cfg.Pretty {
			out, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("encoding json: %w", err)
			}
			return out, nil
		}
		out, err := json.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown output format %q", cfg.Format)
}

// Run parses the full table from input and serializes it in one pass.
func Run(kind Kind, input io.Reader, cfg types.ConvertConfig, progress io.Writer) ([]byte, error) {
	records, err := Parse(kind, input, progress)
	if err != nil {
		return nil, err
	}
	return Serialize(records, cfg)
}
