// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"

	"github.com/avdata/ourairports-convert/pkg/types"
)

// Kind enumerates the six OurAirports tables. The value is the subcommand
// name on the CLI.
type Kind string

const (
	KindAirport          Kind = "airport"
	KindAirportFrequency Kind = "airport-frequency"
	KindRunway           Kind = "runway"
	KindNavaid           Kind = "navaid"
	KindCountry          Kind = "country"
	KindRegion           Kind = "region"
)

// AllKinds lists every kind in registration order. Adding a table means
// adding one entry here and one in kindRegistry.
var AllKinds = []Kind{
	KindAirport,
	KindAirportFrequency,
	KindRunway,
	KindNavaid,
	KindCountry,
	KindRegion,
}

// kindInfo binds a kind to its download location, row schema, SQLite table
// name, and typed-record builder.
type kindInfo struct {
	url    string
	table  string
	schema Schema
	decode func(Row) any
}

var kindRegistry = map[Kind]kindInfo{
	KindAirport: {
		url:    "https://ourairports.com/data/airports.csv",
		table:  "airports",
		schema: airportSchema,
		decode: decodeAirport,
	},
	KindAirportFrequency: {
		url:    "https://ourairports.com/data/airport-frequencies.csv",
		table:  "airport_frequencies",
		schema: airportFrequencySchema,
		decode: decodeAirportFrequency,
	},
	KindRunway: {
		url:    "https://ourairports.com/data/runways.csv",
		table:  "runways",
		schema: runwaySchema,
		decode: decodeRunway,
	},
	KindNavaid: {
		url:    "https://ourairports.com/data/navaids.csv",
		table:  "navaids",
		schema: navaidSchema,
		decode: decodeNavaid,
	},
	KindCountry: {
		url:    "https://ourairports.com/data/countries.csv",
		table:  "countries",
		schema: countrySchema,
		decode: decodeCountry,
	},
	KindRegion: {
		url:    "https://ourairports.com/data/regions.csv",
		table:  "regions",
		schema: regionSchema,
		decode: decodeRegion,
	},
}

// KindFromName resolves a user-supplied kind name. It accepts the canonical
// names from AllKinds, case-insensitively.
func KindFromName(name string) (Kind, error) {
	k := Kind(strings.ToLower(name))
	if _, ok := kindRegistry[k]; !ok {
		return "", fmt.Errorf("unknown record kind %q (expected one of %v)", name, AllKinds)
	}
	return k, nil
}

// URL returns the kind's well-known OurAirports download location.
func (k Kind) URL() string {
	return kindRegistry[k].url
}

// Table returns the kind's SQLite table name.
func (k Kind) Table() string {
	return kindRegistry[k].table
}

// Schema returns the kind's row schema.
func (k Kind) Schema() Schema {
	return kindRegistry[k].schema
}

// Decode converts one raw data row into the kind's typed record.
func (k Kind) Decode(line int, raw []string) (any, error) {
	info := kindRegistry[k]
	row, err := info.schema.Decode(line, raw)
	if err != nil {
		return nil, err
	}
	return info.decode(row), nil
}

var airportSchema = Schema{Fields: []Field{
	{"id", Verbatim},
	{"ident", Verbatim},
	{"type", Verbatim},
	{"name", Verbatim},
	{"latitude_deg", MandatoryFloat},
	{"longitude_deg", MandatoryFloat},
	{"elevation_ft", OptionalInt},
	{"continent", Verbatim},
	{"iso_country", Verbatim},
	{"iso_region", Verbatim},
	{"municipality", Verbatim},
	{"scheduled_service", Boolean},
	{"gps_code", Verbatim},
	{"iata_code", Verbatim},
	{"local_code", Verbatim},
	{"home_link", Verbatim},
	{"wikipedia_link", Verbatim},
	{"keywords", CommaList},
}}

func decodeAirport(r Row) any {
	return types.Airport{
		ID:               r.String(0),
		Ident:            r.String(1),
		Type:             r.String(2),
		Name:             r.String(3),
		LatitudeDeg:      r.Float(4),
		LongitudeDeg:     r.Float(5),
		ElevationFt:      r.OptInt(6),
		Continent:        r.String(7),
		ISOCountry:       r.String(8),
		ISORegion:        r.String(9),
		Municipality:     r.String(10),
		ScheduledService: r.Bool(11),
		GPSCode:          r.String(12),
		IATACode:         r.String(13),
		LocalCode:        r.String(14),
		HomeLink:         r.String(15),
		WikipediaLink:    r.String(16),
		Keywords:         r.List(17),
	}
}

var airportFrequencySchema = Schema{Fields: []Field{
	{"id", Verbatim},
	{"airport_ref", Verbatim},
	{"airport_ident", Verbatim},
	{"type", Verbatim},
	{"description", Verbatim},
	{"frequency_mhz", Verbatim},
}}

func decodeAirportFrequency(r Row) any {
	return types.AirportFrequency{
		ID:           r.String(0),
		AirportRef:   r.String(1),
		AirportIdent: r.String(2),
		Type:         r.String(3),
		Description:  r.String(4),
		FrequencyMHz: r.String(5),
	}
}

var runwaySchema = Schema{Fields: []Field{
	{"id", Verbatim},
	{"airport_ref", Verbatim},
	{"airport_ident", Verbatim},
	{"length_ft", OptionalUint},
	{"width_ft", OptionalUint},
	{"surface", Verbatim},
	{"lighted", Boolean},
	{"closed", Boolean},
	{"le_ident", Verbatim},
	{"le_latitude_deg", OptionalFloat},
	{"le_longitude_deg", OptionalFloat},
	{"le_elevation_ft", OptionalInt},
	{"le_heading_degT", OptionalFloat},
	{"le_displaced_threshold_ft", OptionalInt},
	{"he_ident", Verbatim},
	{"he_latitude_deg", OptionalFloat},
	{"he_longitude_deg", OptionalFloat},
	{"he_elevation_ft", OptionalInt},
	{"he_heading_degT", OptionalFloat},
	{"he_displaced_threshold_ft", OptionalInt},
}}

func decodeRunway(r Row) any {
	return types.Runway{
		ID:                     r.String(0),
		AirportRef:             r.String(1),
		AirportIdent:           r.String(2),
		LengthFt:               r.OptUint(3),
		WidthFt:                r.OptUint(4),
		Surface:                r.String(5),
		Lighted:                r.Bool(6),
		Closed:                 r.Bool(7),
		LEIdent:                r.String(8),
		LELatitudeDeg:          r.OptFloat(9),
		LELongitudeDeg:         r.OptFloat(10),
		LEElevationFt:          r.OptInt(11),
		LEHeadingDegT:          r.OptFloat(12),
		LEDisplacedThresholdFt: r.OptInt(13),
		HEIdent:                r.String(14),
		HELatitudeDeg:          r.OptFloat(15),
		HELongitudeDeg:         r.OptFloat(16),
		HEElevationFt:          r.OptInt(17),
		HEHeadingDegT:          r.OptFloat(18),
		HEDisplacedThresholdFt: r.OptInt(19),
	}
}

var navaidSchema = Schema{Fields: []Field{
	{"id", Verbatim},
	{"filename", Verbatim},
	{"ident", Verbatim},
	{"name", Verbatim},
	{"type", Verbatim},
	{"frequency_khz", Verbatim},
	{"latitude_deg", OptionalFloat},
	{"longitude_deg", OptionalFloat},
	{"elevation_ft", OptionalInt},
	{"iso_country", Verbatim},
	{"dme_frequency_khz", Verbatim},
	{"dme_channel", Verbatim},
	{"dme_latitude_deg", OptionalFloat},
	{"dme_longitude_deg", OptionalFloat},
	{"dme_elevation_ft", OptionalInt},
	{"slaved_variation_deg", OptionalFloat},
	{"magnetic_variation_deg", OptionalFloat},
	{"usage_type", Verbatim},
	{"power", Verbatim},
	{"associated_airport", Verbatim},
}}

func decodeNavaid(r Row) any {
	return types.Navaid{
		ID:                   r.String(0),
		Filename:             r.String(1),
		Ident:                r.String(2),
		Name:                 r.String(3),
		Type:                 r.String(4),
		FrequencyKHz:         r.String(5),
		LatitudeDeg:          r.OptFloat(6),
		LongitudeDeg:         r.OptFloat(7),
		ElevationFt:          r.OptInt(8),
		ISOCountry:           r.String(9),
		DMEFrequencyKHz:      r.String(10),
		DMEChannel:           r.String(11),
		DMELatitudeDeg:       r.OptFloat(12),
		DMELongitudeDeg:      r.OptFloat(13),
		DMEElevationFt:       r.OptInt(14),
		SlavedVariationDeg:   r.OptFloat(15),
		MagneticVariationDeg: r.OptFloat(16),
		UsageType:            r.String(17),
		Power:                r.String(18),
		AssociatedAirport:    r.String(19),
	}
}

var countrySchema = Schema{Fields: []Field{
	{"id", Verbatim},
	{"code", Verbatim},
	{"name", Verbatim},
	{"continent", Verbatim},
	{"wikipedia_link", Verbatim},
	{"keywords", CommaList},
}}

func decodeCountry(r Row) any {
	return types.Country{
		ID:            r.String(0),
		Code:          r.String(1),
		Name:          r.String(2),
		Continent:     r.String(3),
		WikipediaLink: r.String(4),
		Keywords:      r.List(5),
	}
}

var regionSchema = Schema{Fields: []Field{
	{"id", Verbatim},
	{"code", Verbatim},
	{"local_code", Verbatim},
	{"name", Verbatim},
	{"continent", Verbatim},
	{"iso_country", Verbatim},
	{"wikipedia_link", Verbatim},
	{"keywords", CommaList},
}}

func decodeRegion(r Row) any {
	return types.Region{
		ID:            r.String(0),
		Code:          r.String(1),
		LocalCode:     r.String(2),
		Name:          r.String(3),
		Continent:     r.String(4),
		ISOCountry:    r.String(5),
		WikipediaLink: r.String(6),
		Keywords:      r.List(7),
	}
}
