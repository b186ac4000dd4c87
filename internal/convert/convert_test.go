// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/avdata/ourairports-convert/pkg/types"
)

const airportHeader = "id,ident,type,name,latitude_deg,longitude_deg,elevation_ft,continent,iso_country,iso_region,municipality,scheduled_service,gps_code,iata_code,local_code,home_link,wikipedia_link,keywords"

const airportCSV = airportHeader + "\n" +
	`2434,EGLL,large_airport,London Heathrow Airport,51.4706,-0.461941,83,EU,GB,GB-ENG,London,yes,EGLL,LHR,,http://www.heathrowairport.com/,https://en.wikipedia.org/wiki/Heathrow_Airport,"LHR, Heathrow"` + "\n" +
	`6523,00A,heliport,Total RF Heliport,40.070801,-74.933601,,NA,US,US-PA,Bensalem,no,00A,,00A,,,` + "\n"

func TestParse_Airports(t *testing.T) {
	var progress bytes.Buffer
	records, err := Parse(KindAirport, strings.NewReader(airportCSV), &progress)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if !strings.Contains(progress.String(), "Converting data") {
		t.Errorf("progress output %q missing phase message", progress.String())
	}

	first, ok := records[0].(types.Airport)
	if !ok {
		t.Fatalf("record 0 has type %T", records[0])
	}
	if first.Ident != "EGLL" || first.LatitudeDeg != 51.4706 || !first.ScheduledService {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.ElevationFt == nil || *first.ElevationFt != 83 {
		t.Errorf("first elevation = %v, want 83", first.ElevationFt)
	}
	if !reflect.DeepEqual(first.Keywords, []string{"LHR", "Heathrow"}) {
		t.Errorf("first keywords = %#v", first.Keywords)
	}

	second := records[1].(types.Airport)
	if second.Ident != "00A" || second.ScheduledService {
		t.Errorf("unexpected second record: %+v", second)
	}
	if second.ElevationFt != nil {
		t.Errorf("blank elevation should be absent, got %v", *second.ElevationFt)
	}
	if !reflect.DeepEqual(second.Keywords, []string{}) {
		t.Errorf("blank keywords should be an empty list, got %#v", second.Keywords)
	}
}

func TestParse_SchemaWidthFailure(t *testing.T) {
	input := airportHeader + "\n" + "2434,EGLL,large_airport\n"

	records, err := Parse(KindAirport, strings.NewReader(input), &bytes.Buffer{})
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if se.Expected != 18 || se.Actual != 3 {
		t.Errorf("SchemaError = %+v, want expected 18 actual 3", se)
	}
	if records != nil {
		t.Error("failed parse still produced records")
	}
}

func TestParse_InvalidBooleanToken(t *testing.T) {
	bad := strings.Replace(airportCSV, ",yes,", ",sometimes,", 1)

	_, err := Parse(KindAirport, strings.NewReader(bad), &bytes.Buffer{})
	var ce *CoercionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CoercionError, got %v", err)
	}
	if ce.Field != "scheduled_service" || ce.Value != "sometimes" {
		t.Errorf("CoercionError = %+v, want the offending token", ce)
	}
}

func TestParse_MandatoryFloatFailure(t *testing.T) {
	bad := strings.Replace(airportCSV, "51.4706", "due north", 1)

	_, err := Parse(KindAirport, strings.NewReader(bad), &bytes.Buffer{})
	var ce *CoercionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CoercionError, got %v", err)
	}
	if ce.Field != "latitude_deg" {
		t.Errorf("CoercionError field = %q, want latitude_deg", ce.Field)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if _, err := Parse(KindAirport, strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Error("empty input did not error")
	}
}

func TestConvert_AirportEndToEnd(t *testing.T) {
	out, err := Run(KindAirport, strings.NewReader(airportCSV), types.ConvertConfig{Format: types.FormatJSON}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var entries []map[string]any
	if err := json.Unmarshal(out, &entries); err != nil {
		t.Fatalf("output is not a JSON list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	for i, e := range entries {
		if len(e) != 18 {
			t.Errorf("entry %d has %d fields, want 18", i, len(e))
		}
	}
	if entries[0]["ident"] != "EGLL" || entries[1]["ident"] != "00A" {
		t.Errorf("entries out of input order: %v, %v", entries[0]["ident"], entries[1]["ident"])
	}
	if v, present := entries[1]["elevation_ft"]; !present || v != nil {
		t.Errorf("blank elevation should serialize as null, got %v (present=%v)", v, present)
	}
}

func TestSerialize_Deterministic(t *testing.T) {
	records, err := Parse(KindAirport, strings.NewReader(airportCSV), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	for _, cfg := range []types.ConvertConfig{
		{Format: types.FormatJSON},
		{Format: types.FormatJSON, Pretty: true},
		{Format: types.FormatYAML},
	} {
		a, err := Serialize(records, cfg)
		if err != nil {
			t.Fatalf("Serialize(%+v): %v", cfg, err)
		}
		b, err := Serialize(records, cfg)
		if err != nil {
			t.Fatalf("Serialize(%+v): %v", cfg, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("Serialize(%+v) is not deterministic", cfg)
		}
	}
}

func TestSerialize_PrettyMatchesCompact(t *testing.T) {
	records, err := Parse(KindAirport, strings.NewReader(airportCSV), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	compact, err := Serialize(records, types.ConvertConfig{Format: types.FormatJSON})
	if err != nil {
		t.Fatalf("Serialize compact: %v", err)
	}
	pretty, err := Serialize(records, types.ConvertConfig{Format: types.FormatJSON, Pretty: true})
	if err != nil {
		t.Fatalf("Serialize pretty: %v", err)
	}
	if bytes.Equal(compact, pretty) {
		t.Error("pretty output should differ in whitespace")
	}

	var a, b []types.Airport
	if err := json.Unmarshal(compact, &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(pretty, &b); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("pretty and compact output carry different logical content")
	}
}

func TestSerialize_YAML(t *testing.T) {
	records, err := Parse(KindAirport, strings.NewReader(airportCSV), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out, err := Serialize(records, types.ConvertConfig{Format: types.FormatYAML})
	if err != nil {
		t.Fatalf("Serialize yaml: %v", err)
	}

	var back []types.Airport
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml output does not parse: %v", err)
	}
	if len(back) != 2 || back[0].Ident != "EGLL" {
		t.Errorf("yaml round trip lost content: %+v", back)
	}
}

func TestSerialize_UnknownFormat(t *testing.T) {
	if _, err := Serialize([]any{}, types.ConvertConfig{Format: "xml"}); err == nil {
		t.Error("unknown format did not error")
	}
}

// roundTrip decodes one raw row, serializes the single-record list, decodes
// the JSON back into the concrete type, and requires field-for-field
// equality with the original record.
func roundTrip[T any](t *testing.T, kind Kind, raw []string) {
	t.Helper()

	rec, err := kind.Decode(2, raw)
	if err != nil {
		t.Fatalf("%s Decode: %v", kind, err)
	}
	orig, ok := rec.(T)
	if !ok {
		t.Fatalf("%s Decode returned %T", kind, rec)
	}

	out, err := Serialize([]any{rec}, types.ConvertConfig{Format: types.FormatJSON})
	if err != nil {
		t.Fatalf("%s Serialize: %v", kind, err)
	}

	var back []T
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("%s reparse: %v", kind, err)
	}
	if len(back) != 1 {
		t.Fatalf("%s reparse produced %d records", kind, len(back))
	}
	if !reflect.DeepEqual(back[0], orig) {
		t.Errorf("%s round trip mismatch:\n got %+v\nwant %+v", kind, back[0], orig)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("airport", func(t *testing.T) {
		roundTrip[types.Airport](t, KindAirport, []string{
			"2434", "EGLL", "large_airport", "London Heathrow Airport",
			"51.4706", "-0.461941", "83", "EU", "GB", "GB-ENG", "London",
			"yes", "EGLL", "LHR", "", "http://www.heathrowairport.com/",
			"https://en.wikipedia.org/wiki/Heathrow_Airport", "LHR, Heathrow",
		})
	})

	t.Run("airport-frequency", func(t *testing.T) {
		roundTrip[types.AirportFrequency](t, KindAirportFrequency, []string{
			"70518", "6523", "00A", "CTAF", "CTAF / UNICOM", "122.9",
		})
	})

	t.Run("runway", func(t *testing.T) {
		roundTrip[types.Runway](t, KindRunway, []string{
			"269408", "6523", "00A", "80", "80", "ASPH-G", "1", "0",
			"H1", "40.0708", "-74.9336", "11", "", "",
			"H2", "", "", "", "", "",
		})
	})

	t.Run("navaid", func(t *testing.T) {
		roundTrip[types.Navaid](t, KindNavaid, []string{
			"86738", "ZZB_DME_ES", "ZZB", "Zaragoza DME", "DME", "112300",
			"41.66", "-1.04", "863", "ES", "112300", "70X", "", "", "",
			"", "-1.1", "HI", "50", "LEZG",
		})
	})

	t.Run("country", func(t *testing.T) {
		roundTrip[types.Country](t, KindCountry, []string{
			"302672", "GB", "United Kingdom", "EU",
			"https://en.wikipedia.org/wiki/United_Kingdom", "England, Scotland, Wales",
		})
	})

	t.Run("region", func(t *testing.T) {
		roundTrip[types.Region](t, KindRegion, []string{
			"306100", "GB-ENG", "ENG", "England", "EU", "GB",
			"https://en.wikipedia.org/wiki/England", "",
		})
	})
}

// The frequency column is carried as text so source values survive the
// round trip unrenormalized.
func TestFrequencyStaysText(t *testing.T) {
	rec, err := KindAirportFrequency.Decode(2, []string{
		"70518", "6523", "00A", "CTAF", "CTAF / UNICOM", "122.900",
	})
	if err != nil {
		t.Fatal(err)
	}
	freq := rec.(types.AirportFrequency)
	if freq.FrequencyMHz != "122.900" {
		t.Errorf("frequency renormalized: %q", freq.FrequencyMHz)
	}
}
