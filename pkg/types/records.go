// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the record and configuration types shared across the
// converter stages. Field names and order follow the OurAirports data
// dictionary (https://ourairports.com/help/data-dictionary.html); JSON and
// YAML output preserve declaration order.
package types

// Airport is one row of airports.csv. Latitude and longitude are mandatory;
// elevation may be blank in the source and is nil when absent.
type Airport struct {
	ID               string   `json:"id" yaml:"id"`
	Ident            string   `json:"ident" yaml:"ident"`
	Type             string   `json:"type" yaml:"type"`
	Name             string   `json:"name" yaml:"name"`
	LatitudeDeg      float64  `json:"latitude_deg" yaml:"latitude_deg"`
	LongitudeDeg     float64  `json:"longitude_deg" yaml:"longitude_deg"`
	ElevationFt      *int64   `json:"elevation_ft" yaml:"elevation_ft"`
	Continent        string   `json:"continent" yaml:"continent"`
	ISOCountry       string   `json:"iso_country" yaml:"iso_country"`
	ISORegion        string   `json:"iso_region" yaml:"iso_region"`
	Municipality     string   `json:"municipality" yaml:"municipality"`
	ScheduledService bool     `json:"scheduled_service" yaml:"scheduled_service"`
	GPSCode          string   `json:"gps_code" yaml:"gps_code"`
	IATACode         string   `json:"iata_code" yaml:"iata_code"`
	LocalCode        string   `json:"local_code" yaml:"local_code"`
	HomeLink         string   `json:"home_link" yaml:"home_link"`
	WikipediaLink    string   `json:"wikipedia_link" yaml:"wikipedia_link"`
	Keywords         []string `json:"keywords" yaml:"keywords"`
}

// AirportFrequency is one row of airport-frequencies.csv. AirportRef is the
// id of the owning airport; it is carried as informational text and never
// resolved against the airport table. FrequencyMHz stays text so the source
// value survives the round trip unrenormalized.
type AirportFrequency struct {
	ID           string `json:"id" yaml:"id"`
	AirportRef   string `json:"airport_ref" yaml:"airport_ref"`
	AirportIdent string `json:"airport_ident" yaml:"airport_ident"`
	Type         string `json:"type" yaml:"type"`
	Description  string `json:"description" yaml:"description"`
	FrequencyMHz string `json:"frequency_mhz" yaml:"frequency_mhz"`
}

// Runway is one row of runways.csv. The per-end fields (LE = low end,
// HE = high end) are all optional; many small strips publish only idents.
type Runway struct {
	ID           string  `json:"id" yaml:"id"`
	AirportRef   string  `json:"airport_ref" yaml:"airport_ref"`
	AirportIdent string  `json:"airport_ident" yaml:"airport_ident"`
	LengthFt     *uint64 `json:"length_ft" yaml:"length_ft"`
	WidthFt      *uint64 `json:"width_ft" yaml:"width_ft"`
	Surface      string  `json:"surface" yaml:"surface"`
	Lighted      bool    `json:"lighted" yaml:"lighted"`
	Closed       bool    `json:"closed" yaml:"closed"`

	LEIdent                string   `json:"le_ident" yaml:"le_ident"`
	LELatitudeDeg          *float64 `json:"le_latitude_deg" yaml:"le_latitude_deg"`
	LELongitudeDeg         *float64 `json:"le_longitude_deg" yaml:"le_longitude_deg"`
	LEElevationFt          *int64   `json:"le_elevation_ft" yaml:"le_elevation_ft"`
	LEHeadingDegT          *float64 `json:"le_heading_degT" yaml:"le_heading_degT"`
	LEDisplacedThresholdFt *int64   `json:"le_displaced_threshold_ft" yaml:"le_displaced_threshold_ft"`
	HEIdent                string   `json:"he_ident" yaml:"he_ident"`
	HELatitudeDeg          *float64 `json:"he_latitude_deg" yaml:"he_latitude_deg"`
	HELongitudeDeg         *float64 `json:"he_longitude_deg" yaml:"he_longitude_deg"`
	HEElevationFt          *int64   `json:"he_elevation_ft" yaml:"he_elevation_ft"`
	HEHeadingDegT          *float64 `json:"he_heading_degT" yaml:"he_heading_degT"`
	HEDisplacedThresholdFt *int64   `json:"he_displaced_threshold_ft" yaml:"he_displaced_threshold_ft"`
}

// Navaid is one row of navaids.csv. Frequencies and the DME channel stay
// text; positions and variations are optional numbers.
type Navaid struct {
	ID                   string   `json:"id" yaml:"id"`
	Filename             string   `json:"filename" yaml:"filename"`
	Ident                string   `json:"ident" yaml:"ident"`
	Name                 string   `json:"name" yaml:"name"`
	Type                 string   `json:"type" yaml:"type"`
	FrequencyKHz         string   `json:"frequency_khz" yaml:"frequency_khz"`
	LatitudeDeg          *float64 `json:"latitude_deg" yaml:"latitude_deg"`
	LongitudeDeg         *float64 `json:"longitude_deg" yaml:"longitude_deg"`
	ElevationFt          *int64   `json:"elevation_ft" yaml:"elevation_ft"`
	ISOCountry           string   `json:"iso_country" yaml:"iso_country"`
	DMEFrequencyKHz      string   `json:"dme_frequency_khz" yaml:"dme_frequency_khz"`
	DMEChannel           string   `json:"dme_channel" yaml:"dme_channel"`
	DMELatitudeDeg       *float64 `json:"dme_latitude_deg" yaml:"dme_latitude_deg"`
	DMELongitudeDeg      *float64 `json:"dme_longitude_deg" yaml:"dme_longitude_deg"`
	DMEElevationFt       *int64   `json:"dme_elevation_ft" yaml:"dme_elevation_ft"`
	SlavedVariationDeg   *float64 `json:"slaved_variation_deg" yaml:"slaved_variation_deg"`
	MagneticVariationDeg *float64 `json:"magnetic_variation_deg" yaml:"magnetic_variation_deg"`
	UsageType            string   `json:"usage_type" yaml:"usage_type"`
	Power                string   `json:"power" yaml:"power"`
	AssociatedAirport    string   `json:"associated_airport" yaml:"associated_airport"`
}

// Country is one row of countries.csv.
type Country struct {
	ID            string   `json:"id" yaml:"id"`
	Code          string   `json:"code" yaml:"code"`
	Name          string   `json:"name" yaml:"name"`
	Continent     string   `json:"continent" yaml:"continent"`
	WikipediaLink string   `json:"wikipedia_link" yaml:"wikipedia_link"`
	Keywords      []string `json:"keywords" yaml:"keywords"`
}

// Region is one row of regions.csv. Code is the composite ISO 3166-2 code
// (e.g. "US-TX"); LocalCode is the part after the country prefix.
type Region struct {
	ID            string   `json:"id" yaml:"id"`
	Code          string   `json:"code" yaml:"code"`
	LocalCode     string   `json:"local_code" yaml:"local_code"`
	Name          string   `json:"name" yaml:"name"`
	Continent     string   `json:"continent" yaml:"continent"`
	ISOCountry    string   `json:"iso_country" yaml:"iso_country"`
	WikipediaLink string   `json:"wikipedia_link" yaml:"wikipedia_link"`
	Keywords      []string `json:"keywords" yaml:"keywords"`
}
