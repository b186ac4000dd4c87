// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for the download path.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "ourairports-convert/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// Format selects the output document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ConvertConfig holds settings for one conversion run.
type ConvertConfig struct {
	HTTPConfig `yaml:",inline"`

	// Format selects the output encoding: json or yaml.
	Format Format `json:"format" yaml:"format"`

	// Pretty enables the indented human-readable encoding. The logical
	// content is identical to the compact form.
	Pretty bool `json:"pretty" yaml:"pretty"`
}

// StoreConfig holds settings for the SQLite sink.
type StoreConfig struct {
	// DBPath is the SQLite database file (default "ourairports.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}
