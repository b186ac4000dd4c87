// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avdata/ourairports-convert/internal/acquire"
	"github.com/avdata/ourairports-convert/internal/convert"
	"github.com/avdata/ourairports-convert/pkg/types"
)

// kindSummaries gives each subcommand its one-line description.
var kindSummaries = map[convert.Kind]string{
	convert.KindAirport:          "Convert airport data",
	convert.KindAirportFrequency: "Convert airport frequency data",
	convert.KindRunway:           "Convert runway data",
	convert.KindNavaid:           "Convert navaid data",
	convert.KindCountry:          "Convert country data",
	convert.KindRegion:           "Convert region data",
}

func init() {
	for _, kind := range convert.AllKinds {
		rootCmd.AddCommand(newConvertCommand(kind))
	}
}

// newConvertCommand builds the subcommand for one record kind. Adding a
// kind to convert.AllKinds is all it takes to grow the CLI.
func newConvertCommand(kind convert.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [input-file]", kind),
		Short: kindSummaries[kind],
		Long: kindSummaries[kind] + ` from a local CSV file, or download it
from ourairports.com when no input file is given, and write the converted
document to standard output or the --output file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, kind, args)
		},
	}

	cmd.Flags().StringP("output", "o", "", "output file (default: standard output)")
	cmd.Flags().BoolP("pretty-print", "p", false, "pretty print output")
	cmd.Flags().String("format", "", "output format: json or yaml (default json)")
	cmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")

	return cmd
}

// convertConfig assembles a ConvertConfig from flags, falling back to
// viper-managed config file and environment values.
func convertConfig(cmd *cobra.Command) (types.ConvertConfig, error) {
	pretty, _ := cmd.Flags().GetBool("pretty-print")

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = viper.GetString("format")
	}
	switch types.Format(format) {
	case types.FormatJSON, types.FormatYAML:
	default:
		return types.ConvertConfig{}, fmt.Errorf("unknown output format %q (expected json or yaml)", format)
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("http.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	userAgent := viper.GetString("http.user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return types.ConvertConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		},
		Format: types.Format(format),
		Pretty: pretty,
	}, nil
}

func runConvert(cmd *cobra.Command, kind convert.Kind, args []string) error {
	cfg, err := convertConfig(cmd)
	if err != nil {
		return err
	}

	var inputPath string
	if len(args) == 1 {
		inputPath = args[0]
	}

	client := &http.Client{Timeout: cfg.Timeout}
	src := acquire.Source{Path: inputPath, URL: kind.URL()}
	body, err := acquire.Fetch(cmd.Context(), client, src, cfg.HTTPConfig, os.Stderr)
	if err != nil {
		return err
	}
	defer body.Close()

	out, err := convert.Run(kind, body, cfg, os.Stderr)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath != "" {
		if err := os.WriteFile(outputPath, out, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outputPath, err)
		}
		return nil
	}
	fmt.Println(string(out))
	return nil
}
