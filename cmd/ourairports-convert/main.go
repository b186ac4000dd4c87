// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ourairports-convert CLI.
// Each record kind is a subcommand; the store subcommand loads a table
// into SQLite instead of emitting a document.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "ourairports-convert/0.1"
	defaultDBPath    = "ourairports.db"
)

// rootCmd is the base command for the ourairports-convert CLI.
var rootCmd = &cobra.Command{
	Use:   "ourairports-convert",
	Short: "Convert OurAirports CSV tables to JSON or YAML",
	Long: `ourairports-convert reads the tabular datasets published by OurAirports
(https://ourairports.com/data/) and re-emits each table as a structured
document. One table kind is processed per invocation, from a local file or
straight from the OurAirports download location.

Each table kind is a subcommand: airport, airport-frequency, runway,
navaid, country, and region. The store subcommand loads a converted table
into a local SQLite database instead.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ourairports.yaml or ~/.config/ourairports-convert/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ourairports")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ourairports-convert"))
		}
	}

	viper.SetEnvPrefix("OURAIRPORTS")
	viper.AutomaticEnv()

	viper.SetDefault("http.timeout", defaultTimeout)
	viper.SetDefault("http.user_agent", defaultUserAgent)
	viper.SetDefault("format", "json")
	viper.SetDefault("store.db_path", defaultDBPath)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
