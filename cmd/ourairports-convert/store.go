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
	"github.com/avdata/ourairports-convert/internal/store"
	"github.com/avdata/ourairports-convert/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store <kind> [input-file]",
	Short: "Load a converted table into a SQLite database",
	Long: `Store converts one table and loads the records into a local SQLite
database, one table per record kind, so the data can be queried with plain
SQL. Rows with matching ids are replaced on repeat runs.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runStore,
}

func init() {
	storeCmd.Flags().String("db", "", "SQLite database file (default ourairports.db)")
	storeCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")

	rootCmd.AddCommand(storeCmd)
}

func runStore(cmd *cobra.Command, args []string) error {
	kind, err := convert.KindFromName(args[0])
	if err != nil {
		return err
	}
	var inputPath string
	if len(args) == 2 {
		inputPath = args[1]
	}

	cfg, err := convertConfig(cmd)
	if err != nil {
		return err
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("store.db_path")
	}
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	client := &http.Client{Timeout: cfg.Timeout}
	src := acquire.Source{Path: inputPath, URL: kind.URL()}
	body, err := acquire.Fetch(cmd.Context(), client, src, cfg.HTTPConfig, os.Stderr)
	if err != nil {
		return err
	}
	defer body.Close()

	records, err := convert.Parse(kind, body, os.Stderr)
	if err != nil {
		return err
	}

	st, err := store.Open(types.StoreConfig{DBPath: dbPath})
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.Insert(cmd.Context(), kind, records)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Stored %d %s records in %s\n", n, kind, dbPath)
	return nil
}
