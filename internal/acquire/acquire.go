// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package acquire obtains the raw CSV text for one OurAirports table,
// either from a local file or from the table's well-known download URL.
package acquire

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/avdata/ourairports-convert/internal/httputil"
	"github.com/avdata/ourairports-convert/pkg/types"
)

// Source selects where a table's text comes from. A non-empty Path wins;
// otherwise URL is downloaded.
type Source struct {
	Path string
	URL  string
}

// Fetch returns a reader over the table's CSV text. The caller owns the
// returned reader and must close it. Progress messages go to w.
func Fetch(ctx context.Context, client *http.Client, src Source, cfg types.HTTPConfig, w io.Writer) (io.ReadCloser, error) {
	if src.Path != "" {
		fmt.Fprintf(w, "Reading file %s\n", src.Path)
		f, err := os.Open(src.Path)
		if err != nil {
			return nil, fmt.Errorf("could not open file %s: %w", src.Path, err)
		}
		return f, nil
	}

	fmt.Fprintf(w, "Downloading from %s\n", src.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "text/csv")

	resp, err := httputil.DoWithRetry(ctx, client, req, 0, w)
	if err != nil {
		return nil, fmt.Errorf("could not open page %s: %w", src.URL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, src.URL)
	}
	return resp.Body, nil
}
