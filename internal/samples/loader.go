// Package samples downloads a kit's audio files from the serving
// location described by its manifest.
package samples

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"cratedig/internal/catalog"
	"cratedig/internal/catalog/index"
)

// Result reports the outcome of fetching one instrument's sample. A
// failed instrument carries its error here; it never aborts the others.
type Result struct {
	Instrument string
	URL        string
	Path       string // local file written, empty on failure
	Bytes      int64
	Err        error
}

// FetchOptions controls a kit download.
type FetchOptions struct {
	DestDir     string
	Concurrency int           // defaults to 4
	Timeout     time.Duration // per-request, defaults to 30s
	Client      *http.Client  // defaults to http.DefaultClient
}

// FetchKit downloads every instrument sample of the kit concurrently,
// one task per instrument, bounded by Concurrency. The returned results
// are ordered by instrument tag, one entry per available instrument,
// with per-instrument failures recorded in place.
func FetchKit(ctx context.Context, idx *index.Index, kit catalog.Kit, opts FetchOptions) ([]Result, error) {
	if opts.DestDir == "" {
		return nil, fmt.Errorf("destination directory is required")
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}

	results := make([]Result, len(kit.AvailableInstruments))

	var g errgroup.Group
	g.SetLimit(opts.Concurrency)
	for i, tag := range kit.AvailableInstruments {
		i, tag := i, tag
		g.Go(func() error {
			results[i] = fetchOne(ctx, client, idx, kit, tag, opts)
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

func fetchOne(ctx context.Context, client *http.Client, idx *index.Index, kit catalog.Kit, tag string, opts FetchOptions) Result {
	res := Result{Instrument: tag}

	u, ok := idx.ResolveSampleURL(kit.ID, tag)
	if !ok {
		res.Err = fmt.Errorf("no sample recorded for instrument %q", tag)
		return res
	}
	res.URL = u
	if !strings.Contains(u, "://") {
		res.Err = fmt.Errorf("manifest has no base URL; cannot fetch %s", u)
		return res
	}

	rel, ok := kit.Instruments[tag]
	if !ok {
		res.Err = fmt.Errorf("no sample recorded for instrument %q", tag)
		return res
	}
	dest := filepath.Join(opts.DestDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		res.Err = fmt.Errorf("cannot create %s: %w", filepath.Dir(dest), err)
		return res
	}

	reqCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u, nil)
	if err != nil {
		res.Err = err
		return res
	}
	resp, err := client.Do(req)
	if err != nil {
		res.Err = fmt.Errorf("cannot fetch %s: %w", u, err)
		return res
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		res.Err = fmt.Errorf("cannot fetch %s: HTTP %d", u, resp.StatusCode)
		return res
	}

	f, err := os.Create(dest)
	if err != nil {
		res.Err = fmt.Errorf("cannot create %s: %w", dest, err)
		return res
	}
	n, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dest)
		res.Err = fmt.Errorf("cannot write %s: %w", dest, err)
		return res
	}

	res.Path = dest
	res.Bytes = n
	return res
}
