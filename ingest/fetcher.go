package ingest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hupe1980/dynoq/catalog"
	"github.com/hupe1980/dynoq/model"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the run-details endpoint run IDs are appended to.
const DefaultBaseURL = "https://dyno.cobbtuning.com/dyno/getrundetails.php?runid1="

// Doer abstracts the HTTP client for testing.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrUnexpectedStatus indicates a non-200 response for a run sheet.
type ErrUnexpectedStatus struct {
	RunID      string
	StatusCode int
}

func (e *ErrUnexpectedStatus) Error() string {
	return fmt.Sprintf("unexpected status %d fetching run %s", e.StatusCode, e.RunID)
}

// Options configures a Fetcher.
type Options struct {
	// HTTPClient performs the requests. Defaults to a client with a 30s
	// timeout.
	HTTPClient Doer

	// BaseURL is the endpoint run IDs are appended to.
	// Defaults to DefaultBaseURL.
	BaseURL string

	// RateLimit bounds the request rate across all goroutines. The endpoint
	// is not an official API, so the default is a polite 2 req/s.
	RateLimit rate.Limit

	// Burst is the rate limiter burst size. Defaults to 1.
	Burst int

	// Concurrency bounds the number of in-flight requests. Defaults to 4.
	Concurrency int
}

// Run pairs an entry with its run sheet ID.
type Run struct {
	Key   model.EntryKey
	RunID string
}

// Fetcher downloads run sheets and assembles catalogs from them.
// Safe for concurrent use.
type Fetcher struct {
	client      Doer
	baseURL     string
	limiter     *rate.Limiter
	concurrency int
}

// NewFetcher creates a fetcher with the given options.
func NewFetcher(optFns ...func(*Options)) *Fetcher {
	opts := Options{
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		BaseURL:     DefaultBaseURL,
		RateLimit:   rate.Limit(2),
		Burst:       1,
		Concurrency: 4,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Burst < 1 {
		opts.Burst = 1
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}

	return &Fetcher{
		client:      opts.HTTPClient,
		baseURL:     opts.BaseURL,
		limiter:     rate.NewLimiter(opts.RateLimit, opts.Burst),
		concurrency: opts.Concurrency,
	}
}

// FetchRunSheet downloads and parses the run sheet for one entry. It waits
// on the shared rate limiter first, so cancellation is honored even while
// queued.
func (f *Fetcher) FetchRunSheet(ctx context.Context, runID string, key model.EntryKey) ([]model.Record, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+runID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for run %s: %w", runID, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch run %s: %w", runID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ErrUnexpectedStatus{RunID: runID, StatusCode: resp.StatusCode}
	}

	return ParseRunSheet(resp.Body, key)
}

// FetchCatalog downloads every run sheet and builds a catalog. Entries keep
// the order of runs, so positional groupings are reproducible for a given
// run list. The first failure cancels the remaining fetches.
func (f *Fetcher) FetchCatalog(ctx context.Context, runs []Run) (*catalog.Catalog, error) {
	results := make([][]model.Record, len(runs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)
	for i, run := range runs {
		i, run := i, run
		g.Go(func() error {
			records, err := f.FetchRunSheet(ctx, run.RunID, run.Key)
			if err != nil {
				return fmt.Errorf("run %s (%s): %w", run.RunID, run.Key.DisplayName(), err)
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b := catalog.NewBuilder()
	for i, run := range runs {
		b.AddEntry(run.Key)
		b.AddRecords(results[i])
	}
	return b.Build()
}
