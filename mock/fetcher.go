package mock

import (
	"context"

	"github.com/fwojciec/jobscan"
)

var _ jobscan.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of jobscan.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*jobscan.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*jobscan.FetchResult, error) {
	return f.FetchFn(ctx, url)
}
