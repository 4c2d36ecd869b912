package mock

import (
	"context"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

var _ coldemail.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of coldemail.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (int, string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (int, string, error) {
	return f.FetchFn(ctx, url)
}
