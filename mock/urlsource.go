package mock

import (
	"context"

	"github.com/mwielbut/noveltrans"
)

var _ noveltrans.URLSource = (*URLSource)(nil)

// URLSource is a mock implementation of noveltrans.URLSource.
type URLSource struct {
	DiscoverFn func(ctx context.Context, sourceURL string) ([]string, error)
}

func (s *URLSource) Discover(ctx context.Context, sourceURL string) ([]string, error) {
	return s.DiscoverFn(ctx, sourceURL)
}
