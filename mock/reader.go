package mock

import (
	"context"

	"github.com/fwojciec/tpdb"
)

var _ tpdb.PageReader = (*PageReader)(nil)

// PageReader is a mock implementation of tpdb.PageReader.
type PageReader struct {
	ReadPageFn func(ctx context.Context, path string) (string, error)
}

func (r *PageReader) ReadPage(ctx context.Context, path string) (string, error) {
	return r.ReadPageFn(ctx, path)
}
