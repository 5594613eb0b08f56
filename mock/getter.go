package mock

import (
	"context"

	"github.com/fwojciec/dove"
)

var _ dove.Getter = (*Getter)(nil)

// Getter is a mock implementation of dove.Getter.
type Getter struct {
	GetFn func(ctx context.Context, url string) ([]byte, error)
}

func (g *Getter) Get(ctx context.Context, url string) ([]byte, error) {
	return g.GetFn(ctx, url)
}
