package mock

import (
	"context"

	"github.com/fwojciec/dove"
)

var (
	_ dove.IconFetcher = (*IconFetcher)(nil)
	_ dove.HostLimiter = (*HostLimiter)(nil)
)

// IconFetcher is a mock implementation of dove.IconFetcher.
type IconFetcher struct {
	FetchIconFn func(ctx context.Context, url string) (*dove.IconResponse, error)
}

func (f *IconFetcher) FetchIcon(ctx context.Context, url string) (*dove.IconResponse, error) {
	return f.FetchIconFn(ctx, url)
}

// HostLimiter is a mock implementation of dove.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
