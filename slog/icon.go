package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dove"
)

// Ensure LoggingIconFetcher implements dove.IconFetcher.
var _ dove.IconFetcher = (*LoggingIconFetcher)(nil)

// LoggingIconFetcher wraps an IconFetcher with debug logging.
type LoggingIconFetcher struct {
	next   dove.IconFetcher
	logger *slog.Logger
}

// NewLoggingIconFetcher creates a new LoggingIconFetcher.
func NewLoggingIconFetcher(next dove.IconFetcher, logger *slog.Logger) *LoggingIconFetcher {
	return &LoggingIconFetcher{next: next, logger: logger}
}

// FetchIcon delegates to the wrapped fetcher and logs the operation.
func (f *LoggingIconFetcher) FetchIcon(ctx context.Context, url string) (resp *dove.IconResponse, err error) {
	defer func(begin time.Time) {
		var size int
		var contentType string
		if resp != nil {
			size = len(resp.Body)
			contentType = resp.ContentType
		}
		f.logger.Debug("icon fetch",
			"url", url,
			"bytes", size,
			"content_type", contentType,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchIcon(ctx, url)
}
