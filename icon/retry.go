package icon

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dove"
)

// DefaultRetryDelays returns the backoff delays used by the CLI: 500ms, 1s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{500 * time.Millisecond, 1 * time.Second}
}

// fetchWithRetry calls f.FetchIcon until it succeeds or every delay has
// been waited once. Application errors such as a missing icon are
// permanent and returned without retrying.
func fetchWithRetry(ctx context.Context, f dove.IconFetcher, url string, delays []time.Duration, logger *slog.Logger) (*dove.IconResponse, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		resp, err := f.FetchIcon(ctx, url)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt == len(delays) || dove.ErrorCode(err) != dove.EINTERNAL {
			break
		}
		logger.Debug("icon retry", "url", url, "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
	return nil, lastErr
}
