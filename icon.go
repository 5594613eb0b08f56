package dove

import "context"

// IconFetcher downloads remote icons.
type IconFetcher interface {
	// FetchIcon GETs url and returns the response body and content type.
	// Non-success statuses are reported as errors.
	FetchIcon(ctx context.Context, url string) (*IconResponse, error)
}

// IconResponse is a successfully fetched icon.
type IconResponse struct {
	ContentType string
	Body        []byte
}

// IconTarget is a remote icon to cache. Original is the reference as written
// in the config; FetchURL is the absolute URL to download.
type IconTarget struct {
	Original string
	FetchURL string
}

// IconMap maps original icon references to site-relative cached paths.
type IconMap map[string]string

// HostLimiter paces requests per host.
type HostLimiter interface {
	// Wait blocks until a request to host is allowed or ctx is done.
	Wait(ctx context.Context, host string) error
}
