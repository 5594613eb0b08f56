// Package http provides HTTP implementations of dove.IconFetcher and
// dove.Getter.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/dove"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps response bodies at 8 MiB.
const DefaultMaxBodySize = 8 << 20

var (
	_ dove.IconFetcher = (*Fetcher)(nil)
	_ dove.Getter      = (*Fetcher)(nil)
)

// Fetcher GETs remote resources.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	token       string
	authScheme  string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header. Defaults to dove.UserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithAuth sends "Authorization: <scheme> <token>" on Get requests.
// An empty scheme means "token". Icon requests are never authenticated.
func WithAuth(token, scheme string) Option {
	return func(f *Fetcher) {
		f.token = token
		f.authScheme = scheme
	}
}

// WithMaxBodySize sets the largest accepted response body. Larger bodies
// fail with EINVALID instead of being truncated.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   dove.UserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// FetchIcon retrieves an icon and its content type.
func (f *Fetcher) FetchIcon(ctx context.Context, url string) (*dove.IconResponse, error) {
	resp, body, err := f.get(ctx, url, false)
	if err != nil {
		return nil, err
	}
	return &dove.IconResponse{
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// Get retrieves a text resource, authenticating when WithAuth was given.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	_, body, err := f.get(ctx, url, true)
	return body, err
}

func (f *Fetcher) get(ctx context.Context, url string, auth bool) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	if auth && f.token != "" {
		scheme := strings.TrimSpace(f.authScheme)
		if scheme == "" {
			scheme = "token"
		}
		req.Header.Set("Authorization", scheme+" "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, statusError(resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, nil, err
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, nil, dove.Errorf(dove.EINVALID, "response from %s exceeds %d bytes", url, f.maxBodySize)
	}

	return resp, body, nil
}

// statusError maps client errors to application codes so callers can tell
// them apart from failures worth retrying. 408 and 429 stay internal.
func statusError(code int, url string) error {
	msg := fmt.Sprintf("HTTP %d for %s", code, url)
	switch {
	case code == http.StatusNotFound || code == http.StatusGone:
		return dove.Errorf(dove.ENOTFOUND, "%s", msg)
	case code == http.StatusRequestTimeout || code == http.StatusTooManyRequests:
		return errors.New(msg)
	case code >= 400 && code < 500:
		return dove.Errorf(dove.EINVALID, "%s", msg)
	}
	return errors.New(msg)
}
