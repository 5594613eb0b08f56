package icon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/dove"
	"golang.org/x/sync/errgroup"
)

// Downloader fetches remote icons into a local cache directory.
type Downloader struct {
	Fetcher dove.IconFetcher

	// Limiter, when set, paces requests per host.
	Limiter dove.HostLimiter

	// Logger receives per-icon failures. Nil discards.
	Logger *slog.Logger

	// Threads bounds the number of workers. Values below 1 mean 1.
	Threads int

	// RetryDelays are waited between attempts; nil means a single attempt.
	RetryDelays []time.Duration
}

// Result is the outcome of Download.
type Result struct {
	// Icons maps original references to "<rel_dir>/<cache file>" for
	// every icon available locally.
	Icons dove.IconMap

	Fetched int
	Reused  int
	Failed  int
}

type status int

const (
	statusFetched status = iota
	statusReused
	statusFailed
)

type downloadResult struct {
	original string
	file     string
	status   status
}

// Download caches targets under dest. Each worker handles one contiguous
// chunk of targets sequentially. Failures are logged and leave no mapping.
// The relative paths in the result are prefixed with relDir.
func (d *Downloader) Download(ctx context.Context, targets []dove.IconTarget, dest, relDir string) (*Result, error) {
	res := &Result{Icons: make(dove.IconMap)}
	if len(targets) == 0 {
		return res, nil
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, fmt.Errorf("create icon dir %s: %w", dest, err)
	}

	workers := min(max(d.Threads, 1), len(targets))
	size := (len(targets) + workers - 1) / workers

	resultCh := make(chan downloadResult, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(targets); start += size {
		chunk := targets[start:min(start+size, len(targets))]
		g.Go(func() error {
			for _, t := range chunk {
				resultCh <- d.downloadOne(gctx, t, dest)
			}
			return nil
		})
	}

	rel := strings.Trim(relDir, "/")
	for range len(targets) {
		r := <-resultCh
		switch r.status {
		case statusFailed:
			res.Failed++
			continue
		case statusReused:
			res.Reused++
		case statusFetched:
			res.Fetched++
		}
		if rel == "" {
			res.Icons[r.original] = r.file
		} else {
			res.Icons[r.original] = path.Join(rel, r.file)
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (d *Downloader) downloadOne(ctx context.Context, t dove.IconTarget, dest string) downloadResult {
	name := CacheName(t.FetchURL)
	if file := cachedFile(dest, name); file != "" {
		d.logger().Debug("icon cached", "url", t.FetchURL, "file", file)
		return downloadResult{original: t.Original, file: file, status: statusReused}
	}

	fail := func(err error) downloadResult {
		d.logger().Warn("icon download failed", "url", t.FetchURL, "err", err)
		return downloadResult{original: t.Original, status: statusFailed}
	}

	if d.Limiter != nil {
		if err := d.Limiter.Wait(ctx, dove.Hostname(t.FetchURL)); err != nil {
			return fail(err)
		}
	}
	resp, err := fetchWithRetry(ctx, d.Fetcher, t.FetchURL, d.RetryDelays, d.logger())
	if err != nil {
		return fail(err)
	}

	file := name + "." + Ext(resp.ContentType, t.FetchURL)
	if err := writeIfNotExists(filepath.Join(dest, file), resp.Body); err != nil {
		return fail(err)
	}
	return downloadResult{original: t.Original, file: file, status: statusFetched}
}

func (d *Downloader) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Logger
}

// cachedFile returns the name of an existing cache file for name, if any.
func cachedFile(dest, name string) string {
	for _, ext := range Extensions {
		file := name + "." + ext
		if fi, err := os.Stat(filepath.Join(dest, file)); err == nil && fi.Mode().IsRegular() {
			return file
		}
	}
	return ""
}

// writeIfNotExists creates p with data unless p already exists.
func writeIfNotExists(p string, data []byte) error {
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return nil
	} else if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(p)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(p)
		return err
	}
	return nil
}
