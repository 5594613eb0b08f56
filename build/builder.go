// Package build turns a navigation config into a static site.
// It coordinates icon caching, link projection, page rendering and the
// sitemap, writing everything below the site directory.
package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/fwojciec/dove"
	"github.com/fwojciec/dove/fs"
	"github.com/fwojciec/dove/icon"
	"github.com/google/uuid"
)

// Builder generates a site from a config.
type Builder struct {
	Templates dove.TemplateLoader
	Details   dove.DetailsRenderer

	// IconFetcher downloads remote icons. Nil leaves icons remote.
	IconFetcher     dove.IconFetcher
	IconLimiter     dove.HostLimiter
	IconRetryDelays []time.Duration

	Logger *slog.Logger

	// Now and NewID default to time.Now and uuid.NewString.
	Now   func() time.Time
	NewID func() string
}

// Result holds the outcome of a build.
type Result struct {
	SiteDir string
	Info    dove.BuildInfo
	Details []dove.LinkDetail

	Groups int
	Links  int

	IconsCached  int
	IconsFetched int
	IconsFailed  int

	Written   int
	Unchanged int

	// Checksums maps site-relative paths to xxhash digests.
	Checksums map[string]string
}

// Build writes the site for cfg according to opts.
func (b *Builder) Build(ctx context.Context, cfg *dove.Config, opts dove.BuildOptions) (*Result, error) {
	info := dove.BuildInfo{
		Version: dove.First(opts.Version, dove.Version),
		Time:    b.now(),
		ID:      b.newID(),
	}
	basePath := dove.First(opts.BasePath, cfg.Site.BasePath)
	siteDir := filepath.Join(dove.First(opts.OutDir, dove.DefaultOutDir), filepath.FromSlash(dove.SafeSubpath(basePath)))
	w := fs.NewWriter(siteDir)
	res := &Result{SiteDir: siteDir, Info: info}

	themeDir, err := resolveTheme(dove.First(opts.ThemeDir, cfg.Site.ThemeDir, dove.DefaultThemeDir))
	if err != nil {
		return nil, err
	}
	if err := b.copyAssets(w, themeDir, opts.StaticDir); err != nil {
		return nil, err
	}

	cfg, err = b.cacheIcons(ctx, cfg, opts, siteDir, res)
	if err != nil {
		return nil, err
	}

	templateDir := filepath.Join(themeDir, "templates")
	renderer, err := b.Templates.Load(templateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %s: %w", templateDir, err)
	}

	p := &page{cfg: cfg, opts: opts, info: info, basePath: basePath}

	external := Project(cfg, External, opts.IntermediatePages)
	res.Groups = len(external.Groups)
	for _, g := range external.Groups {
		res.Links += len(g.Links)
	}
	res.Details = external.Details
	if err := renderPage(renderer, w, dove.TemplateIndex, "index.html", p.indexContext(External, external)); err != nil {
		return nil, err
	}

	if opts.IntermediatePages && len(external.Details) > 0 {
		categories := DetailCategories(cfg)
		for i := range external.Details {
			d := &external.Details[i]
			html, err := b.renderDetails(d)
			if err != nil {
				return nil, err
			}
			if err := renderPage(renderer, w, dove.TemplateDetail, d.Path(), p.detailContext(d, html, categories)); err != nil {
				return nil, err
			}
		}
	}

	if opts.Intranet {
		intranet := Project(cfg, Intranet, opts.IntermediatePages)
		if err := renderPage(renderer, w, dove.TemplateIndex, "intranet/index.html", p.indexContext(Intranet, intranet)); err != nil {
			return nil, err
		}
	}
	if err := w.Remove("intranet.html"); err != nil {
		b.logger().Warn("failed to remove legacy intranet page", "err", err)
	}

	if err := b.writeSitemap(w, cfg, basePath, external.Details, opts.Intranet, info); err != nil {
		return nil, err
	}

	res.Written, res.Unchanged = w.Stats()
	res.Checksums = w.Checksums()
	b.logger().Info("site built",
		"dir", siteDir,
		"groups", res.Groups,
		"links", res.Links,
		"details", len(res.Details),
		"written", res.Written,
		"unchanged", res.Unchanged,
	)
	return res, nil
}

// resolveTheme returns dir if it exists, else dove/<dir>.
func resolveTheme(dir string) (string, error) {
	for _, candidate := range []string{dir, filepath.Join("dove", dir)} {
		if fi, err := os.Stat(candidate); err == nil && fi.IsDir() {
			return candidate, nil
		}
	}
	return "", dove.Errorf(dove.ENOTFOUND, "theme directory not found: %s", dir)
}

// copyAssets copies the theme assets, the service worker and the user
// static directory, in that order.
func (b *Builder) copyAssets(w *fs.Writer, themeDir, staticDir string) error {
	assets := filepath.Join(themeDir, "assets")
	if fi, err := os.Stat(assets); err == nil && fi.IsDir() {
		if err := w.CopyDir(assets, "assets"); err != nil {
			return err
		}
		if sw := filepath.Join(assets, "sw.js"); fileExists(sw) {
			if err := w.CopyFile(sw, "sw.js"); err != nil {
				return err
			}
		}
	}

	if staticDir == "" {
		return nil
	}
	if fi, err := os.Stat(staticDir); err != nil || !fi.IsDir() {
		b.logger().Warn("static directory not found, skipping", "dir", staticDir)
		return nil
	}
	return w.CopyDir(staticDir, "")
}

// cacheIcons downloads remote icons and returns cfg with every cached icon
// pointing at its local copy.
func (b *Builder) cacheIcons(ctx context.Context, cfg *dove.Config, opts dove.BuildOptions, siteDir string, res *Result) (*dove.Config, error) {
	if b.IconFetcher == nil {
		return cfg, nil
	}
	targets := icon.CollectTargets(cfg)
	if len(targets) == 0 {
		return cfg, nil
	}

	relDir := path.Clean("/" + dove.First(opts.IconDir, dove.DefaultIconDir))[1:]
	d := &icon.Downloader{
		Fetcher:     b.IconFetcher,
		Limiter:     b.IconLimiter,
		Logger:      b.Logger,
		Threads:     dove.First(opts.IconThreads, dove.DefaultIconThreads),
		RetryDelays: b.IconRetryDelays,
	}
	icons, err := d.Download(ctx, targets, filepath.Join(siteDir, filepath.FromSlash(relDir)), relDir)
	if err != nil {
		return nil, fmt.Errorf("failed to cache icons: %w", err)
	}
	res.IconsCached = len(icons.Icons)
	res.IconsFetched = icons.Fetched
	res.IconsFailed = icons.Failed
	return cfg.WithIcons(icons.Icons), nil
}

func (b *Builder) writeSitemap(w *fs.Writer, cfg *dove.Config, basePath string, details []dove.LinkDetail, intranet bool, info dove.BuildInfo) error {
	entries := SitemapEntries(&cfg.Site, basePath, details, intranet, info.Timestamp())
	data, err := MarshalSitemap(entries)
	if err != nil {
		return fmt.Errorf("failed to write sitemap.xml: %w", err)
	}
	if _, err := w.WriteFile("sitemap.xml", data); err != nil {
		return err
	}

	var sitemapURL string
	if cfg.Site.BaseURL != "" {
		sitemapURL = dove.JoinURL(cfg.Site.BaseURL, basePath, "sitemap.xml")
	}
	_, err = w.WriteFile("robots.txt", []byte(Robots(sitemapURL)))
	return err
}

func (b *Builder) renderDetails(d *dove.LinkDetail) (string, error) {
	if b.Details == nil {
		return "", nil
	}
	html, err := b.Details.RenderDetails(d.Details)
	if err != nil {
		return "", fmt.Errorf("failed to render details of %s: %w", d.Slug, err)
	}
	return html, nil
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b *Builder) newID() string {
	if b.NewID != nil {
		return b.NewID()
	}
	return uuid.NewString()
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return b.Logger
}

func fileExists(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}
