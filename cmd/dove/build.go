package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/dove"
	"github.com/fwojciec/dove/build"
	"github.com/fwojciec/dove/goldmark"
	dovehttp "github.com/fwojciec/dove/http"
	"github.com/fwojciec/dove/icon"
	"github.com/fwojciec/dove/pongo2"
	doveslog "github.com/fwojciec/dove/slog"
	"github.com/fwojciec/dove/yaml"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	logger := newLogger(deps.Stderr, c.Verbose)
	e := deps.Env

	cfg, source, err := c.loadConfig(deps)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Using config: %s\n", source)

	opts, err := c.options(e)
	if err != nil {
		return err
	}

	fetcher := deps.IconFetcher
	if fetcher == nil {
		fetcher = dovehttp.NewFetcher()
	}
	builder := &build.Builder{
		Templates:       doveslog.NewLoggingTemplateLoader(pongo2.NewLoader(), logger),
		Details:         goldmark.NewDetailsRenderer(),
		IconFetcher:     doveslog.NewLoggingIconFetcher(fetcher, logger),
		IconRetryDelays: icon.DefaultRetryDelays(),
		Logger:          logger,
		Now:             deps.Now,
	}
	if rps := dove.First(c.IconRPS, e.IconRPS); rps > 0 {
		builder.IconLimiter = icon.NewHostLimiter(rps)
	}

	res, err := builder.Build(deps.Ctx, cfg, opts)
	if err != nil {
		return err
	}
	printSummary(deps.Stdout, res)
	return nil
}

// loadConfig loads the config from the URL if one is given, else from the
// input file, else from the first config file found in the working
// directory. It also returns a description of the source.
func (c *BuildCmd) loadConfig(deps *Dependencies) (*dove.Config, string, error) {
	e := deps.Env

	if rawURL := dove.First(c.InputURL, e.InputURL, e.GistURL); rawURL != "" {
		getter := deps.Getter
		if getter == nil {
			getter = dovehttp.NewFetcher(dovehttp.WithAuth(
				dove.First(c.GithubToken, e.GithubToken),
				dove.First(c.AuthScheme, e.AuthScheme),
			))
		}
		cfg, err := yaml.LoadURL(deps.Ctx, getter, rawURL)
		if err != nil {
			return nil, "", err
		}
		return cfg, rawURL, nil
	}

	path := dove.First(c.Input, e.Input)
	if path == "" {
		path = yaml.Discover(".")
	}
	if path == "" {
		return nil, "", dove.Errorf(dove.ENOTFOUND, "no config file found (looked for %v in . and ./dove)", yaml.Candidates)
	}
	cfg, err := yaml.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// options resolves the build options from flags and environment. Settings
// also present in the config file are resolved by the builder.
func (c *BuildCmd) options(e *Env) (dove.BuildOptions, error) {
	var scheme dove.ColorScheme
	if raw := dove.First(c.ColorScheme, e.ColorScheme); raw != "" {
		s, err := dove.ParseColorScheme(raw)
		if err != nil {
			return dove.BuildOptions{}, err
		}
		scheme = s
	}

	return dove.BuildOptions{
		OutDir:            dove.First(c.Out, e.Out, dove.DefaultOutDir),
		StaticDir:         dove.First(c.Static, e.Static),
		ThemeDir:          dove.First(c.Theme, e.Theme, e.ThemeDir),
		BasePath:          dove.First(c.BasePath, e.BasePath),
		Intranet:          !c.NoIntranet && !e.NoIntranet.Or(false),
		IntermediatePages: !c.NoIntermediatePage && e.GenerateIntermediatePage.Or(true),
		ColorScheme:       scheme,
		Title:             dove.First(c.Title, e.Title),
		Description:       dove.First(c.Description, e.Description),
		Version:           dove.First(c.BuildVersion, e.BuildVersion, dove.Version),
		IconDir:           dove.First(c.IconDir, e.IconDir, dove.DefaultIconDir),
		IconThreads:       max(dove.First(c.IconThreads, e.IconThreads, dove.DefaultIconThreads), 1),
	}, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printSummary(w io.Writer, res *build.Result) {
	fmt.Fprintf(w, "Built %s\n", res.SiteDir)
	fmt.Fprintf(w, "  groups: %d  links: %d  detail pages: %d\n", res.Groups, res.Links, len(res.Details))
	fmt.Fprintf(w, "  icons: %d cached (%d fetched), %d failed\n", res.IconsCached, res.IconsFetched, res.IconsFailed)
	fmt.Fprintf(w, "  files: %d written, %d unchanged\n", res.Written, res.Unchanged)
	fmt.Fprintf(w, "  build: %s (%s)\n", res.Info.Version, res.Info.ID)
}
