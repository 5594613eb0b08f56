package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/dove"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Env    *Env

	Getter      dove.Getter
	IconFetcher dove.IconFetcher
	Now         func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build BuildCmd `cmd:"" help:"Generate the static site"`
	Init  InitCmd  `cmd:"" help:"Write a sample config and the default theme"`
}

// BuildCmd is the "build" subcommand. Empty flags fall back to DOVE_*
// environment variables, then to the config file, then to defaults.
type BuildCmd struct {
	Input              string  `short:"i" help:"Config file (default: dove.yaml, dove.yml, config.yaml or config.yml)"`
	InputURL           string  `name:"input-url" placeholder:"URL" help:"Config URL, takes precedence over --input"`
	GithubToken        string  `name:"github-token" placeholder:"TOKEN" help:"Token sent when fetching the config URL"`
	AuthScheme         string  `name:"auth-scheme" placeholder:"SCHEME" help:"Authorization scheme for --github-token (default: token)"`
	Out                string  `short:"o" help:"Output directory (default: dist)"`
	Static             string  `name:"static" placeholder:"DIR" help:"Extra static directory copied into the site"`
	Theme              string  `placeholder:"DIR" help:"Theme directory, overrides site.theme_dir"`
	BasePath           string  `name:"base-path" placeholder:"PATH" help:"Site base path, overrides site.base_path"`
	NoIntranet         bool    `name:"no-intranet" help:"Only generate the external page"`
	NoIntermediatePage bool    `name:"no-intermediate-page" help:"Link straight to targets instead of go/<slug>/ pages"`
	ColorScheme        string  `name:"color-scheme" placeholder:"SCHEME" help:"Override the color scheme (auto, light or dark)"`
	Title              string  `help:"Override the site title"`
	Description        string  `help:"Override the site description"`
	BuildVersion       string  `name:"build-version" placeholder:"VER" help:"Build version shown on pages"`
	IconDir            string  `name:"icon-dir" placeholder:"DIR" help:"Icon cache directory relative to the site (default: assets/icons)"`
	IconThreads        int     `name:"icon-threads" placeholder:"N" help:"Concurrent icon downloads (default: 8)"`
	IconRPS            float64 `name:"icon-rps" placeholder:"N" help:"Icon requests per second per host, 0 for unlimited"`
	Verbose            bool    `short:"v" help:"Log debug output"`
}

// InitCmd is the "init" subcommand.
type InitCmd struct {
	Dir   string `arg:"" optional:"" default:"." help:"Target directory"`
	Force bool   `help:"Overwrite existing files"`
}
