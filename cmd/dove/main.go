package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/dove"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Environ holds the environment in os.Environ form.
	Environ []string

	// Services for end-to-end testing. Nil fields use the HTTP fetcher.
	Getter      dove.Getter
	IconFetcher dove.IconFetcher

	// Now overrides the build clock.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Environ: os.Environ(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	env, err := ParseEnv(m.Environ)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:         ctx,
		Stdout:      stdout,
		Stderr:      stderr,
		Env:         env,
		Getter:      m.Getter,
		IconFetcher: m.IconFetcher,
		Now:         m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dove"),
		kong.Description("Static navigation site generator."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'dove --help' to see available commands")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	case "version", "--version":
		fmt.Fprintf(stdout, "dove %s\n", dove.Version)
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return kongCtx.Run(deps)
}
