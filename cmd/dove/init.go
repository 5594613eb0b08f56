package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed sample.dove.yaml
var sampleConfig []byte

//go:embed all:theme/default
var defaultTheme embed.FS

// Run executes the init command.
func (c *InitCmd) Run(deps *Dependencies) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Dir, err)
	}

	cfgPath := filepath.Join(c.Dir, "dove.yaml")
	if exists(cfgPath) && !c.Force {
		fmt.Fprintf(deps.Stderr, "Skipped %s (exists, use --force to overwrite)\n", cfgPath)
	} else {
		if err := os.WriteFile(cfgPath, sampleConfig, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", cfgPath, err)
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", cfgPath)
	}

	themeDir := filepath.Join(c.Dir, "themes", "default")
	if exists(themeDir) && !c.Force {
		fmt.Fprintf(deps.Stderr, "Skipped %s (exists, use --force to overwrite)\n", themeDir)
	} else {
		if err := writeTheme(themeDir); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", themeDir)
	}

	fmt.Fprintln(deps.Stdout, "Done. Run 'dove build' to generate the site.")
	return nil
}

// writeTheme writes the embedded default theme below dir.
func writeTheme(dir string) error {
	root, err := fs.Sub(defaultTheme, "theme/default")
	if err != nil {
		return err
	}
	return fs.WalkDir(root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(root, p)
		if err != nil {
			return err
		}
		out := filepath.Join(dir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		return nil
	})
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
