// Package pongo2 implements dove.TemplateLoader with Django-style templates.
package pongo2

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/fwojciec/dove"
)

var (
	_ dove.TemplateLoader = (*Loader)(nil)
	_ dove.Renderer       = (*Renderer)(nil)
)

// Loader parses every *.html file in a template directory.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses all templates below dir. Templates are named by their slash
// separated path relative to dir, e.g. "index.html" or "partials/head.html".
func (l *Loader) Load(dir string) (dove.Renderer, error) {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return nil, dove.Errorf(dove.ENOTFOUND, "%s is not a directory", dir)
	}
	loader, err := pongo2.NewLocalFileSystemLoader(dir)
	if err != nil {
		return nil, err
	}
	set := pongo2.NewSet("dove", loader)

	templates := make(map[string]*pongo2.Template)
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".html") {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		tpl, err := set.FromFile(name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		templates[name] = tpl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: templates}, nil
}

// Renderer executes templates parsed by Loader.
type Renderer struct {
	templates map[string]*pongo2.Template
}

// Render executes the named template with data as its context.
func (r *Renderer) Render(name string, data map[string]any) (string, error) {
	tpl, ok := r.templates[name]
	if !ok {
		return "", dove.Errorf(dove.ENOTFOUND, "template %q not found", name)
	}
	out, err := tpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return out, nil
}
