package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/dove"
)

var (
	_ dove.TemplateLoader = (*LoggingTemplateLoader)(nil)
	_ dove.Renderer       = (*LoggingRenderer)(nil)
)

// LoggingTemplateLoader wraps a TemplateLoader so that loading is logged
// and every loaded Renderer is a LoggingRenderer.
type LoggingTemplateLoader struct {
	next   dove.TemplateLoader
	logger *slog.Logger
}

// NewLoggingTemplateLoader creates a new LoggingTemplateLoader.
func NewLoggingTemplateLoader(next dove.TemplateLoader, logger *slog.Logger) *LoggingTemplateLoader {
	return &LoggingTemplateLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingTemplateLoader) Load(dir string) (r dove.Renderer, err error) {
	defer func(begin time.Time) {
		l.logger.Debug("templates load",
			"dir", dir,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	r, err = l.next.Load(dir)
	if err != nil {
		return nil, err
	}
	return NewLoggingRenderer(r, l.logger), nil
}

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   dove.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next dove.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the operation.
func (r *LoggingRenderer) Render(name string, data map[string]any) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("render",
			"template", name,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(name, data)
}
