// Package goldmark renders link details written in Markdown or HTML into
// sanitized HTML.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/dove"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var _ dove.DetailsRenderer = (*DetailsRenderer)(nil)

// DetailsRenderer converts Markdown with embedded HTML and strips anything
// outside bluemonday's user generated content policy.
type DetailsRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewDetailsRenderer creates a new DetailsRenderer.
func NewDetailsRenderer() *DetailsRenderer {
	return &DetailsRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// RenderDetails returns sanitized HTML for src. Blank input renders as "".
func (r *DetailsRenderer) RenderDetails(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(r.policy.Sanitize(buf.String())), nil
}
