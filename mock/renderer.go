package mock

import "github.com/fwojciec/dove"

var (
	_ dove.Renderer        = (*Renderer)(nil)
	_ dove.TemplateLoader  = (*TemplateLoader)(nil)
	_ dove.DetailsRenderer = (*DetailsRenderer)(nil)
)

// Renderer is a mock implementation of dove.Renderer.
type Renderer struct {
	RenderFn func(name string, data map[string]any) (string, error)
}

func (r *Renderer) Render(name string, data map[string]any) (string, error) {
	return r.RenderFn(name, data)
}

// TemplateLoader is a mock implementation of dove.TemplateLoader.
type TemplateLoader struct {
	LoadFn func(dir string) (dove.Renderer, error)
}

func (l *TemplateLoader) Load(dir string) (dove.Renderer, error) {
	return l.LoadFn(dir)
}

// DetailsRenderer is a mock implementation of dove.DetailsRenderer.
type DetailsRenderer struct {
	RenderDetailsFn func(src string) (string, error)
}

func (r *DetailsRenderer) RenderDetails(src string) (string, error) {
	return r.RenderDetailsFn(src)
}
