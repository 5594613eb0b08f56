package dove

// Template names looked up in a theme's templates directory.
const (
	TemplateIndex  = "index.html"
	TemplateDetail = "detail.html"
)

// Renderer renders named templates with a key/value context.
type Renderer interface {
	// Render returns ENOTFOUND when no template has the given name.
	Render(name string, data map[string]any) (string, error)
}

// TemplateLoader parses the templates of a theme.
type TemplateLoader interface {
	// Load parses every template under dir.
	Load(dir string) (Renderer, error)
}

// DetailsRenderer turns a link's rich-text details into safe HTML.
type DetailsRenderer interface {
	RenderDetails(src string) (string, error)
}
