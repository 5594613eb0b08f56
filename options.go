package dove

import "time"

// Defaults applied when neither flags, environment nor config set a value.
const (
	DefaultOutDir      = "dist"
	DefaultThemeDir    = "themes/default"
	DefaultIconDir     = "assets/icons"
	DefaultIconThreads = 8
)

// First returns the first non-zero value, or the zero value if all are zero.
// Callers list sources in precedence order, e.g. flag, env, config, default.
func First[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// BuildOptions are the resolved inputs of a build besides the config.
type BuildOptions struct {
	OutDir    string
	StaticDir string
	ThemeDir  string

	// BasePath overrides Site.BasePath when set.
	BasePath string

	Intranet          bool
	IntermediatePages bool

	// Overrides for the corresponding site settings.
	ColorScheme ColorScheme
	Title       string
	Description string

	Version     string
	IconDir     string
	IconThreads int
}

// BuildInfo identifies one build invocation.
type BuildInfo struct {
	Version string
	Time    time.Time
	ID      string
}

// Timestamp returns the build time in RFC 3339 form, UTC, second precision.
func (b BuildInfo) Timestamp() string {
	return b.Time.UTC().Format(time.RFC3339)
}
