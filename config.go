package dove

import "strings"

// DefaultCategory is the category assigned to groups that do not name one.
const DefaultCategory = "全部"

// Config is the parsed site configuration: site-wide settings plus an
// ordered list of link groups.
type Config struct {
	Site   Site    `yaml:"site"`
	Groups []Group `yaml:"groups"`
}

// Site holds site-wide settings.
type Site struct {
	Title                  string            `yaml:"title"`
	Description            string            `yaml:"description"`
	ColorScheme            ColorScheme       `yaml:"color_scheme"`
	ThemeDir               string            `yaml:"theme_dir"`
	BasePath               string            `yaml:"base_path"`
	BaseURL                string            `yaml:"base_url"`
	OGImage                string            `yaml:"og_image"`
	Redirect               *RedirectSettings `yaml:"redirect"`
	Sitemap                *SitemapSettings  `yaml:"sitemap"`
	SearchEngines          []SearchEngine    `yaml:"search_engines"`
	DefaultEngine          string            `yaml:"default_engine"`
	Layout                 Layout            `yaml:"layout"`
	BaiduTongjiID          string            `yaml:"baidu_tongji_id"`
	GoogleAnalyticsID      string            `yaml:"google_analytics_id"`
	CategoryDisplay        map[string]string `yaml:"category_display"`
	DefaultCategoryDisplay string            `yaml:"default_category_display"`
}

// Group is a named, ordered collection of links shown under one category.
type Group struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Display  string `yaml:"display"`
	Links    []Link `yaml:"links"`
}

// CategoryName returns the group's category or DefaultCategory when unset.
func (g *Group) CategoryName() string {
	if c := strings.TrimSpace(g.Category); c != "" {
		return c
	}
	return DefaultCategory
}

// Link is a single navigation entry.
type Link struct {
	Name       string     `yaml:"name"`
	URL        string     `yaml:"url"`
	Intro      string     `yaml:"intro"`
	Details    string     `yaml:"details"`
	Slug       string     `yaml:"slug"`
	Icon       string     `yaml:"icon"`
	Intranet   string     `yaml:"intranet"`
	Risk       RiskLevel  `yaml:"risk"`
	UTM        *UTMParams `yaml:"utm"`
	Lastmod    string     `yaml:"lastmod"`
	ChangeFreq ChangeFreq `yaml:"changefreq"`
	Priority   *float64   `yaml:"priority"`
}

// RedirectSettings configures the interstitial "go" pages.
type RedirectSettings struct {
	DelaySeconds int        `yaml:"delay_seconds"`
	DefaultRisk  RiskLevel  `yaml:"default_risk"`
	UTM          *UTMParams `yaml:"utm"`
}

// UTMParams are campaign parameters appended to outbound links.
// Empty fields are not appended.
type UTMParams struct {
	Source   string `yaml:"source"`
	Medium   string `yaml:"medium"`
	Campaign string `yaml:"campaign"`
	Term     string `yaml:"term"`
	Content  string `yaml:"content"`
}

// IsZero reports whether no parameter is set.
func (u *UTMParams) IsZero() bool {
	return u == nil || (u.Source == "" && u.Medium == "" && u.Campaign == "" && u.Term == "" && u.Content == "")
}

// SearchEngine is an entry in the index page search box.
type SearchEngine struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
	Icon     string `yaml:"icon"`
}

// SitemapSettings holds site-level sitemap defaults.
type SitemapSettings struct {
	DefaultChangeFreq ChangeFreq `yaml:"default_changefreq"`
	DefaultPriority   *float64   `yaml:"default_priority"`
	Lastmod           string     `yaml:"lastmod"`
}

// Validate returns an EINVALID error if required fields are missing.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Site.Title) == "" {
		return Errorf(EINVALID, "site.title is required")
	}
	for i, g := range c.Groups {
		for j, l := range g.Links {
			if strings.TrimSpace(l.Name) == "" {
				return Errorf(EINVALID, "groups[%d].links[%d].name is required", i, j)
			}
		}
	}
	return nil
}

// WithIcons returns a copy of the config in which every search engine and
// link icon found as a key in icons is replaced by its mapped value.
// The receiver is not modified.
func (c *Config) WithIcons(icons IconMap) *Config {
	out := *c
	if len(c.Site.SearchEngines) > 0 {
		out.Site.SearchEngines = make([]SearchEngine, len(c.Site.SearchEngines))
		for i, e := range c.Site.SearchEngines {
			if local, ok := icons[e.Icon]; ok {
				e.Icon = local
			}
			out.Site.SearchEngines[i] = e
		}
	}
	out.Groups = make([]Group, len(c.Groups))
	for i, g := range c.Groups {
		links := make([]Link, len(g.Links))
		for j, l := range g.Links {
			if local, ok := icons[l.Icon]; ok {
				l.Icon = local
			}
			links[j] = l
		}
		g.Links = links
		out.Groups[i] = g
	}
	return &out
}

// ColorScheme is the page color scheme.
type ColorScheme string

// Color schemes.
const (
	ColorSchemeAuto  ColorScheme = "auto"
	ColorSchemeLight ColorScheme = "light"
	ColorSchemeDark  ColorScheme = "dark"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ColorScheme) UnmarshalText(text []byte) error {
	v, err := ParseColorScheme(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// String returns the scheme name, defaulting to "auto".
func (s ColorScheme) String() string {
	if s == "" {
		return string(ColorSchemeAuto)
	}
	return string(s)
}

// ParseColorScheme parses a case-insensitive color scheme name.
func ParseColorScheme(s string) (ColorScheme, error) {
	switch v := ColorScheme(strings.ToLower(strings.TrimSpace(s))); v {
	case ColorSchemeAuto, ColorSchemeLight, ColorSchemeDark:
		return v, nil
	case "":
		return ColorSchemeAuto, nil
	}
	return "", Errorf(EINVALID, "unknown color scheme %q (want auto, light or dark)", s)
}

// Layout is the index page layout.
type Layout string

// Layouts.
const (
	LayoutDefault Layout = "default"
	LayoutNTP     Layout = "ntp"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Layout) UnmarshalText(text []byte) error {
	switch v := Layout(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case LayoutDefault, LayoutNTP:
		*l = v
	case "":
		*l = LayoutDefault
	default:
		return Errorf(EINVALID, "unknown layout %q (want default or ntp)", string(text))
	}
	return nil
}

// String returns the layout name, defaulting to "default".
func (l Layout) String() string {
	if l == "" {
		return string(LayoutDefault)
	}
	return string(l)
}

// RiskLevel tags how risky an outbound link is.
type RiskLevel string

// Risk levels. The zero value means unset.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *RiskLevel) UnmarshalText(text []byte) error {
	switch v := RiskLevel(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case RiskLow, RiskMedium, RiskHigh, "":
		*r = v
	default:
		return Errorf(EINVALID, "unknown risk level %q (want low, medium or high)", string(text))
	}
	return nil
}

// Meta returns the CSS class and display label for the risk level.
// An unset level is treated as low.
func (r RiskLevel) Meta() (class, label string) {
	switch r {
	case RiskMedium:
		return "medium", "中风险"
	case RiskHigh:
		return "high", "高风险"
	default:
		return "low", "低风险"
	}
}

// ChangeFreq is a sitemap change frequency. The zero value means unset.
type ChangeFreq string

// Change frequencies.
const (
	ChangeFreqAlways  ChangeFreq = "always"
	ChangeFreqHourly  ChangeFreq = "hourly"
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
	ChangeFreqNever   ChangeFreq = "never"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *ChangeFreq) UnmarshalText(text []byte) error {
	switch v := ChangeFreq(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case ChangeFreqAlways, ChangeFreqHourly, ChangeFreqDaily, ChangeFreqWeekly,
		ChangeFreqMonthly, ChangeFreqYearly, ChangeFreqNever, "":
		*f = v
	default:
		return Errorf(EINVALID, "unknown changefreq %q", string(text))
	}
	return nil
}
