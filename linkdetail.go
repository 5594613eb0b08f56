package dove

// LinkDetail is the per-link record derived for external links with a URL.
// It feeds the detail pages and the sitemap.
type LinkDetail struct {
	Slug    string
	Name    string
	Intro   string
	Details string
	Icon    string
	Host    string
	URL     string

	Risk         RiskLevel
	DelaySeconds int
	UTM          *UTMParams

	Lastmod    string
	ChangeFreq ChangeFreq
	Priority   *float64
}

// FinalURL returns the outbound URL with UTM parameters applied.
func (d *LinkDetail) FinalURL() string {
	return ApplyUTM(d.URL, d.UTM)
}

// Path returns the site-relative path of the detail page.
func (d *LinkDetail) Path() string {
	return "go/" + d.Slug + "/index.html"
}
