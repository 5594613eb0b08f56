package build

import (
	"math"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/dove"
)

// SitemapNamespace is the XML namespace of the urlset element.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapEntry is one url element of the sitemap.
type SitemapEntry struct {
	Loc        string
	Lastmod    string
	ChangeFreq dove.ChangeFreq
	Priority   *float64
}

// SanitizePriority clamps p to [0, 1] and rounds it half away from zero to
// one decimal.
func SanitizePriority(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	p = math.Min(math.Max(p, 0), 1)
	return math.Round(p*10) / 10
}

// FormatPriority formats a sanitized priority with one decimal.
func FormatPriority(p float64) string {
	return strconv.FormatFloat(SanitizePriority(p), 'f', 1, 64)
}

// SitemapEntries lists the index page, the intranet page when it is
// generated, then every detail page. Locations are absolute when the site
// has a base URL.
func SitemapEntries(site *dove.Site, basePath string, details []dove.LinkDetail, intranet bool, buildTime string) []SitemapEntry {
	defaults := site.Sitemap
	if defaults == nil {
		defaults = &dove.SitemapSettings{}
	}
	lastmod := dove.First(defaults.Lastmod, buildTime)

	page := func(sub string) SitemapEntry {
		return SitemapEntry{
			Loc:        dove.JoinURL(site.BaseURL, basePath, sub),
			Lastmod:    lastmod,
			ChangeFreq: defaults.DefaultChangeFreq,
			Priority:   defaults.DefaultPriority,
		}
	}

	entries := []SitemapEntry{page("index.html")}
	if intranet {
		entries = append(entries, page("intranet/index.html"))
	}
	for _, d := range details {
		e := page(d.Path())
		e.Lastmod = dove.First(d.Lastmod, lastmod)
		e.ChangeFreq = dove.First(d.ChangeFreq, defaults.DefaultChangeFreq)
		if d.Priority != nil {
			e.Priority = d.Priority
		}
		entries = append(entries, e)
	}
	return entries
}

// MarshalSitemap renders entries as a sitemaps.org urlset document.
func MarshalSitemap(entries []SitemapEntry) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", SitemapNamespace)
	for _, e := range entries {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(e.Loc)
		if e.Lastmod != "" {
			u.CreateElement("lastmod").SetText(e.Lastmod)
		}
		if e.ChangeFreq != "" {
			u.CreateElement("changefreq").SetText(string(e.ChangeFreq))
		}
		if e.Priority != nil {
			u.CreateElement("priority").SetText(FormatPriority(*e.Priority))
		}
	}
	doc.Indent(2)
	return doc.WriteToBytes()
}

// Robots returns the robots.txt body. A Sitemap line is added when
// sitemapURL is absolute.
func Robots(sitemapURL string) string {
	s := "User-agent: *\nAllow: /\n"
	if sitemapURL != "" {
		s += "Sitemap: " + sitemapURL + "\n"
	}
	return s
}
