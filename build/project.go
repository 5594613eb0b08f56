package build

import (
	"strings"

	"github.com/fwojciec/dove"
)

// Mode selects which network a page is rendered for.
type Mode int

// Network modes.
const (
	External Mode = iota
	Intranet
)

// String returns "external" or "intranet".
func (m Mode) String() string {
	if m == Intranet {
		return "intranet"
	}
	return "external"
}

// AssetPrefix is the path from the mode's index page to the site root.
func (m Mode) AssetPrefix() string {
	if m == Intranet {
		return "../"
	}
	return ""
}

// Link is a link ready for the index template.
type Link struct {
	Name       string
	Href       string
	DisplayURL string
	Desc       string
	Icon       string
	Host       string
}

// Group is a group ready for the index template.
type Group struct {
	Name     string
	Category string
	Display  string
	Links    []Link
}

// Projection is the render model of one mode.
type Projection struct {
	Groups     []Group
	Categories []string

	// Details holds one record per external link; empty for Intranet.
	Details []dove.LinkDetail
}

// Project maps the groups of cfg onto the render model of mode. Links
// without a target in that mode are skipped and groups left without links
// are dropped. In External mode every link gets a unique slug and, with
// intermediate pages enabled, points at its go/<slug>/ page.
func Project(cfg *dove.Config, mode Mode, intermediate bool) *Projection {
	p := &Projection{}
	slugs := dove.NewSlugAllocator()
	seen := make(map[string]bool)
	prefix := mode.AssetPrefix()

	for _, g := range cfg.Groups {
		var links []Link
		for _, l := range g.Links {
			var link Link
			var ok bool
			if mode == External {
				link, ok = projectExternal(cfg, &l, slugs, intermediate, p)
			} else {
				link, ok = projectIntranet(&l)
			}
			if !ok {
				continue
			}
			if l.Icon != "" {
				link.Icon = dove.ResolveIconForPage(l.Icon, prefix)
			}
			links = append(links, link)
		}
		if len(links) == 0 {
			continue
		}

		category := g.CategoryName()
		if !seen[category] {
			seen[category] = true
			p.Categories = append(p.Categories, category)
		}
		p.Groups = append(p.Groups, Group{
			Name:     g.Name,
			Category: category,
			Display:  dove.ResolveDisplay(g.Display, &cfg.Site, category),
			Links:    links,
		})
	}
	return p
}

func projectExternal(cfg *dove.Config, l *dove.Link, slugs *dove.SlugAllocator, intermediate bool, p *Projection) (Link, bool) {
	target := strings.TrimSpace(l.URL)
	if target == "" {
		return Link{}, false
	}
	host := dove.Hostname(target)
	slug := slugs.Allocate(l.Name, l.Slug, host)

	href := target
	if intermediate {
		href = "/go/" + slug + "/"
	}

	redirect := cfg.Site.Redirect
	if redirect == nil {
		redirect = &dove.RedirectSettings{}
	}
	utm := l.UTM
	if utm.IsZero() {
		utm = redirect.UTM
	}
	p.Details = append(p.Details, dove.LinkDetail{
		Slug:         slug,
		Name:         l.Name,
		Intro:        l.Intro,
		Details:      dove.First(l.Details, l.Intro),
		Icon:         l.Icon,
		Host:         host,
		URL:          target,
		Risk:         dove.First(l.Risk, redirect.DefaultRisk),
		DelaySeconds: max(redirect.DelaySeconds, 0),
		UTM:          utm,
		Lastmod:      l.Lastmod,
		ChangeFreq:   l.ChangeFreq,
		Priority:     l.Priority,
	})

	return Link{
		Name:       l.Name,
		Href:       href,
		DisplayURL: target,
		Desc:       l.Intro,
		Host:       host,
	}, true
}

func projectIntranet(l *dove.Link) (Link, bool) {
	target := strings.TrimSpace(dove.First(strings.TrimSpace(l.Intranet), strings.TrimSpace(l.URL)))
	if target == "" {
		return Link{}, false
	}
	return Link{
		Name:       l.Name,
		Href:       target,
		DisplayURL: target,
		Desc:       l.Intro,
		Host:       dove.Hostname(target),
	}, true
}

// DetailCategories returns the categories of groups that have at least one
// link with an external URL, in first-seen order.
func DetailCategories(cfg *dove.Config) []string {
	var out []string
	seen := make(map[string]bool)
	for _, g := range cfg.Groups {
		for _, l := range g.Links {
			if strings.TrimSpace(l.URL) == "" {
				continue
			}
			if c := g.CategoryName(); !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
			break
		}
	}
	return out
}
