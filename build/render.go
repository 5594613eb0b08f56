package build

import (
	"fmt"
	"strings"

	"github.com/fwojciec/dove"
	"github.com/fwojciec/dove/fs"
)

// DefaultOGImage is the share image used when the site sets none.
const DefaultOGImage = "assets/favicon.svg"

// page holds what every rendered page needs to know about the build.
type page struct {
	cfg      *dove.Config
	opts     dove.BuildOptions
	info     dove.BuildInfo
	basePath string
}

func (p *page) common() map[string]any {
	site := &p.cfg.Site
	ctx := map[string]any{
		"build_version": p.info.Version,
		"build_time":    p.info.Timestamp(),
		"build_id":      p.info.ID,
		"site_title":    dove.First(p.opts.Title, site.Title),
		"site_desc":     dove.First(p.opts.Description, site.Description),
		"color_scheme":  dove.First(p.opts.ColorScheme, site.ColorScheme).String(),
	}
	if id := strings.TrimSpace(site.BaiduTongjiID); id != "" {
		ctx["baidu_tongji_id"] = id
	}
	if id := strings.TrimSpace(site.GoogleAnalyticsID); id != "" {
		ctx["google_analytics_id"] = id
	}
	return ctx
}

// ogImage returns the share image, absolute when the site has a base URL.
// Relative images are made relative to a page via resolve.
func (p *page) ogImage(resolve func(string) string) string {
	img := dove.First(strings.TrimSpace(p.cfg.Site.OGImage), DefaultOGImage)
	if dove.IsRemote(img) {
		return img
	}
	if p.cfg.Site.BaseURL != "" {
		return dove.JoinURL(p.cfg.Site.BaseURL, p.basePath, img)
	}
	return resolve(img)
}

func (p *page) indexContext(mode Mode, proj *Projection) map[string]any {
	site := &p.cfg.Site
	prefix := mode.AssetPrefix()

	ctx := p.common()
	ctx["has_intranet"] = p.opts.Intranet
	ctx["generate_intermediate_page"] = p.opts.IntermediatePages
	ctx["asset_prefix"] = prefix
	ctx["root_prefix"] = prefix
	ctx["service_worker_path"] = prefix + "sw.js"
	if mode == External {
		ctx["network_switch_href"] = "intranet/"
		ctx["mode_other_label"] = "内网"
	} else {
		ctx["network_switch_href"] = "../"
		ctx["mode_other_label"] = "外网"
	}

	engines := make([]dove.SearchEngine, len(site.SearchEngines))
	for i, e := range site.SearchEngines {
		if e.Icon != "" {
			e.Icon = dove.ResolveIconForPage(e.Icon, prefix)
		}
		engines[i] = e
	}
	ctx["search_engines"] = engines
	defaultEngine := site.DefaultEngine
	if defaultEngine == "" && len(engines) > 0 {
		defaultEngine = engines[0].Name
	}
	ctx["engine_default"] = defaultEngine
	ctx["layout"] = site.Layout.String()

	if mode == External {
		if site.BaseURL != "" {
			ctx["canonical_url"] = dove.JoinURL(site.BaseURL, p.basePath, "index.html")
		}
		ctx["og_image"] = p.ogImage(func(s string) string { return s })
	}

	ctx["groups"] = proj.Groups
	ctx["categories"] = proj.Categories
	return ctx
}

func (p *page) detailContext(d *dove.LinkDetail, detailsHTML string, categories []string) map[string]any {
	site := &p.cfg.Site

	ctx := p.common()
	if site.BaseURL != "" {
		ctx["base_url"] = site.BaseURL
		ctx["site_url"] = dove.JoinURL(site.BaseURL, p.basePath, "go/"+d.Slug) + "/"
	}
	ctx["og_image"] = p.ogImage(dove.ResolveIconForDetail)
	ctx["categories"] = categories
	ctx["link_name"] = d.Name
	ctx["link_intro"] = d.Intro
	if detailsHTML != "" {
		ctx["link_details_html"] = detailsHTML
	}
	if d.Icon != "" {
		ctx["link_icon"] = dove.ResolveIconForDetail(d.Icon)
	}
	ctx["link_host"] = d.Host
	ctx["link_url"] = d.FinalURL()
	class, label := d.Risk.Meta()
	ctx["risk_class"] = class
	ctx["risk_label"] = label
	ctx["delay_seconds"] = d.DelaySeconds
	ctx["has_delay"] = d.DelaySeconds > 0
	return ctx
}

// renderPage renders a template and writes the result to rel.
func renderPage(r dove.Renderer, w *fs.Writer, name, rel string, ctx map[string]any) error {
	html, err := r.Render(name, ctx)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", rel, err)
	}
	if _, err := w.WriteFile(rel, []byte(html)); err != nil {
		return err
	}
	return nil
}
