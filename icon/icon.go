// Package icon caches remote icons referenced by a site configuration.
// Icons are fetched concurrently and stored under names derived from the
// FNV-1a hash of their URL, so repeated builds reuse the same files.
package icon

import (
	"fmt"
	"hash/fnv"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/dove"
)

// Extensions lists the file extensions a cached icon may have.
var Extensions = []string{"svg", "png", "ico", "jpg", "gif", "webp", "avif", "bin"}

// NormalizeRemote reports whether ref is a remote icon and returns the
// trimmed reference and the URL to fetch. Protocol-relative references are
// fetched over https.
func NormalizeRemote(ref string) (original, fetchURL string, ok bool) {
	t := strings.TrimSpace(ref)
	lower := strings.ToLower(t)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return t, t, true
	case strings.HasPrefix(lower, "//"):
		return t, "https:" + t, true
	}
	return "", "", false
}

// CollectTargets returns the remote icons of cfg, search engines first and
// then links, deduplicated by original reference in first-seen order.
func CollectTargets(cfg *dove.Config) []dove.IconTarget {
	var targets []dove.IconTarget
	seen := make(map[string]struct{})
	add := func(ref string) {
		original, fetchURL, ok := NormalizeRemote(ref)
		if !ok {
			return
		}
		if _, dup := seen[original]; dup {
			return
		}
		seen[original] = struct{}{}
		targets = append(targets, dove.IconTarget{Original: original, FetchURL: fetchURL})
	}
	for _, e := range cfg.Site.SearchEngines {
		add(e.Icon)
	}
	for _, g := range cfg.Groups {
		for _, l := range g.Links {
			add(l.Icon)
		}
	}
	return targets
}

// CacheName returns the extension-less cache file name for fetchURL.
func CacheName(fetchURL string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fetchURL))
	return fmt.Sprintf("i_%016x", h.Sum64())
}

// Ext picks the cache file extension from the response content type,
// falling back to the extension of the URL's last path segment and
// finally to "bin".
func Ext(contentType, fetchURL string) string {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mt {
		case "image/svg+xml":
			return "svg"
		case "image/png":
			return "png"
		case "image/x-icon", "image/vnd.microsoft.icon":
			return "ico"
		case "image/jpeg", "image/jpg":
			return "jpg"
		case "image/gif":
			return "gif"
		case "image/webp":
			return "webp"
		case "image/avif":
			return "avif"
		}
	}
	u, err := url.Parse(fetchURL)
	if err != nil {
		return "bin"
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(u.Path), "."))
	switch ext {
	case "jpeg":
		return "jpg"
	case "svg", "png", "ico", "jpg", "gif", "webp", "avif":
		return ext
	}
	return "bin"
}
