package dove

import (
	"net/url"
	"strings"
)

// Hostname returns the host of an absolute URL without port, or "" when
// rawURL cannot be parsed.
func Hostname(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// SafeSubpath normalizes a slash separated path, dropping empty, "." and
// ".." segments. It returns "" when nothing remains.
func SafeSubpath(p string) string {
	var segs []string
	for _, seg := range strings.Split(p, "/") {
		seg = strings.TrimSpace(seg)
		if seg == "" || seg == "." || seg == ".." {
			continue
		}
		segs = append(segs, seg)
	}
	return strings.Join(segs, "/")
}

// JoinURL composes a page location from an optional base URL, an optional
// base path and a site-relative sub path. The base path is normalized with
// SafeSubpath so locations match the output directory. Without a base URL
// the result is relative.
func JoinURL(baseURL, basePath, sub string) string {
	var b strings.Builder
	bp := SafeSubpath(basePath)
	if baseURL != "" {
		b.WriteString(strings.TrimRight(baseURL, "/"))
		if bp != "" {
			b.WriteByte('/')
			b.WriteString(bp)
		}
		b.WriteByte('/')
	} else if bp != "" {
		b.WriteString(bp)
		b.WriteByte('/')
	}
	b.WriteString(strings.Trim(sub, "/"))
	return b.String()
}

// ApplyUTM appends the non-empty UTM parameters to rawURL, keeping the rest
// of its existing query in order. A configured key already present in
// rawURL is replaced. rawURL is returned unchanged when utm sets nothing or
// rawURL is not an absolute URL.
func ApplyUTM(rawURL string, utm *UTMParams) string {
	if utm.IsZero() {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() {
		return rawURL
	}
	pairs := []struct{ key, value string }{
		{"utm_source", utm.Source},
		{"utm_medium", utm.Medium},
		{"utm_campaign", utm.Campaign},
		{"utm_term", utm.Term},
		{"utm_content", utm.Content},
	}
	set := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		if p.value != "" {
			set[p.key] = true
		}
	}
	var q strings.Builder
	for _, part := range strings.Split(u.RawQuery, "&") {
		if part == "" {
			continue
		}
		key, _, _ := strings.Cut(part, "=")
		if k, err := url.QueryUnescape(key); err == nil && set[k] {
			continue
		}
		if q.Len() > 0 {
			q.WriteByte('&')
		}
		q.WriteString(part)
	}
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		if q.Len() > 0 {
			q.WriteByte('&')
		}
		q.WriteString(url.QueryEscape(p.key))
		q.WriteByte('=')
		q.WriteString(url.QueryEscape(p.value))
	}
	u.RawQuery = q.String()
	u.ForceQuery = false
	return u.String()
}

// IsRemote reports whether ref is an absolute http(s), protocol-relative or
// data: reference.
func IsRemote(ref string) bool {
	lower := strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "//") ||
		strings.HasPrefix(lower, "data:")
}

// ResolveIconForPage makes an icon reference usable from a page whose
// asset prefix is prefix ("" at the site root, "../" one level down).
func ResolveIconForPage(icon, prefix string) string {
	s := strings.TrimSpace(icon)
	switch {
	case IsRemote(s):
		return s
	case strings.HasPrefix(s, "/"):
		return prefix + strings.TrimLeft(s, "/")
	case strings.HasPrefix(s, "./"), strings.HasPrefix(s, "../"):
		return s
	default:
		return prefix + s
	}
}

// ResolveIconForDetail makes an icon reference usable from a detail page,
// which lives two directories below the site root.
func ResolveIconForDetail(icon string) string {
	s := strings.TrimSpace(icon)
	if IsRemote(s) {
		return s
	}
	return "../../" + strings.TrimLeft(s, "/")
}
