package dove

import (
	"strconv"
	"strings"
)

// Slugify converts text into a URL path segment. ASCII letters and digits
// are kept (lowercased), every run of other characters becomes a single '-',
// leading and trailing separators are dropped. Text with no ASCII
// alphanumerics yields "link".
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	dash := false
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			dash = false
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimRight(b.String(), "-")
	if s == "" {
		return "link"
	}
	return s
}

// UniqueSlug returns base if it is not in used, otherwise the first free
// base-2, base-3, ... The returned slug is added to used.
func UniqueSlug(base string, used map[string]struct{}) string {
	slug := base
	for i := 2; ; i++ {
		if _, ok := used[slug]; !ok {
			break
		}
		slug = base + "-" + strconv.Itoa(i)
	}
	used[slug] = struct{}{}
	return slug
}

// SlugAllocator assigns build-unique slugs to external links.
// It is not safe for concurrent use.
type SlugAllocator struct {
	used  map[string]struct{}
	names map[string]int
}

// NewSlugAllocator returns an empty allocator.
func NewSlugAllocator() *SlugAllocator {
	return &SlugAllocator{
		used:  make(map[string]struct{}),
		names: make(map[string]int),
	}
}

// Allocate returns the slug for a link. An explicit slug is normalized and
// disambiguated. Otherwise the first link with a given name (compared
// case-insensitively) gets Slugify(name) and later ones get
// Slugify(name + "-" + host) when host is known.
func (a *SlugAllocator) Allocate(name, explicit, host string) string {
	var base string
	if explicit != "" {
		base = Slugify(explicit)
	} else {
		key := strings.ToLower(name)
		a.names[key]++
		if a.names[key] > 1 && host != "" {
			base = Slugify(name + "-" + host)
		} else {
			base = Slugify(name)
		}
	}
	return UniqueSlug(base, a.used)
}
