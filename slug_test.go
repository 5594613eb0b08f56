package dove_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/dove"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases", in: "Example", want: "example"},
		{name: "collapses punctuation and spaces", in: "Hello, World!", want: "hello-world"},
		{name: "drops leading separators", in: "  --Go--  ", want: "go"},
		{name: "keeps digits", in: "Web 2.0", want: "web-2-0"},
		{name: "drops non-ascii letters", in: "中文Go", want: "go"},
		{name: "non-ascii between words", in: "GitHub 中文 Docs", want: "github-docs"},
		{name: "punctuation only", in: "!!!", want: "link"},
		{name: "empty", in: "", want: "link"},
		{name: "host suffix", in: "Example-example.com", want: "example-example-com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dove.Slugify(tt.in))
		})
	}
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify_Properties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "text")

		slug := dove.Slugify(s)

		if !slugPattern.MatchString(slug) {
			t.Fatalf("Slugify(%q) = %q is not a valid slug", s, slug)
		}
		if again := dove.Slugify(slug); again != slug {
			t.Fatalf("Slugify not idempotent: %q -> %q -> %q", s, slug, again)
		}
	})
}

func TestUniqueSlug(t *testing.T) {
	t.Parallel()

	used := map[string]struct{}{}

	assert.Equal(t, "a", dove.UniqueSlug("a", used))
	assert.Equal(t, "a-2", dove.UniqueSlug("a", used))
	assert.Equal(t, "a-3", dove.UniqueSlug("a", used))
	assert.Contains(t, used, "a-3")
}

func TestSlugAllocator_Allocate(t *testing.T) {
	t.Parallel()

	t.Run("repeated name uses host", func(t *testing.T) {
		t.Parallel()
		a := dove.NewSlugAllocator()

		assert.Equal(t, "example", a.Allocate("Example", "", "example.com"))
		assert.Equal(t, "example-example-com", a.Allocate("example", "", "example.com"))
		assert.Equal(t, "example-example-com-2", a.Allocate("EXAMPLE", "", "example.com"))
	})

	t.Run("repeated name without host falls back to counter", func(t *testing.T) {
		t.Parallel()
		a := dove.NewSlugAllocator()

		assert.Equal(t, "link", a.Allocate("!!!", "", ""))
		assert.Equal(t, "link-2", a.Allocate("!!!", "", ""))
	})

	t.Run("explicit slug is normalized and disambiguated", func(t *testing.T) {
		t.Parallel()
		a := dove.NewSlugAllocator()

		assert.Equal(t, "docs", a.Allocate("Docs", "", "docs.test"))
		assert.Equal(t, "docs-2", a.Allocate("Other", "Docs", "other.test"))
		assert.Equal(t, "my-slug", a.Allocate("Third", "My Slug", ""))
	})
}

func TestSlugAllocator_Properties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOf(rapid.SampledFrom([]string{"Example", "example", "Docs", "!!", "", "Go 中文"})).Draw(t, "names")
		hosts := rapid.SliceOfN(rapid.SampledFrom([]string{"", "example.com", "docs.test"}), len(names), len(names)).Draw(t, "hosts")

		first := allocateAll(names, hosts)
		second := allocateAll(names, hosts)

		seen := map[string]bool{}
		for _, s := range first {
			if seen[s] {
				t.Fatalf("duplicate slug %q in %v", s, first)
			}
			seen[s] = true
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("allocation not deterministic: %v vs %v", first, second)
			}
		}
	})
}

func allocateAll(names, hosts []string) []string {
	a := dove.NewSlugAllocator()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = a.Allocate(n, "", hosts[i])
	}
	return out
}
