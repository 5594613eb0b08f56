package dove_test

import (
	"net/url"
	"testing"

	"github.com/fwojciec/dove"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostname(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com", dove.Hostname("https://example.com:8080/path"))
	assert.Equal(t, "example.com", dove.Hostname(" https://example.com "))
	assert.Empty(t, dove.Hostname("not a url"))
	assert.Empty(t, dove.Hostname("://bad"))
}

func TestSafeSubpath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "team", want: "team"},
		{in: "/a/b/c/", want: "a/b/c"},
		{in: "a/./b/../c", want: "a/b/c"},
		{in: " x / y ", want: "x/y"},
		{in: "../..", want: ""},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dove.SafeSubpath(tt.in))
		})
	}
}

func TestJoinURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     string
		basePath string
		sub      string
		want     string
	}{
		{name: "absolute with base path", base: "https://nav.test/", basePath: "/team/", sub: "go/x/index.html", want: "https://nav.test/team/go/x/index.html"},
		{name: "absolute without base path", base: "https://nav.test", sub: "index.html", want: "https://nav.test/index.html"},
		{name: "absolute with slash base path", base: "https://nav.test", basePath: "/", sub: "/index.html", want: "https://nav.test/index.html"},
		{name: "relative with base path", basePath: "team", sub: "/index.html", want: "team/index.html"},
		{name: "relative bare", sub: "intranet/index.html", want: "intranet/index.html"},
		{name: "parent segments dropped", base: "https://nav.test", basePath: "../team", sub: "index.html", want: "https://nav.test/team/index.html"},
		{name: "dot segments dropped", basePath: "./a/../b/", sub: "sitemap.xml", want: "a/b/sitemap.xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dove.JoinURL(tt.base, tt.basePath, tt.sub))
		})
	}
}

func TestApplyUTM(t *testing.T) {
	t.Parallel()

	t.Run("nil params leave url unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "https://a.test/?x=1", dove.ApplyUTM("https://a.test/?x=1", nil))
	})

	t.Run("empty params leave url unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "https://a.test/?x=1", dove.ApplyUTM("https://a.test/?x=1", &dove.UTMParams{}))
	})

	t.Run("relative url is unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "docs/page", dove.ApplyUTM("docs/page", &dove.UTMParams{Source: "nav"}))
	})

	t.Run("appends configured keys after existing query", func(t *testing.T) {
		t.Parallel()

		got := dove.ApplyUTM("https://a.test/p?x=1#top", &dove.UTMParams{Source: "nav", Campaign: "spring sale"})

		assert.Equal(t, "https://a.test/p?x=1&utm_source=nav&utm_campaign=spring+sale#top", got)
	})

	t.Run("replaces utm keys already in the url", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			in   string
			utm  *dove.UTMParams
			want string
		}{
			{
				name: "existing source replaced",
				in:   "https://a.test/p?utm_source=x&q=1",
				utm:  &dove.UTMParams{Source: "nav"},
				want: "https://a.test/p?q=1&utm_source=nav",
			},
			{
				name: "duplicate existing keys collapse",
				in:   "https://a.test/p?utm_medium=a&utm_medium=b",
				utm:  &dove.UTMParams{Medium: "link"},
				want: "https://a.test/p?utm_medium=link",
			},
			{
				name: "unconfigured utm keys kept",
				in:   "https://a.test/p?utm_term=old&q=1",
				utm:  &dove.UTMParams{Source: "nav"},
				want: "https://a.test/p?utm_term=old&q=1&utm_source=nav",
			},
			{
				name: "escaped key recognized",
				in:   "https://a.test/p?utm%5Fsource=x",
				utm:  &dove.UTMParams{Source: "nav"},
				want: "https://a.test/p?utm_source=nav",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				assert.Equal(t, tt.want, dove.ApplyUTM(tt.in, tt.utm))
			})
		}
	})

	t.Run("each configured key appears exactly once", func(t *testing.T) {
		t.Parallel()

		got := dove.ApplyUTM("https://a.test/?q=go&page=2", &dove.UTMParams{
			Source: "s", Medium: "m", Campaign: "c", Term: "t", Content: "ct",
		})

		u, err := url.Parse(got)
		require.NoError(t, err)
		q := u.Query()
		assert.Equal(t, []string{"go"}, q["q"])
		assert.Equal(t, []string{"2"}, q["page"])
		for key, want := range map[string]string{
			"utm_source": "s", "utm_medium": "m", "utm_campaign": "c", "utm_term": "t", "utm_content": "ct",
		} {
			assert.Equal(t, []string{want}, q[key], key)
		}
		assert.Len(t, q, 7)
	})
}

func TestResolveIconForPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		icon   string
		prefix string
		want   string
	}{
		{name: "remote", icon: "https://cdn.test/a.png", prefix: "../", want: "https://cdn.test/a.png"},
		{name: "protocol relative", icon: "//cdn.test/a.png", prefix: "../", want: "//cdn.test/a.png"},
		{name: "data uri", icon: "data:image/png;base64,AA", prefix: "../", want: "data:image/png;base64,AA"},
		{name: "root relative at root", icon: "/assets/a.png", prefix: "", want: "assets/a.png"},
		{name: "root relative in subdir", icon: "/assets/a.png", prefix: "../", want: "../assets/a.png"},
		{name: "dot relative", icon: "./a.png", prefix: "../", want: "./a.png"},
		{name: "parent relative", icon: "../a.png", prefix: "../", want: "../a.png"},
		{name: "bare relative in subdir", icon: "assets/icons/i_1.png", prefix: "../", want: "../assets/icons/i_1.png"},
		{name: "bare relative at root", icon: "assets/icons/i_1.png", prefix: "", want: "assets/icons/i_1.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dove.ResolveIconForPage(tt.icon, tt.prefix))
		})
	}
}

func TestResolveIconForDetail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "HTTPS://cdn.test/a.png", dove.ResolveIconForDetail("HTTPS://cdn.test/a.png"))
	assert.Equal(t, "../../assets/a.png", dove.ResolveIconForDetail("/assets/a.png"))
	assert.Equal(t, "../../assets/icons/i_1.svg", dove.ResolveIconForDetail("assets/icons/i_1.svg"))
}
