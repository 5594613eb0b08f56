package dove_test

import (
	"testing"

	"github.com/fwojciec/dove"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDisplay(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"standard":  dove.DisplayStandard,
		" Compact ": dove.DisplayCompact,
		"LIST":      dove.DisplayList,
		"text":      dove.DisplayText,
		"标准":        dove.DisplayStandard,
		"简洁":        dove.DisplayCompact,
		"列表":        dove.DisplayList,
		"文本":        dove.DisplayText,
		"grid":      dove.DisplayStandard,
	}
	for in, want := range tests {
		assert.Equal(t, want, dove.NormalizeDisplay(in), in)
	}
}

func TestResolveDisplay(t *testing.T) {
	t.Parallel()

	site := &dove.Site{
		CategoryDisplay:        map[string]string{"Dev": "列表"},
		DefaultCategoryDisplay: "text",
	}

	t.Run("group setting wins", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, dove.DisplayCompact, dove.ResolveDisplay("compact", site, "Dev"))
	})

	t.Run("category map before site default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, dove.DisplayList, dove.ResolveDisplay("", site, "Dev"))
	})

	t.Run("site default for unmapped category", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, dove.DisplayText, dove.ResolveDisplay("", site, "Other"))
	})

	t.Run("standard when nothing is configured", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, dove.DisplayStandard, dove.ResolveDisplay("", &dove.Site{}, "Other"))
	})
}
