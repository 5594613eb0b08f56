package dove

import "strings"

// Display modes for a group of links.
const (
	DisplayStandard = "standard"
	DisplayCompact  = "compact"
	DisplayList     = "list"
	DisplayText     = "text"
)

// NormalizeDisplay maps a display mode name or its Chinese alias onto one of
// the display constants. Unknown values map to DisplayStandard.
func NormalizeDisplay(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compact", "简洁":
		return DisplayCompact
	case "list", "列表":
		return DisplayList
	case "text", "文本":
		return DisplayText
	default:
		return DisplayStandard
	}
}

// ResolveDisplay picks the display mode for a group. The group's own setting
// wins, then the site's per-category map, then the site default.
func ResolveDisplay(groupDisplay string, site *Site, category string) string {
	if groupDisplay != "" {
		return NormalizeDisplay(groupDisplay)
	}
	if v, ok := site.CategoryDisplay[category]; ok {
		return NormalizeDisplay(v)
	}
	if site.DefaultCategoryDisplay != "" {
		return NormalizeDisplay(site.DefaultCategoryDisplay)
	}
	return DisplayStandard
}
