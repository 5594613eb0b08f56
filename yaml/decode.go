package yaml

import (
	"bytes"

	"github.com/fwojciec/dove"
	"gopkg.in/yaml.v3"
)

// Legacy key names, mapped to their current name per level.
var (
	siteAliases  = map[string]string{"theme": "color_scheme", "root_path": "base_path"}
	groupAliases = map[string]string{"display_mode": "display"}
	linkAliases  = map[string]string{"desc": "intro"}
)

// decode converts a merged document tree into a validated Config.
func decode(tree any, source string) (*dove.Config, error) {
	root, ok := tree.(map[string]any)
	if !ok {
		return nil, dove.Errorf(dove.EINVALID, "%s: top level must be a mapping", source)
	}
	normalize(root)

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, err
	}
	var cfg dove.Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&cfg); err != nil {
		if code := dove.ErrorCode(err); code != dove.EINTERNAL {
			return nil, dove.Errorf(code, "%s: %s", source, dove.ErrorMessage(err))
		}
		return nil, dove.Errorf(dove.EINVALID, "%s: %v", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, dove.Errorf(dove.ErrorCode(err), "%s: %s", source, dove.ErrorMessage(err))
	}
	return &cfg, nil
}

func normalize(root map[string]any) {
	if site, ok := root["site"].(map[string]any); ok {
		rename(site, siteAliases)
	}
	groups, _ := root["groups"].([]any)
	for _, g := range groups {
		group, ok := g.(map[string]any)
		if !ok {
			continue
		}
		rename(group, groupAliases)
		links, _ := group["links"].([]any)
		for _, l := range links {
			if link, ok := l.(map[string]any); ok {
				rename(link, linkAliases)
			}
		}
	}
}

// rename moves alias keys to their current name unless that is already set.
func rename(m map[string]any, aliases map[string]string) {
	for alias, name := range aliases {
		v, ok := m[alias]
		if !ok {
			continue
		}
		delete(m, alias)
		if _, exists := m[name]; !exists {
			m[name] = v
		}
	}
}
