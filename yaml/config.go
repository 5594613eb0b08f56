// Package yaml loads dove configuration files. Files may pull in other
// files through a top-level include (or includes) key.
package yaml

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/dove"
	"gopkg.in/yaml.v3"
)

// Candidates are the file names tried by Discover, in order.
var Candidates = []string{"dove.yaml", "dove.yml", "config.yaml", "config.yml"}

// Discover returns the first candidate config file found in dir, then in
// dir/dove. It returns "" if there is none.
func Discover(dir string) string {
	for _, d := range []string{dir, filepath.Join(dir, "dove")} {
		for _, name := range Candidates {
			p := filepath.Join(d, name)
			if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
				return p
			}
		}
	}
	return ""
}

// Load reads the config file at path, expanding local includes.
func Load(path string) (*dove.Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	tree, err := readLocal(abs)
	if err != nil {
		return nil, err
	}
	l := &loader{stack: map[string]bool{abs: true}}
	tree, err = l.expand(tree, filepath.Dir(abs), nil)
	if err != nil {
		return nil, err
	}
	return decode(tree, path)
}

// LoadURL fetches the config at rawURL with g, expanding includes relative
// to its location.
func LoadURL(ctx context.Context, g dove.Getter, rawURL string) (*dove.Config, error) {
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, dove.Errorf(dove.EINVALID, "invalid config url %q", rawURL)
	}
	l := &loader{ctx: ctx, getter: g, stack: map[string]bool{base.String(): true}}
	tree, err := l.readRemote(base)
	if err != nil {
		return nil, err
	}
	tree, err = l.expand(tree, "", base)
	if err != nil {
		return nil, err
	}
	return decode(tree, rawURL)
}

// Parse decodes a single config document without include support.
func Parse(data []byte) (*dove.Config, error) {
	tree, err := unmarshal(data, "config")
	if err != nil {
		return nil, err
	}
	return decode(tree, "config")
}

type loader struct {
	ctx    context.Context
	getter dove.Getter

	// stack holds the documents currently being expanded.
	stack map[string]bool
}

// expand replaces the include keys of a top-level mapping with the merged
// contents of the included documents. Included documents are merged in
// order, then the including document on top. Local includes resolve
// against dir, remote ones against base.
func (l *loader) expand(tree any, dir string, base *url.URL) (any, error) {
	m, ok := tree.(map[string]any)
	if !ok {
		return tree, nil
	}
	refs, err := takeIncludes(m)
	if err != nil || len(refs) == 0 {
		return m, err
	}

	var acc any = map[string]any{}
	for _, ref := range refs {
		docs, err := l.include(ref, dir, base)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			acc = merge(acc, doc)
		}
	}
	return merge(acc, m), nil
}

func (l *loader) include(ref, dir string, base *url.URL) ([]any, error) {
	if base != nil || isURL(ref) {
		target, err := resolveURL(base, ref)
		if err != nil {
			return nil, err
		}
		doc, err := l.enter(target.String(), func() (any, error) {
			tree, err := l.readRemote(target)
			if err != nil {
				return nil, err
			}
			return l.expand(tree, "", target)
		})
		if err != nil {
			return nil, err
		}
		return []any{doc}, nil
	}

	pattern := ref
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(dir, ref)
	}
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, dove.Errorf(dove.EINVALID, "invalid include pattern %q", ref)
	}
	if len(paths) == 0 {
		return nil, dove.Errorf(dove.EINVALID, "include not found: %s", pattern)
	}
	sort.Strings(paths)

	docs := make([]any, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		doc, err := l.enter(abs, func() (any, error) {
			tree, err := readLocal(abs)
			if err != nil {
				return nil, err
			}
			return l.expand(tree, filepath.Dir(abs), nil)
		})
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// enter runs load with key on the include stack and wraps a root sequence
// into a groups mapping.
func (l *loader) enter(key string, load func() (any, error)) (any, error) {
	if l.stack[key] {
		return nil, dove.Errorf(dove.EINVALID, "include cycle detected: %s", key)
	}
	l.stack[key] = true
	defer delete(l.stack, key)

	doc, err := load()
	if err != nil {
		return nil, err
	}
	if seq, ok := doc.([]any); ok {
		doc = map[string]any{"groups": seq}
	}
	return doc, nil
}

func (l *loader) readRemote(u *url.URL) (any, error) {
	if l.getter == nil {
		return nil, dove.Errorf(dove.EINVALID, "remote include not supported: %s", u)
	}
	data, err := l.getter.Get(l.ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to download config %s: %w", u, err)
	}
	return unmarshal(data, u.String())
}

func readLocal(path string) (any, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, dove.Errorf(dove.ENOTFOUND, "config file not found: %s", path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return unmarshal(data, path)
}

func unmarshal(data []byte, source string) (any, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, dove.Errorf(dove.EINVALID, "failed to parse %s: %v", source, err)
	}
	return tree, nil
}

// takeIncludes removes and returns the include and includes entries.
func takeIncludes(m map[string]any) ([]string, error) {
	var refs []string
	for _, key := range []string{"include", "includes"} {
		v, ok := m[key]
		if !ok {
			continue
		}
		delete(m, key)
		switch v := v.(type) {
		case nil:
		case string:
			if s := strings.TrimSpace(v); s != "" {
				refs = append(refs, s)
			}
		case []any:
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, dove.Errorf(dove.EINVALID, "%s entries must be strings", key)
				}
				if s = strings.TrimSpace(s); s != "" {
					refs = append(refs, s)
				}
			}
		default:
			return nil, dove.Errorf(dove.EINVALID, "%s must be a string or a list of strings", key)
		}
	}
	return refs, nil
}

// merge overlays b onto a. Mappings merge key by key, sequences
// concatenate, anything else is replaced by b.
func merge(a, b any) any {
	switch bv := b.(type) {
	case map[string]any:
		av, ok := a.(map[string]any)
		if !ok {
			return bv
		}
		out := make(map[string]any, len(av)+len(bv))
		for k, v := range av {
			out[k] = v
		}
		for k, v := range bv {
			if old, ok := out[k]; ok {
				out[k] = merge(old, v)
			} else {
				out[k] = v
			}
		}
		return out
	case []any:
		av, ok := a.([]any)
		if !ok {
			return bv
		}
		out := make([]any, 0, len(av)+len(bv))
		out = append(out, av...)
		return append(out, bv...)
	}
	return b
}

func isURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func resolveURL(base *url.URL, ref string) (*url.URL, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, dove.Errorf(dove.EINVALID, "invalid include %q", ref)
	}
	if base == nil {
		return u, nil
	}
	return base.ResolveReference(u), nil
}
