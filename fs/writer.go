// Package fs writes the generated site to disk.
package fs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Writer writes files below a root directory, skipping files whose content
// is already on disk. It is safe for concurrent use.
type Writer struct {
	root string

	mu        sync.Mutex
	sums      map[string]uint64
	written   int
	unchanged int
}

// NewWriter creates a new Writer rooted at root.
func NewWriter(root string) *Writer {
	return &Writer{root: root, sums: make(map[string]uint64)}
}

// Root returns the directory files are written to.
func (w *Writer) Root() string {
	return w.root
}

// Path returns the absolute location of a slash separated relative path.
func (w *Writer) Path(rel string) string {
	return filepath.Join(w.root, filepath.FromSlash(rel))
}

// WriteFile writes data to rel, creating parent directories.
// It reports whether the file was (re)written.
func (w *Writer) WriteFile(rel string, data []byte) (bool, error) {
	full := w.Path(rel)
	sum := xxhash.Sum64(data)

	changed := true
	if old, err := os.ReadFile(full); err == nil && len(old) == len(data) && xxhash.Sum64(old) == sum {
		changed = false
	}
	if changed {
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return false, fmt.Errorf("failed to write %s: %w", rel, err)
		}
		if err := os.WriteFile(full, data, 0o644); err != nil {
			return false, fmt.Errorf("failed to write %s: %w", rel, err)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.sums[filepath.ToSlash(filepath.Clean(rel))] = sum
	if changed {
		w.written++
	} else {
		w.unchanged++
	}
	return changed, nil
}

// CopyFile copies the file at src to rel.
func (w *Writer) CopyFile(src, rel string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	_, err = w.WriteFile(rel, data)
	return err
}

// CopyDir copies every regular file below src into rel, keeping the
// directory structure. An empty rel copies into the root.
func (w *Writer) CopyDir(src, rel string) error {
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to copy %s: %w", p, err)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		sub, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		return w.CopyFile(p, filepath.ToSlash(filepath.Join(rel, sub)))
	})
}

// Remove deletes rel if it exists.
func (w *Writer) Remove(rel string) error {
	err := os.Remove(w.Path(rel))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Stats returns how many files were written and how many were already
// up to date.
func (w *Writer) Stats() (written, unchanged int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written, w.unchanged
}

// Checksums returns the xxhash64 of every file handled so far, keyed by
// relative path, formatted as 16 hex digits.
func (w *Writer) Checksums() map[string]string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[string]string, len(w.sums))
	for k, v := range w.sums {
		out[k] = fmt.Sprintf("%016x", v)
	}
	return out
}

// Files returns the relative paths handled so far, sorted.
func (w *Writer) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.sums))
	for k := range w.sums {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
