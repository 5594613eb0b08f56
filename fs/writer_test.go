package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/dove/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		w := fs.NewWriter(root)

		written, err := w.WriteFile("go/docs/index.html", []byte("<p>hi</p>"))

		require.NoError(t, err)
		assert.True(t, written)
		data, err := os.ReadFile(filepath.Join(root, "go", "docs", "index.html"))
		require.NoError(t, err)
		assert.Equal(t, "<p>hi</p>", string(data))
	})

	t.Run("skips unchanged content", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "robots.txt"), []byte("User-agent: *\n"), 0o644))
		old := time.Now().Add(-time.Hour).Truncate(time.Second)
		require.NoError(t, os.Chtimes(filepath.Join(root, "robots.txt"), old, old))
		w := fs.NewWriter(root)

		written, err := w.WriteFile("robots.txt", []byte("User-agent: *\n"))

		require.NoError(t, err)
		assert.False(t, written)
		fi, err := os.Stat(filepath.Join(root, "robots.txt"))
		require.NoError(t, err)
		assert.True(t, old.Equal(fi.ModTime()), "file should not be rewritten")
		gotWritten, gotUnchanged := w.Stats()
		assert.Equal(t, 0, gotWritten)
		assert.Equal(t, 1, gotUnchanged)
	})

	t.Run("rewrites changed content", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		w := fs.NewWriter(root)
		_, err := w.WriteFile("index.html", []byte("v1"))
		require.NoError(t, err)

		written, err := w.WriteFile("index.html", []byte("v2"))

		require.NoError(t, err)
		assert.True(t, written)
		data, err := os.ReadFile(filepath.Join(root, "index.html"))
		require.NoError(t, err)
		assert.Equal(t, "v2", string(data))
	})

	t.Run("records checksums by slash path", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		_, err := w.WriteFile("intranet/index.html", []byte("x"))
		require.NoError(t, err)

		sums := w.Checksums()

		assert.Len(t, sums, 1)
		assert.Regexp(t, `^[0-9a-f]{16}$`, sums["intranet/index.html"])
		assert.Equal(t, []string{"intranet/index.html"}, w.Files())
	})

	t.Run("fails when a parent is a file", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "go"), []byte("file"), 0o644))
		w := fs.NewWriter(root)

		_, err := w.WriteFile("go/x/index.html", []byte("x"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write go/x/index.html")
	})
}

func TestWriter_CopyDir(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "css", "style.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sw.js"), []byte("self"), 0o644))
	root := t.TempDir()
	w := fs.NewWriter(root)

	err := w.CopyDir(src, "assets")

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "assets", "css", "style.css"))
	assert.FileExists(t, filepath.Join(root, "assets", "sw.js"))
	assert.Equal(t, []string{"assets/css/style.css", "assets/sw.js"}, w.Files())
}

func TestWriter_CopyDir_MissingSource(t *testing.T) {
	t.Parallel()

	w := fs.NewWriter(t.TempDir())

	err := w.CopyDir(filepath.Join(t.TempDir(), "missing"), "")

	require.Error(t, err)
}

func TestWriter_Remove(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "intranet.html"), []byte("old"), 0o644))
	w := fs.NewWriter(root)

	require.NoError(t, w.Remove("intranet.html"))
	require.NoError(t, w.Remove("intranet.html"))

	assert.NoFileExists(t, filepath.Join(root, "intranet.html"))
}
