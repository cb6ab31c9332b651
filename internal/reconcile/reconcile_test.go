package reconcile

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mik-tf/mdtodocu/internal/lookup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, name, text string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
}

func TestRunCopiesMissingImage(t *testing.T) {
	search, out := t.TempDir(), t.TempDir()
	writeFile(t, search, "media/pic.png", "pngdata")
	writeFile(t, out, "doc.md", "![](./img/pic.png)")

	rec := New(lookup.New(search), io.Discard)
	missing, err := rec.Run(out)
	require.NoError(t, err)
	assert.Empty(t, missing)

	data, err := os.ReadFile(filepath.Join(out, "img", "pic.png"))
	require.NoError(t, err)
	assert.Equal(t, "pngdata", string(data))
}

func TestRunLeavesPresentImagesAlone(t *testing.T) {
	search, out := t.TempDir(), t.TempDir()
	writeFile(t, out, "doc.md", "![](./img/pic.png)")
	writeFile(t, out, "img/pic.png", "already here")

	rec := New(lookup.New(search), io.Discard)
	missing, err := rec.Run(out)
	require.NoError(t, err)
	assert.Empty(t, missing)

	data, err := os.ReadFile(filepath.Join(out, "img", "pic.png"))
	require.NoError(t, err)
	assert.Equal(t, "already here", string(data), "existing asset must not be overwritten")
}

func TestRunReportsUnresolvedImages(t *testing.T) {
	search, out := t.TempDir(), t.TempDir()
	writeFile(t, out, "a/doc.md", "![](./img/lost.png)\n![](./img/lost.png)")
	writeFile(t, out, "b/doc.md", "![](./img/gone.jpg)")

	rec := New(lookup.New(search), io.Discard)
	missing, err := rec.Run(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"lost.png", "gone.jpg"}, missing, "deduplicated, walk order")
}

func TestRunIdempotent(t *testing.T) {
	search, out := t.TempDir(), t.TempDir()
	writeFile(t, search, "pic.png", "pngdata")
	writeFile(t, out, "doc.md", "![](./img/pic.png)")

	rec := New(lookup.New(search), io.Discard)

	_, err := rec.Run(out)
	require.NoError(t, err)
	first, err := os.Stat(filepath.Join(out, "img", "pic.png"))
	require.NoError(t, err)

	missing, err := rec.Run(out)
	require.NoError(t, err)
	assert.Empty(t, missing)

	second, err := os.Stat(filepath.Join(out, "img", "pic.png"))
	require.NoError(t, err)
	assert.Equal(t, first.ModTime(), second.ModTime(), "second run must not rewrite the asset")
}

func TestWriteLog(t *testing.T) {
	t.Run("writes one line per image", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mdtodocu.log")
		require.NoError(t, WriteLog(path, []string{"a.png", "b.jpg"}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Image \"a.png\" cannot be found.\nImage \"b.jpg\" cannot be found.\n", string(data))
	})

	t.Run("no log when nothing is missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mdtodocu.log")
		require.NoError(t, WriteLog(path, nil))
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("stale log is removed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mdtodocu.log")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
		require.NoError(t, WriteLog(path, nil))
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})
}
