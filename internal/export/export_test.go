package export_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impractical.co/elysion"
	"impractical.co/elysion/assets"
	"impractical.co/elysion/content"
	"impractical.co/elysion/internal/export"
	"impractical.co/elysion/static"
)

func newSite(t *testing.T) *elysion.Site {
	t.Helper()
	bundle, err := content.Default()
	require.NoError(t, err)
	site, err := elysion.NewSite(bundle, assets.NewCatalog(static.FS, export.StaticDir))
	require.NoError(t, err)
	return site
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, export.Write(context.Background(), dir, newSite(t), static.FS))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "<title>ELYSION 5.0</title>")
	assert.Contains(t, string(index), `href="static/css/site.css?v=`)

	for _, name := range []string{"css/site.css", "images/couple-dance.svg", "images/workshop-photography.svg", "images/workshop-ar-vr.svg"} {
		_, err := os.Stat(filepath.Join(dir, export.StaticDir, filepath.FromSlash(name)))
		assert.NoError(t, err, name)
	}
}

func TestWriteTwice(t *testing.T) {
	dir := t.TempDir()
	site := newSite(t)
	require.NoError(t, export.Write(context.Background(), dir, site, static.FS))

	stale := filepath.Join(dir, export.StaticDir, "old.css")
	require.NoError(t, os.WriteFile(stale, []byte("body{}"), 0o600))

	require.NoError(t, export.Write(context.Background(), dir, site, static.FS))
	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteCopiesGivenFiles(t *testing.T) {
	dir := t.TempDir()
	files := fstest.MapFS{"robots.txt": {Data: []byte("User-agent: *\n")}}
	require.NoError(t, export.Write(context.Background(), dir, newSite(t), files))

	got, err := os.ReadFile(filepath.Join(dir, export.StaticDir, "robots.txt"))
	require.NoError(t, err)
	assert.Equal(t, "User-agent: *\n", string(got))
}
