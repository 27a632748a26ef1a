package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	g "maragu.dev/gomponents"
)

func TestSiteWritesPageAndAssets(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "dist")
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "stale.txt"), []byte("old"), 0o644))

	assets := fstest.MapFS{
		"js/site.js":  {Data: []byte("js")},
		"favicon.svg": {Data: []byte("<svg/>")},
	}

	report, err := Site(context.Background(), Options{
		OutputDir: out,
		Page:      g.El("p", g.Text("hello")),
		Assets:    assets,
		Logger:    zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	require.Equal(t, 3, report.Files)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	require.Equal(t, "<p>hello</p>", string(index))

	js, err := os.ReadFile(filepath.Join(out, "assets", "js", "site.js"))
	require.NoError(t, err)
	require.Equal(t, "js", string(js))

	_, err = os.Stat(filepath.Join(out, "stale.txt"))
	require.True(t, os.IsNotExist(err), "output directory is cleaned first")
}

func TestSiteRejectsUnsafeOutput(t *testing.T) {
	t.Parallel()

	page := g.Text("x")
	for _, dir := range []string{"", " ", "/"} {
		_, err := Site(context.Background(), Options{OutputDir: dir, Page: page})
		require.Error(t, err, "dir %q", dir)
	}

	_, err := Site(context.Background(), Options{OutputDir: t.TempDir()})
	require.Error(t, err, "page is required")
}

func TestOutputDirRefusesAncestors(t *testing.T) {
	t.Parallel()

	wd, err := os.Getwd()
	require.NoError(t, err)

	unsafe := []string{".", "..", "../..", wd, filepath.Dir(wd), string(filepath.Separator)}
	if home, err := os.UserHomeDir(); err == nil && home != "" && home != filepath.Dir(home) {
		unsafe = append(unsafe, home, filepath.Dir(home))
	}
	for _, dir := range unsafe {
		_, err := outputDir(dir)
		require.Error(t, err, "dir %q", dir)
	}

	for _, dir := range []string{"dist", "./out/site", filepath.Join(t.TempDir(), "dist")} {
		got, err := outputDir(dir)
		require.NoError(t, err, "dir %q", dir)
		require.Equal(t, filepath.Clean(dir), got)
	}
}

func TestWithin(t *testing.T) {
	t.Parallel()

	root := filepath.Join(string(filepath.Separator), "srv", "site")
	require.True(t, within(root, root))
	require.True(t, within(root, filepath.Join(root, "dist")))
	require.False(t, within(root, filepath.Dir(root)))
	require.False(t, within(root, filepath.Join(string(filepath.Separator), "srv", "site-other")))
}

func TestSiteHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Site(ctx, Options{
		OutputDir: filepath.Join(t.TempDir(), "dist"),
		Page:      g.Text("x"),
		Assets:    fstest.MapFS{"a.txt": {Data: []byte("a")}},
	})
	require.ErrorIs(t, err, context.Canceled)
}
