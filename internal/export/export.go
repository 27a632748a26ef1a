// Package export writes the landing page and its assets as a static site.
package export

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"
)

const defaultAssetsDir = "assets"

// Options configures a static export.
type Options struct {
	// OutputDir is removed and recreated on every export.
	OutputDir string
	Page      g.Node
	// Assets is copied below AssetsDir. Nil skips the copy.
	Assets    fs.FS
	AssetsDir string
	Logger    *zap.Logger
}

// Report summarises a finished export.
type Report struct {
	OutputDir string
	Files     int
}

// Site renders Page to index.html and copies Assets into the output directory.
func Site(ctx context.Context, opts Options) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Page == nil {
		return Report{}, errors.New("export: page is required")
	}
	out, err := outputDir(opts.OutputDir)
	if err != nil {
		return Report{}, err
	}
	assetsDir := opts.AssetsDir
	if assetsDir == "" {
		assetsDir = defaultAssetsDir
	}

	logger.Info("cleaning output directory", zap.String("dir", out))
	if err := os.RemoveAll(out); err != nil {
		return Report{}, fmt.Errorf("export: clean %s: %w", out, err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return Report{}, fmt.Errorf("export: create %s: %w", out, err)
	}

	report := Report{OutputDir: out}
	if err := writePage(filepath.Join(out, "index.html"), opts.Page); err != nil {
		return Report{}, err
	}
	report.Files++

	if opts.Assets != nil {
		n, err := copyTree(ctx, opts.Assets, filepath.Join(out, assetsDir))
		if err != nil {
			return Report{}, err
		}
		report.Files += n
	}

	logger.Info("static export finished", zap.String("dir", out), zap.Int("files", report.Files))
	return report, nil
}

// outputDir refuses any directory whose removal would take the working
// directory, the home directory or the filesystem root with it.
func outputDir(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", errors.New("export: output directory is required")
	}
	cleaned := filepath.Clean(dir)
	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("export: resolve %s: %w", dir, err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("export: resolve working directory: %w", err)
	}

	protected := []string{wd}
	if home, err := os.UserHomeDir(); err == nil && home != "" && home != filepath.Dir(home) {
		protected = append(protected, home)
	}
	if abs == filepath.Dir(abs) {
		return "", fmt.Errorf("export: refusing to clean %s", dir)
	}
	for _, p := range protected {
		if within(abs, p) {
			return "", fmt.Errorf("export: refusing to clean %s: it contains %s", dir, p)
		}
	}
	return cleaned, nil
}

// within reports whether path is root or lies below it.
func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func writePage(path string, page g.Node) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("export: render %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

func copyTree(ctx context.Context, src fs.FS, dst string) (int, error) {
	var files int
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(src, path, target); err != nil {
			return err
		}
		files++
		return nil
	})
	if err != nil {
		return files, fmt.Errorf("export: copy assets: %w", err)
	}
	return files, nil
}

func copyFile(src fs.FS, path, target string) (err error) {
	in, err := src.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
