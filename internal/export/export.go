// Package export writes the rendered site to a directory for static hosting.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"impractical.co/elysion"
	"impractical.co/elysion/render"
)

// StaticDir is the directory, relative to the export root, static files are
// copied into.
const StaticDir = "static"

// Write renders the home page to dir/index.html and copies staticFiles into
// dir/static, replacing whatever a previous export left there. Nothing is
// written if the page fails to render.
func Write(ctx context.Context, dir string, site *elysion.Site, staticFiles fs.FS) error {
	var page bytes.Buffer
	if err := render.Execute(ctx, &page, site, site.HomePage()); err != nil {
		return fmt.Errorf("rendering home page: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), page.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing index.html: %w", err)
	}

	staticDir := filepath.Join(dir, StaticDir)
	if err := os.RemoveAll(staticDir); err != nil {
		return fmt.Errorf("clearing %s: %w", staticDir, err)
	}
	if err := os.CopyFS(staticDir, staticFiles); err != nil {
		return fmt.Errorf("copying static files: %w", err)
	}
	return nil
}
