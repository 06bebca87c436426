// Package export renders every page of the site to static files.
package export

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/riradoro03/sports-insights-hub/internal/content"
)

// Page is one route to render and the status it must answer with.
type Page struct {
	Path   string
	Status int
}

// Pages lists every route of the site, including one per article and
// the not-found page.
func Pages(store content.Store) []Page {
	pages := []Page{
		{Path: "/", Status: http.StatusOK},
		{Path: "/about", Status: http.StatusOK},
		{Path: "/experiences", Status: http.StatusOK},
		{Path: "/projects", Status: http.StatusOK},
		{Path: "/blog", Status: http.StatusOK},
		{Path: "/contact", Status: http.StatusOK},
	}
	for _, a := range store.Articles() {
		pages = append(pages, Page{Path: "/blog/" + a.Slug, Status: http.StatusOK})
	}
	return append(pages, Page{Path: "/404", Status: http.StatusNotFound})
}

// File is where a page is written below the output directory.
func File(p Page) string {
	if p.Status == http.StatusNotFound {
		return "404.html"
	}
	clean := strings.Trim(path.Clean(p.Path), "/")
	if clean == "" || clean == "." {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(clean), "index.html")
}

// Run renders pages through h into outDir and copies the static tree.
// outDir is removed first.
func Run(ctx context.Context, h http.Handler, pages []Page, static fs.FS, outDir string, logger *slog.Logger) error {
	if err := os.RemoveAll(outDir); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", outDir, err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", outDir, err)
	}

	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := renderPage(ctx, h, p, outDir); err != nil {
			return err
		}
		logger.Debug("Exported page", slog.String("path", p.Path), slog.String("file", File(p)))
	}

	if err := copyTree(static, outDir); err != nil {
		return fmt.Errorf("failed to copy static assets: %w", err)
	}
	for src, dst := range map[string]string{
		"static/robots.txt":         "robots.txt",
		"static/images/favicon.ico": "favicon.ico",
	} {
		if err := copyFile(static, src, filepath.Join(outDir, dst)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to copy %s: %w", src, err)
		}
	}

	logger.Info("Exported site", slog.String("output_dir", outDir), slog.Int("pages", len(pages)))
	return nil
}

func renderPage(ctx context.Context, h http.Handler, p Page, outDir string) error {
	req := httptest.NewRequest(http.MethodGet, p.Path, nil).WithContext(ctx)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != p.Status {
		return fmt.Errorf("page %s answered %d, expected %d", p.Path, w.Code, p.Status)
	}

	dst := filepath.Join(outDir, File(p))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}
	if err := os.WriteFile(dst, w.Body.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}

func copyTree(fsys fs.FS, outDir string) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dst := filepath.Join(outDir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		return copyFile(fsys, p, dst)
	})
}

func copyFile(fsys fs.FS, src, dst string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
