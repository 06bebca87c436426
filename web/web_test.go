package web

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("expected embedded templates to parse, got %v", err)
	}
	for _, name := range []string{
		"index.html", "about.html", "experiences.html", "projects.html",
		"blog.html", "blog_post.html", "contact.html", "error.html",
		"head", "header", "footer", "toast",
	} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("expected template %q to be defined", name)
		}
	}
}

func TestStaticAssets(t *testing.T) {
	for _, name := range []string{
		"static/css/styles.css",
		"static/js/reveal.js",
		"static/robots.txt",
		"static/images/favicon.ico",
		"static/hero/index.html",
	} {
		if _, err := fs.Stat(Static(), name); err != nil {
			t.Errorf("expected %s to be embedded, got %v", name, err)
		}
	}
}

func TestFuncs(t *testing.T) {
	funcs := Funcs()

	active := funcs["active"].(func(string, string) bool)
	tests := []struct {
		current, path string
		want          bool
	}{
		{"/", "/", true},
		{"/blog", "/", false},
		{"/blog", "/blog", true},
		{"/blog/prueba", "/blog", true},
		{"/blogger", "/blog", false},
	}
	for _, tt := range tests {
		if got := active(tt.current, tt.path); got != tt.want {
			t.Errorf("active(%q, %q) = %v, want %v", tt.current, tt.path, got, tt.want)
		}
	}

	if got := funcs["title"].(func(string) string)("blog"); got != "Blog" {
		t.Errorf("expected 'Blog', got %q", got)
	}
	if got := funcs["pad2"].(func(int) string)(3); got != "03" {
		t.Errorf("expected '03', got %q", got)
	}
}

func TestReloader(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "page.html")
	if err := os.WriteFile(page, []byte(`first {{ title "x" }}`), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := NewReloader(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("expected reloader to start, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	var buf bytes.Buffer
	if err := r.ExecuteTemplate(&buf, "page.html", nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "first X" {
		t.Errorf("expected 'first X', got %q", buf.String())
	}

	if err := os.WriteFile(page, []byte("second"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		buf.Reset()
		if err := r.ExecuteTemplate(&buf, "page.html", nil); err == nil && buf.String() == "second" {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Errorf("expected templates to reload, last render %q", buf.String())
}

func TestReloaderMissingDir(t *testing.T) {
	if _, err := NewReloader(filepath.Join(t.TempDir(), "missing"), slog.Default()); err == nil {
		t.Error("expected a missing directory to fail")
	}
}

func TestReloaderCloseTwice(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.html"), []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := NewReloader(dir, slog.Default())
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("expected first close to succeed, got %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("expected second close to be a no-op, got %v", err)
	}
}
