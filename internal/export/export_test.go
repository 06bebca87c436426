package export

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/riradoro03/sports-insights-hub/internal/models"
)

type stubStore struct {
	articles []models.Article
}

func (s stubStore) Site() models.Site          { return models.Site{} }
func (s stubStore) Articles() []models.Article { return s.articles }
func (s stubStore) Article(string) (models.Article, error) {
	return models.Article{}, nil
}

func TestPages(t *testing.T) {
	pages := Pages(stubStore{articles: []models.Article{{Slug: "prueba"}, {Slug: "second"}}})
	if len(pages) != 9 {
		t.Fatalf("expected 9 pages, got %d", len(pages))
	}
	if pages[6].Path != "/blog/prueba" || pages[7].Path != "/blog/second" {
		t.Errorf("expected article pages, got %+v", pages[6:8])
	}
	if last := pages[len(pages)-1]; last.Status != http.StatusNotFound {
		t.Errorf("expected the not-found page last, got %+v", last)
	}
}

func TestFile(t *testing.T) {
	tests := []struct {
		page Page
		want string
	}{
		{Page{Path: "/", Status: http.StatusOK}, "index.html"},
		{Page{Path: "/about", Status: http.StatusOK}, filepath.Join("about", "index.html")},
		{Page{Path: "/blog/prueba/", Status: http.StatusOK}, filepath.Join("blog", "prueba", "index.html")},
		{Page{Path: "/404", Status: http.StatusNotFound}, "404.html"},
	}
	for _, tt := range tests {
		if got := File(tt.page); got != tt.want {
			t.Errorf("File(%+v) = %q, want %q", tt.page, got, tt.want)
		}
	}
}

func TestRun(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/404" {
			w.WriteHeader(http.StatusNotFound)
		}
		_, _ = io.WriteString(w, "page "+r.URL.Path)
	})
	static := fstest.MapFS{
		"static/robots.txt":         {Data: []byte("User-agent: *")},
		"static/images/favicon.ico": {Data: []byte{0, 0, 1, 0}},
		"static/css/styles.css":     {Data: []byte("body{}")},
	}
	out := filepath.Join(t.TempDir(), "public")
	pages := []Page{
		{Path: "/", Status: http.StatusOK},
		{Path: "/blog/prueba", Status: http.StatusOK},
		{Path: "/404", Status: http.StatusNotFound},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := Run(context.Background(), h, pages, static, out, logger); err != nil {
		t.Fatalf("expected export to succeed, got %v", err)
	}

	files := map[string]string{
		"index.html":                "page /",
		"blog/prueba/index.html":    "page /blog/prueba",
		"404.html":                  "page /404",
		"robots.txt":                "User-agent: *",
		"static/css/styles.css":     "body{}",
		"static/images/favicon.ico": "\x00\x00\x01\x00",
		"favicon.ico":               "\x00\x00\x01\x00",
	}
	for name, want := range files {
		got, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(name)))
		if err != nil {
			t.Errorf("expected %s to exist, got %v", name, err)
			continue
		}
		if string(got) != want {
			t.Errorf("%s: expected %q, got %q", name, want, got)
		}
	}
}

func TestRunUnexpectedStatus(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := Run(context.Background(), h, []Page{{Path: "/", Status: http.StatusOK}}, fstest.MapFS{}, t.TempDir(), logger)
	if err == nil {
		t.Error("expected a status mismatch to fail the export")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	if err := Run(ctx, h, []Page{{Path: "/", Status: http.StatusOK}}, fstest.MapFS{}, t.TempDir(), logger); err == nil {
		t.Error("expected a cancelled export to fail")
	}
}
