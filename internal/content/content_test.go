package content

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

const testSite = `
profile:
  name: Test Person
  brand: TP
stats:
  - { icon: target, value: One, label: Two }
projects:
  - { title: Done, status: Completed }
  - { title: Doing, status: In Progress }
`

func TestDefaultContent(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("expected embedded content to load, got %v", err)
	}

	site := lib.Site()
	if site.Profile.Name != "Ricardo Dominguez" {
		t.Errorf("expected profile name 'Ricardo Dominguez', got %q", site.Profile.Name)
	}
	if len(site.Experiences) != 4 || len(site.Projects) != 4 {
		t.Errorf("expected 4 experiences and 4 projects, got %d and %d", len(site.Experiences), len(site.Projects))
	}
	if len(site.Milestones) != 4 || len(site.Stats) != 3 || len(site.Featured) != 3 {
		t.Errorf("unexpected site shape %+v", site)
	}

	a, err := lib.Article("prueba")
	if err != nil {
		t.Fatalf("expected article 'prueba', got %v", err)
	}
	if a.Title != "Prueba" || a.Category != "blog" || a.ReadTime != "1 min" || a.Date != "Feb 13, 2025" {
		t.Errorf("unexpected article %+v", a)
	}
	if !strings.Contains(string(a.HTML), "<p>prueba</p>") {
		t.Errorf("expected rendered body, got %q", a.HTML)
	}
}

func TestArticleLookupRoundTrip(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	for _, listed := range lib.Articles() {
		got, err := lib.Article(listed.Slug)
		if err != nil {
			t.Fatalf("expected %q to resolve, got %v", listed.Slug, err)
		}
		if got.Title != listed.Title || got.Body != listed.Body {
			t.Errorf("expected %+v, got %+v", listed, got)
		}
	}
}

func TestArticleNotFound(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := lib.Article("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadSortsAndDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"site.yaml": {Data: []byte(testSite)},
		"articles/older-post.md": {Data: []byte(`---
date: Jan 5, 2024
---
# Hello

first line
second line
`)},
		"articles/newer.md": {Data: []byte(`---
title: Newer
type: analysis
date: Mar 1, 2025
readTime: 4 min
slug: custom-slug
---
body`)},
	}

	lib, err := Load(fsys)
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}

	articles := lib.Articles()
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].Slug != "custom-slug" || articles[1].Slug != "older-post" {
		t.Errorf("expected newest first, got %q then %q", articles[0].Slug, articles[1].Slug)
	}

	older := articles[1]
	if older.Title != "Older Post" {
		t.Errorf("expected title from file name, got %q", older.Title)
	}
	if older.Category != "blog" {
		t.Errorf("expected default category 'blog', got %q", older.Category)
	}
	if !strings.Contains(string(older.HTML), `<h1 id="hello">Hello</h1>`) {
		t.Errorf("expected heading id, got %q", older.HTML)
	}
	if !strings.Contains(string(older.HTML), "first line<br>") {
		t.Errorf("expected hard wraps, got %q", older.HTML)
	}

	if _, err := lib.Article("custom-slug"); err != nil {
		t.Errorf("expected front matter slug to resolve, got %v", err)
	}
	if !lib.Site().Projects[0].Completed() || lib.Site().Projects[1].Completed() {
		t.Error("unexpected project completion flags")
	}
}

func TestArticlesReturnsCopy(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	list := lib.Articles()
	list[0].Title = "changed"
	if lib.Articles()[0].Title == "changed" {
		t.Error("expected Articles to return a copy")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing site", fstest.MapFS{}},
		{"bad yaml", fstest.MapFS{"site.yaml": {Data: []byte("profile: [")}}},
		{"bad date", fstest.MapFS{
			"site.yaml":     {Data: []byte(testSite)},
			"articles/a.md": {Data: []byte("---\ndate: 2025-01-01\n---\nx")},
		}},
		{"duplicate slug", fstest.MapFS{
			"site.yaml":     {Data: []byte(testSite)},
			"articles/a.md": {Data: []byte("---\nslug: same\n---\nx")},
			"articles/b.md": {Data: []byte("---\nslug: same\n---\ny")},
		}},
	}
	for _, tt := range tests {
		if _, err := Load(tt.fsys); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}
