// Package content loads the compiled-in site copy and blog articles.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/riradoro03/sports-insights-hub/internal/models"
)

// DateLayout is how article and comment dates are written.
const DateLayout = "Jan 2, 2006"

var ErrNotFound = errors.New("article not found")

//go:embed site.yaml articles/*.md
var embedded embed.FS

// Store is the read-only content the handlers render.
type Store interface {
	Site() models.Site
	Articles() []models.Article
	Article(slug string) (models.Article, error)
}

// Library is an immutable, in-memory Store.
type Library struct {
	site     models.Site
	articles []models.Article
	bySlug   map[string]int
}

type frontMatter struct {
	Title    string `yaml:"title"`
	Type     string `yaml:"type"`
	Date     string `yaml:"date"`
	ReadTime string `yaml:"readTime"`
	Slug     string `yaml:"slug"`
}

// Default loads the content embedded in the binary.
func Default() (*Library, error) {
	return Load(embedded)
}

// Load reads site.yaml and every articles/*.md file from fsys.
func Load(fsys fs.FS) (*Library, error) {
	raw, err := fs.ReadFile(fsys, "site.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read site.yaml: %w", err)
	}

	lib := &Library{bySlug: make(map[string]int)}
	if err := yaml.Unmarshal(raw, &lib.site); err != nil {
		return nil, fmt.Errorf("failed to decode site.yaml: %w", err)
	}

	files, err := fs.Glob(fsys, "articles/*.md")
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)

	for _, name := range files {
		a, err := loadArticle(fsys, md, name)
		if err != nil {
			return nil, err
		}
		if _, dup := lib.bySlug[a.Slug]; dup {
			return nil, fmt.Errorf("duplicate article slug %q in %s", a.Slug, name)
		}
		lib.bySlug[a.Slug] = len(lib.articles)
		lib.articles = append(lib.articles, a)
	}

	sort.SliceStable(lib.articles, func(i, j int) bool {
		return lib.articles[i].Published.After(lib.articles[j].Published)
	})
	for i, a := range lib.articles {
		lib.bySlug[a.Slug] = i
	}

	return lib, nil
}

func loadArticle(fsys fs.FS, md goldmark.Markdown, name string) (models.Article, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return models.Article{}, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return models.Article{}, fmt.Errorf("failed to parse front matter of %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return models.Article{}, fmt.Errorf("failed to render %s: %w", name, err)
	}

	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	a := models.Article{
		Slug:     fm.Slug,
		Title:    fm.Title,
		Category: fm.Type,
		Date:     fm.Date,
		ReadTime: fm.ReadTime,
		Body:     strings.TrimSpace(string(body)),
		HTML:     template.HTML(buf.String()),
	}
	if a.Slug == "" {
		a.Slug = base
	}
	if a.Title == "" {
		a.Title = cases.Title(language.English).String(strings.NewReplacer("-", " ", "_", " ").Replace(base))
	}
	if a.Category == "" {
		a.Category = "blog"
	}
	if a.Date != "" {
		published, err := time.Parse(DateLayout, a.Date)
		if err != nil {
			return models.Article{}, fmt.Errorf("invalid date %q in %s: %w", a.Date, name, err)
		}
		a.Published = published
	}
	return a, nil
}

func (l *Library) Site() models.Site {
	return l.site
}

// Articles returns every article, newest first.
func (l *Library) Articles() []models.Article {
	return append([]models.Article(nil), l.articles...)
}

// Article looks an article up by slug.
func (l *Library) Article(slug string) (models.Article, error) {
	i, ok := l.bySlug[slug]
	if !ok {
		return models.Article{}, fmt.Errorf("%q: %w", slug, ErrNotFound)
	}
	return l.articles[i], nil
}
