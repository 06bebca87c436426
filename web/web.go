// Package web holds the page templates and static assets.
package web

//go:generate sh -c "GOOS=js GOARCH=wasm go build -o static/hero/hero.wasm ../cmd/heroview"
//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" static/hero/wasm_exec.js"

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Static is the asset tree rooted above static/, so paths keep their
// static/ prefix.
func Static() fs.FS {
	return staticFiles
}

// Funcs are the helpers every page template may call.
func Funcs() template.FuncMap {
	caser := cases.Title(language.English)
	return template.FuncMap{
		"title": caser.String,
		"add":   func(a, b int) int { return a + b },
		"mul":   func(a, b int) int { return a * b },
		"pad2":  func(n int) string { return fmt.Sprintf("%02d", n) },
		"lower": strings.ToLower,
		"active": func(current, path string) bool {
			if path == "/" {
				return current == "/"
			}
			return current == path || strings.HasPrefix(current, path+"/")
		},
	}
}

// Parse parses every page template in fsys matching pattern.
func Parse(fsys fs.FS, pattern string) (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// Templates parses the embedded templates.
func Templates() (*template.Template, error) {
	return Parse(templateFiles, "templates/*.html")
}
