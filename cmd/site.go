package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/riradoro03/sports-insights-hub/internal/comments"
	"github.com/riradoro03/sports-insights-hub/internal/config"
	"github.com/riradoro03/sports-insights-hub/internal/content"
	"github.com/riradoro03/sports-insights-hub/server"
	"github.com/riradoro03/sports-insights-hub/web"
)

// site is everything a command needs to answer page requests.
type site struct {
	content *content.Library
	views   *comments.Views
	server  *server.Server
}

// newSite loads content and templates. In dev mode templates are read
// from disk and reloaded on change until ctx is done.
func newSite(ctx context.Context, cfg config.Config) (*site, error) {
	lib, err := content.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	var tmplFunc server.ExecuteTemplateFunc
	if cfg.Dev {
		reloader, err := web.NewReloader(cfg.TemplatesDir, slog.Default())
		if err != nil {
			return nil, fmt.Errorf("failed to load templates from %s: %w", cfg.TemplatesDir, err)
		}
		go reloader.Run(ctx)
		tmplFunc = reloader.ExecuteTemplate
		slog.Info("Watching templates", slog.String("dir", cfg.TemplatesDir))
	} else {
		tmpl, err := web.Templates()
		if err != nil {
			return nil, err
		}
		tmplFunc = tmpl.ExecuteTemplate
	}

	views := comments.NewViews(cfg.CommentTTL)
	srv := server.NewServer(version, cfg.Port, http.FS(web.Static()), tmplFunc, lib, views, server.Options{
		SiteTitle: cfg.SiteTitle,
		BaseURL:   cfg.BaseURL,
		RateLimit: cfg.RateLimit,
	})

	return &site{content: lib, views: views, server: srv}, nil
}
