package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/riradoro03/sports-insights-hub/internal/comments"
	"github.com/riradoro03/sports-insights-hub/internal/content"
)

type ExecuteTemplateFunc func(wr io.Writer, name string, data any) error

// Options are the site-wide settings the handlers need.
type Options struct {
	SiteTitle string
	BaseURL   string
	RateLimit int
}

type Server struct {
	version  string
	port     string
	server   *http.Server
	assets   http.FileSystem
	tmplFunc ExecuteTemplateFunc
	content  content.Store
	views    *comments.Views
	opts     Options
	now      func() time.Time
}

func NewServer(version string, port string, assets http.FileSystem, tmplFunc ExecuteTemplateFunc, store content.Store, views *comments.Views, opts Options) *Server {
	if opts.RateLimit <= 0 {
		opts.RateLimit = 500
	}

	s := &Server{
		version:  version,
		port:     port,
		assets:   assets,
		tmplFunc: tmplFunc,
		content:  store,
		views:    views,
		opts:     opts,
		now:      time.Now,
	}

	s.server = &http.Server{
		Addr:              ":" + port,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) Start() {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) Close() {
	if err := s.server.Close(); err != nil {
		panic(err)
	}
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}
