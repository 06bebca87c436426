package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(httprate.Limit(s.opts.RateLimit, time.Minute))
	r.Use(middleware.Heartbeat("/health"))
	r.Use(s.cacheControl)

	r.Mount("/static", http.FileServer(s.assets))

	r.Handle("/robots.txt", s.serveFile("static/robots.txt"))
	r.Handle("/favicon.ico", s.serveFile("static/images/favicon.ico"))

	r.Get("/", s.HandleIndex)
	r.Get("/about", s.HandleAbout)
	r.Get("/experiences", s.HandleExperiences)
	r.Get("/projects", s.HandleProjects)
	r.Get("/blog", s.HandleBlog)
	r.Get("/blog/{slug}", s.HandleBlogPost)
	r.Get("/contact", s.HandleContact)

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(30, time.Minute))
		r.Post("/blog/{slug}/comments", s.HandleAddComment)
		r.Post("/blog/{slug}/comments/{id}/like", s.HandleLikeComment)
		r.Post("/contact", s.HandleContactSubmit)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.renderError(w, r, http.StatusNotFound)
	})

	return r
}
