package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/riradoro03/sports-insights-hub/internal/comments"
	"github.com/riradoro03/sports-insights-hub/internal/contact"
	"github.com/riradoro03/sports-insights-hub/internal/content"
	"github.com/riradoro03/sports-insights-hub/internal/hero"
	"github.com/riradoro03/sports-insights-hub/internal/models"
)

var navLinks = []models.NavLink{
	{Path: "/", Label: "Home"},
	{Path: "/about", Label: "About"},
	{Path: "/experiences", Label: "Experiences"},
	{Path: "/projects", Label: "Projects"},
	{Path: "/blog", Label: "Blog"},
	{Path: "/contact", Label: "Contact"},
}

func (s *Server) chrome(r *http.Request, pageTitle string) models.Chrome {
	site := s.content.Site()
	return models.Chrome{
		PageTitle: pageTitle,
		SiteTitle: s.opts.SiteTitle,
		BaseURL:   s.opts.BaseURL,
		Active:    r.URL.Path,
		Nav:       navLinks,
		Profile:   site.Profile,
		Social:    site.Social,
		Coming:    site.ComingSoon,
		Year:      s.now().Year(),
	}
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmplFunc(w, name, data); err != nil {
		slog.Error("Failed to render template", slog.String("template", name), "error", err)
	}
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int) {
	message := "Something went wrong on our side. Please try again later."
	if status == http.StatusNotFound {
		message = "The page you're looking for doesn't exist."
	}
	s.render(w, status, "error.html", models.ErrorPageData{
		Chrome:  s.chrome(r, http.StatusText(status)),
		Status:  status,
		Message: message,
	})
}

func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	sections := hero.DefaultSections()
	data := models.IndexPageData{
		Chrome:   s.chrome(r, ""),
		Site:     s.content.Site(),
		Sections: sections,
		Label:    hero.SectionLabel(0, len(sections)),
	}
	s.render(w, http.StatusOK, "index.html", data)
}

func (s *Server) HandleAbout(w http.ResponseWriter, r *http.Request) {
	data := models.AboutPageData{
		Chrome: s.chrome(r, "About"),
		Site:   s.content.Site(),
	}
	s.render(w, http.StatusOK, "about.html", data)
}

func (s *Server) HandleExperiences(w http.ResponseWriter, r *http.Request) {
	data := models.ExperiencesPageData{
		Chrome:      s.chrome(r, "Experiences"),
		Experiences: s.content.Site().Experiences,
	}
	s.render(w, http.StatusOK, "experiences.html", data)
}

func (s *Server) HandleProjects(w http.ResponseWriter, r *http.Request) {
	data := models.ProjectsPageData{
		Chrome:   s.chrome(r, "Projects"),
		Projects: s.content.Site().Projects,
	}
	s.render(w, http.StatusOK, "projects.html", data)
}

func (s *Server) HandleBlog(w http.ResponseWriter, r *http.Request) {
	data := models.BlogPageData{
		Chrome:   s.chrome(r, "Blog"),
		Articles: s.content.Articles(),
	}
	s.render(w, http.StatusOK, "blog.html", data)
}

func (s *Server) HandleBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	article, err := s.content.Article(slug)
	if err != nil {
		if !errors.Is(err, content.ErrNotFound) {
			slog.Error("Failed to load article", slog.String("slug", slug), "error", err)
			s.renderError(w, r, http.StatusInternalServerError)
			return
		}
		s.render(w, http.StatusNotFound, "blog_post.html", models.BlogPostPageData{
			Chrome: s.chrome(r, "Article Not Found"),
		})
		return
	}

	token, thread := s.resumeView(r, slug)
	data := models.BlogPostPageData{
		Chrome:   s.chrome(r, article.Title),
		Found:    true,
		Article:  article,
		View:     token,
		Comments: thread.List(),
	}
	s.render(w, http.StatusOK, "blog_post.html", data)
}

func (s *Server) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if _, err := s.content.Article(slug); err != nil {
		s.renderError(w, r, http.StatusNotFound)
		return
	}

	token, thread := s.resumeView(r, slug)
	if _, err := thread.Append(r.PostFormValue("name"), r.PostFormValue("text")); err != nil {
		if !errors.Is(err, comments.ErrInvalid) {
			slog.Error("Failed to add comment", "error", err)
		}
	}

	http.Redirect(w, r, postURL(slug, token), http.StatusSeeOther)
}

func (s *Server) HandleLikeComment(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if _, err := s.content.Article(slug); err != nil {
		s.renderError(w, r, http.StatusNotFound)
		return
	}

	token, thread := s.resumeView(r, slug)
	if id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64); err == nil {
		thread.Like(id)
	}

	http.Redirect(w, r, postURL(slug, token), http.StatusSeeOther)
}

func (s *Server) HandleContact(w http.ResponseWriter, r *http.Request) {
	data := models.ContactPageData{
		Chrome: s.chrome(r, "Contact"),
	}
	if r.URL.Query().Get("sent") == "1" {
		toast := contact.Acknowledgement()
		data.Toast = &toast
	}
	s.render(w, http.StatusOK, "contact.html", data)
}

func (s *Server) HandleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}
	msg := contact.FromForm(r.PostForm)
	if err := msg.Validate(); err != nil {
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	slog.Info("Contact message received", slog.Int("length", len(msg.Message)))
	http.Redirect(w, r, "/contact?sent=1", http.StatusSeeOther)
}

func (s *Server) serveFile(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(path)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}
