package server

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/riradoro03/sports-insights-hub/internal/comments"
)

// viewFromRequest returns the page-view token carried by a query string
// or a posted form.
func viewFromRequest(r *http.Request) string {
	if v := r.URL.Query().Get("view"); v != "" {
		return v
	}
	return r.PostFormValue("view")
}

// resumeView returns the slug's thread for the request's view token,
// opening a fresh view when the token is missing, expired or belongs to
// another article.
func (s *Server) resumeView(r *http.Request, slug string) (string, *comments.Thread) {
	token := viewFromRequest(r)
	if token != "" {
		thread, err := s.views.Thread(token, slug)
		if err == nil {
			return token, thread
		}
		if !errors.Is(err, comments.ErrUnknownView) {
			slog.Warn("Failed to resume view", "error", err)
		}
	}
	return s.views.Open(slug)
}

// postURL is where a comment action redirects back to.
func postURL(slug, token string) string {
	u := url.URL{
		Path:     "/blog/" + slug,
		RawQuery: url.Values{"view": {token}}.Encode(),
		Fragment: "comments",
	}
	return u.String()
}
