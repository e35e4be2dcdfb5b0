package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-agencysite/pkg/content"
	"github.com/goliatone/go-agencysite/pkg/orchestrator"
	"github.com/goliatone/go-agencysite/pkg/site"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.handlePage(site.PageHome)(w, r)
}

func (s *Server) handlePage(page site.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !readOnly(w, r) {
			return
		}
		s.visit(w, r, page)
		s.render(w, r, http.StatusOK, orchestrator.Request{Page: page})
	}
}

// visit records navigation away from the audit for visitors that already
// have a session. Visitors without one get no session until they open the
// audit.
func (s *Server) visit(w http.ResponseWriter, r *http.Request, page site.Page) {
	if sess := s.sessions.Lookup(w, r); sess != nil {
		sess.visit(page)
	}
}

// categoryLink is one entry of the portfolio filter bar.
type categoryLink struct {
	Name    string `json:"name"`
	Href    string `json:"href"`
	Current bool   `json:"current"`
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	if !readOnly(w, r) {
		return
	}
	s.visit(w, r, site.PagePortfolio)

	catalogue := s.pages.Content()
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		category = content.AllCategory
	}

	links := make([]categoryLink, 0, len(catalogue.Portfolio.Categories))
	for _, name := range catalogue.Portfolio.Categories {
		href := site.PagePortfolio.Path()
		if name != content.AllCategory {
			href += "?category=" + url.QueryEscape(name)
		}
		links = append(links, categoryLink{Name: name, Href: href, Current: name == category})
	}

	s.render(w, r, http.StatusOK, orchestrator.Request{
		Page: site.PagePortfolio,
		Data: map[string]any{
			"category":   category,
			"categories": links,
			"projects":   catalogue.Projects(category),
		},
	})
}
