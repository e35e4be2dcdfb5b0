package site

import "strings"

// Page identifies one top-level page. Exactly one page is current at any time.
type Page string

const (
	PageHome      Page = "home"
	PageAbout     Page = "about"
	PagePortfolio Page = "portfolio"
	PagePackages  Page = "packages"
	PageContact   Page = "contact"
	PageAudit     Page = "audit"
)

type pageInfo struct {
	path     string
	title    string
	template string
}

var pages = map[Page]pageInfo{
	PageHome:      {path: "/", title: "Home", template: "pages/home"},
	PageAbout:     {path: "/about", title: "About", template: "pages/about"},
	PagePortfolio: {path: "/portfolio", title: "Portfolio", template: "pages/portfolio"},
	PagePackages:  {path: "/packages", title: "Packages", template: "pages/packages"},
	PageContact:   {path: "/contact", title: "Contact", template: "pages/contact"},
	PageAudit:     {path: "/audit", title: "AI Audit", template: "pages/audit"},
}

var pageOrder = []Page{PageHome, PageAbout, PagePortfolio, PagePackages, PageContact, PageAudit}

// Pages lists every page in menu order.
func Pages() []Page {
	return append([]Page(nil), pageOrder...)
}

// ParsePath resolves a request path to its page. Trailing slashes are
// ignored.
func ParsePath(path string) (Page, bool) {
	path = strings.TrimSpace(path)
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		path = "/"
	}
	for _, page := range pageOrder {
		if pages[page].path == path {
			return page, true
		}
	}
	return "", false
}

// Valid reports whether p is a known page.
func (p Page) Valid() bool {
	_, ok := pages[p]
	return ok
}

// Path returns the URL path of the page.
func (p Page) Path() string { return pages[p].path }

// Title returns the display title.
func (p Page) Title() string { return pages[p].title }

// Template returns the template name rendered for the page.
func (p Page) Template() string { return pages[p].template }

func (p Page) String() string { return string(p) }

// NavItem is one entry of the site navigation.
type NavItem struct {
	Label   string `json:"label"`
	Href    string `json:"href"`
	Current bool   `json:"current"`
}

// Nav returns the main menu with current marked. Services is an anchor on the
// home page rather than a page of its own.
func Nav(current Page) []NavItem {
	items := []struct {
		label string
		href  string
		page  Page
	}{
		{"Home", PageHome.Path(), PageHome},
		{"About", PageAbout.Path(), PageAbout},
		{"Services", "/#services", ""},
		{"Packages", PagePackages.Path(), PagePackages},
		{"Portfolio", PagePortfolio.Path(), PagePortfolio},
		{"Contact", PageContact.Path(), PageContact},
	}
	out := make([]NavItem, 0, len(items))
	for _, item := range items {
		out = append(out, NavItem{
			Label:   item.label,
			Href:    item.href,
			Current: item.page != "" && item.page == current,
		})
	}
	return out
}
