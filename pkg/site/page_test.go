package site

import "testing"

func TestParsePath(t *testing.T) {
	cases := map[string]Page{
		"/":          PageHome,
		"":           PageHome,
		"/about":     PageAbout,
		"/about/":    PageAbout,
		"/portfolio": PagePortfolio,
		"/packages":  PagePackages,
		"/contact":   PageContact,
		"/audit":     PageAudit,
	}
	for path, want := range cases {
		got, ok := ParsePath(path)
		if !ok || got != want {
			t.Fatalf("ParsePath(%q) = %q, %v; want %q", path, got, ok, want)
		}
	}
	if _, ok := ParsePath("/services"); ok {
		t.Fatalf("unexpected page for /services")
	}
}

func TestPagesRoundTrip(t *testing.T) {
	for _, page := range Pages() {
		got, ok := ParsePath(page.Path())
		if !ok || got != page {
			t.Fatalf("%s path %q resolves to %q", page, page.Path(), got)
		}
		if page.Template() == "" || page.Title() == "" {
			t.Fatalf("%s missing template or title", page)
		}
	}
}

func TestNavMarksExactlyOneCurrent(t *testing.T) {
	for _, page := range []Page{PageHome, PageAbout, PagePortfolio, PagePackages, PageContact} {
		current := 0
		for _, item := range Nav(page) {
			if item.Current {
				current++
			}
		}
		if current != 1 {
			t.Fatalf("%s: %d current items", page, current)
		}
	}
	for _, item := range Nav(PageAudit) {
		if item.Current {
			t.Fatalf("audit page has no menu entry, got current %q", item.Label)
		}
	}
}
