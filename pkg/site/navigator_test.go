package site

import "testing"

func TestNavigatorStartsHome(t *testing.T) {
	if got := NewNavigator().Current(); got != PageHome {
		t.Fatalf("current = %s", got)
	}
}

func TestNavigatorAlwaysHasOneCurrentPage(t *testing.T) {
	n := NewNavigator()
	for _, page := range []Page{PageAbout, PagePortfolio, Page("bogus"), PageAudit, PageContact} {
		n.Go(page)
		if !n.Current().Valid() {
			t.Fatalf("current page %q is invalid", n.Current())
		}
	}
	if n.Current() != PageContact {
		t.Fatalf("current = %s, want contact", n.Current())
	}
}

func TestNavigatorAuditTransitions(t *testing.T) {
	n := NewNavigator()

	if !n.Go(PageAudit).EntersAudit() {
		t.Fatalf("first audit visit should enter the audit")
	}
	if n.Go(PageAudit).EntersAudit() {
		t.Fatalf("staying on the audit page is not an entry")
	}
	n.Go(PageAbout)
	if !n.Go(PageAudit).EntersAudit() {
		t.Fatalf("returning to the audit page should enter it again")
	}
	tr := n.Back()
	if tr.From != PageAudit || tr.To != PageHome {
		t.Fatalf("back transition = %+v", tr)
	}
}

func TestNavigatorIgnoresUnknownPage(t *testing.T) {
	n := NewNavigator()
	n.Go(PageAbout)
	tr := n.Go(Page("nowhere"))
	if tr.From != PageAbout || tr.To != PageAbout || n.Current() != PageAbout {
		t.Fatalf("unknown page changed state: %+v current=%s", tr, n.Current())
	}
}
