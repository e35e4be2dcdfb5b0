package site

import "sync"

// Transition describes a single navigation.
type Transition struct {
	From Page
	To   Page
}

// EntersAudit reports whether the visitor arrived at the audit page from a
// different page. A wizard must start over on such a transition.
func (t Transition) EntersAudit() bool {
	return t.To == PageAudit && t.From != PageAudit
}

// Navigator tracks the current page of one visitor. Visitors start on the
// home page.
type Navigator struct {
	mu      sync.Mutex
	current Page
}

// NewNavigator returns a navigator positioned on the home page.
func NewNavigator() *Navigator {
	return &Navigator{current: PageHome}
}

// Current returns the current page.
func (n *Navigator) Current() Page {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Go moves the visitor to page to. Unknown pages are ignored and leave the
// current page unchanged.
func (n *Navigator) Go(to Page) Transition {
	n.mu.Lock()
	defer n.mu.Unlock()

	t := Transition{From: n.current, To: n.current}
	if !to.Valid() {
		return t
	}
	n.current = to
	t.To = to
	return t
}

// Back returns to the home page.
func (n *Navigator) Back() Transition {
	return n.Go(PageHome)
}
