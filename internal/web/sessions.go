package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-agencysite/pkg/audit"
	"github.com/goliatone/go-agencysite/pkg/site"
)

// SessionCookieName carries the visitor session ID.
const SessionCookieName = "agency_session"

// Session is the per-visitor state: the current page and the audit wizard.
type Session struct {
	ID string

	mu        sync.Mutex
	navigator *site.Navigator
	wizard    *audit.Wizard
	lastSeen  time.Time
}

// Page returns the page the visitor is on.
func (s *Session) Page() site.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.navigator.Current()
}

// enterAudit moves the visitor to the audit page. A fresh wizard is handed out
// on first use and whenever the visitor arrives from another page; it reports
// whether a new audit started.
func (s *Session) enterAudit(newWizard func() *audit.Wizard) (*audit.Wizard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transition := s.navigator.Go(site.PageAudit)
	if s.wizard == nil {
		s.wizard = newWizard()
		return s.wizard, true
	}
	if transition.EntersAudit() && s.wizard.Reset() {
		return s.wizard, true
	}
	return s.wizard, false
}

// visit records navigation to a non-audit page.
func (s *Session) visit(page site.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navigator.Go(page)
}

// SessionStore keeps sessions in memory and drops those idle for longer than
// the TTL.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore creates a store. A non-positive ttl defaults to 30 minutes.
func NewSessionStore(ttl time.Duration, now func() time.Time) *SessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if now == nil {
		now = time.Now
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      now,
	}
}

// Lookup returns the live session named by the request cookie and refreshes
// its cookie. It returns nil without storing anything when there is none.
func (s *SessionStore) Lookup(w http.ResponseWriter, r *http.Request) *Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}
	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return nil
	}
	sess := s.lookup(id.String(), s.now())
	if sess != nil {
		s.setCookie(w, sess.ID)
	}
	return sess
}

// Acquire returns the session named by the request cookie, or starts a new
// one when the cookie is missing, malformed or expired. The cookie is
// refreshed on every call.
func (s *SessionStore) Acquire(w http.ResponseWriter, r *http.Request) *Session {
	if sess := s.Lookup(w, r); sess != nil {
		return sess
	}

	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		navigator: site.NewNavigator(),
		lastSeen:  now,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.setCookie(w, sess.ID)
	return sess
}

func (s *SessionStore) lookup(id string, now time.Time) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	if now.Sub(sess.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil
	}
	sess.lastSeen = now
	return sess
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *SessionStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
