package web_test

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goliatone/go-agencysite/internal/metrics"
	"github.com/goliatone/go-agencysite/internal/web"
	"github.com/goliatone/go-agencysite/pkg/audit"
)

// recordingSink captures delivered payloads. When gate is set, Deliver
// signals entered and waits for gate to close.
type recordingSink struct {
	mu       sync.Mutex
	payloads []any
	err      error
	gate     chan struct{}
	entered  chan struct{}
}

func (s *recordingSink) Deliver(ctx context.Context, payload any) error {
	if s.gate != nil {
		s.entered <- struct{}{}
		select {
		case <-s.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, payload)
	return s.err
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payloads)
}

type testSite struct {
	server  *httptest.Server
	client  *http.Client
	metrics *metrics.Metrics
}

func newTestSite(t *testing.T, opts ...web.Option) *testSite {
	t.Helper()

	m := metrics.New()
	clock := func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }
	base := []web.Option{
		web.WithMetrics(m),
		web.WithWizardOptions(audit.WithClock(clock)),
	}
	srv, err := web.New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	httpServer := httptest.NewServer(srv.Handler())
	t.Cleanup(httpServer.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &testSite{
		server:  httpServer,
		client:  &http.Client{Jar: jar},
		metrics: m,
	}
}

func (s *testSite) get(t *testing.T, path string) (int, string) {
	t.Helper()
	resp, err := s.client.Get(s.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return readBody(t, resp)
}

func (s *testSite) post(t *testing.T, path string, form url.Values) (int, string) {
	t.Helper()
	resp, err := s.client.PostForm(s.server.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) (int, string) {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

// stepForm builds the POST body for one wizard step.
func stepForm(step int, action string, values url.Values) url.Values {
	form := url.Values{}
	for key, list := range values {
		form[key] = append([]string(nil), list...)
	}
	form.Set("step", strconv.Itoa(step))
	form.Set("action", action)
	return form
}

func sampleSteps() []url.Values {
	return []url.Values{
		{"firstName": {"Jane"}, "lastName": {"Doe"}, "email": {"jane@example.com"}, "company": {"Acme"}},
		{"businessDescription": {"Boutique design studio"}, "industry": {"technology"}},
		{"challenges": {"Lead generation", "Email management"}, "painPoints": {"Slow follow-up"}},
		{"teamSize": {"2-5"}, "currentTools": {"Custom Software"}},
		{"timeConsumingTasks": {"Email management"}, "dailyHours": {"3-4"}},
		{"automationGoals": {"Lead nurturing"}, "priority": {"save-time"}},
		{"growthGoals": {"Double revenue"}, "budget": {"5k-10k"}, "timeline": {"1-month"}},
	}
}

// walkToFinalStep posts steps 1..6 and fails the test unless each advances.
func walkToFinalStep(t *testing.T, s *testSite) {
	t.Helper()
	if status, _ := s.get(t, "/audit"); status != http.StatusOK {
		t.Fatalf("GET /audit status %d", status)
	}
	steps := sampleSteps()
	for step := 1; step < audit.LastStep; step++ {
		status, body := s.post(t, "/audit", stepForm(step, "next", steps[step-1]))
		if status != http.StatusOK {
			t.Fatalf("step %d: status %d\n%s", step, status, body)
		}
		want := "Step " + strconv.Itoa(step+1) + " of 7"
		if !strings.Contains(body, want) {
			t.Fatalf("step %d: expected %q in body", step, want)
		}
	}
}
