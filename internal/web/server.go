package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-agencysite/internal/logging"
	"github.com/goliatone/go-agencysite/internal/metrics"
	"github.com/goliatone/go-agencysite/pkg/audit"
	"github.com/goliatone/go-agencysite/pkg/contact"
	"github.com/goliatone/go-agencysite/pkg/orchestrator"
	"github.com/goliatone/go-agencysite/pkg/renderers/vanilla"
	"github.com/goliatone/go-agencysite/pkg/site"
	"github.com/goliatone/go-agencysite/pkg/webhook"
)

const sweepInterval = time.Minute

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger. Defaults to zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics records site activity into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithOrchestrator replaces the page orchestrator.
func WithOrchestrator(o *orchestrator.Orchestrator) Option {
	return func(s *Server) {
		if o != nil {
			s.pages = o
		}
	}
}

// WithAuditSink sets where completed audits are delivered.
func WithAuditSink(sink audit.Sink) Option {
	return func(s *Server) {
		s.auditSink = sink
	}
}

// WithWizardOptions passes options to every wizard the server creates.
func WithWizardOptions(opts ...audit.Option) Option {
	return func(s *Server) {
		s.wizardOpts = append(s.wizardOpts, opts...)
	}
}

// WithContactService sets the contact form service.
func WithContactService(service *contact.Service) Option {
	return func(s *Server) {
		if service != nil {
			s.contact = service
		}
	}
}

// WithSessionTTL sets the idle expiry of visitor sessions.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Server) {
		s.sessionTTL = ttl
	}
}

// WithClock overrides the clock used for session expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

// WithAssets overrides the files served under /static/.
func WithAssets(files fs.FS) Option {
	return func(s *Server) {
		if files != nil {
			s.assets = files
		}
	}
}

// Server holds the handlers and their collaborators.
type Server struct {
	pages      *orchestrator.Orchestrator
	sessions   *SessionStore
	auditSink  audit.Sink
	wizardOpts []audit.Option
	contact    *contact.Service
	metrics    *metrics.Metrics
	logger     zerolog.Logger
	assets     fs.FS
	sessionTTL time.Duration
	now        func() time.Time
}

// New builds a Server. Without an audit sink submissions fail with
// audit.ErrNoSink; without a contact service messages are logged.
func New(opts ...Option) (*Server, error) {
	s := &Server{
		logger: zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.pages == nil {
		s.pages = orchestrator.New()
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	if s.assets == nil {
		s.assets = vanilla.AssetsFS()
	}
	if s.contact == nil {
		s.contact = contact.NewService(webhook.NewLogSink(s.logger, "contact"), contact.WithLogger(s.logger))
	}
	if s.pages.Content() == nil {
		return nil, errors.New("web: site content is not available")
	}
	s.sessions = NewSessionStore(s.sessionTTL, s.now)
	return s, nil
}

// Sessions exposes the session store.
func (s *Server) Sessions() *SessionStore {
	return s.sessions
}

// Handler returns the routed, access-logged handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/about", s.handlePage(site.PageAbout))
	mux.HandleFunc("/packages", s.handlePage(site.PagePackages))
	mux.HandleFunc("/portfolio", s.handlePortfolio)
	mux.HandleFunc("/contact", s.handleContact)
	mux.HandleFunc("/audit", s.handleAudit)
	mux.HandleFunc("/api/audit/schema.json", s.handleAuditSchema)
	mux.HandleFunc("/api/audit/options", s.handleAuditOptions)
	mux.HandleFunc("/metricsz", s.handleMetrics)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServerFS(s.assets)))

	return logging.AccessLog(s.logger, mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// within grace.
func (s *Server) ListenAndServe(ctx context.Context, addr string, grace time.Duration) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()
	go s.sweep(ctx)

	s.logger.Info().Str("addr", addr).Msg("listening")

	select {
	case err, ok := <-errChan:
		if ok {
			return fmt.Errorf("web: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web: shutdown: %w", err)
	}
	s.logger.Info().Msg("server stopped")
	return nil
}

func (s *Server) sweep(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.sessions.Sweep(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired sessions swept")
			}
		}
	}
}

func (s *Server) newWizard() *audit.Wizard {
	opts := append([]audit.Option{audit.WithLogger(s.logger)}, s.wizardOpts...)
	return audit.NewWizard(s.auditSink, opts...)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, req orchestrator.Request) {
	req.Accept = r.Header.Get("Accept")
	req.RenderOptions.Status = status

	result, err := s.pages.Generate(r.Context(), req)
	if err != nil {
		s.logger.Error().Err(err).Str("page", req.Page.String()).Msg("render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(result.Body); err != nil {
		s.logger.Warn().Err(err).Msg("write response")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		s.logger.Warn().Err(err).Msg("write json response")
	}
}

func methodNotAllowedWith(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

func readOnly(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	methodNotAllowedWith(w, http.MethodGet, http.MethodHead)
	return false
}
