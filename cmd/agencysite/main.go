package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-agencysite/internal/config"
	"github.com/goliatone/go-agencysite/internal/logging"
	"github.com/goliatone/go-agencysite/internal/metrics"
	"github.com/goliatone/go-agencysite/internal/web"
	"github.com/goliatone/go-agencysite/pkg/audit"
	"github.com/goliatone/go-agencysite/pkg/contact"
	"github.com/goliatone/go-agencysite/pkg/content"
	"github.com/goliatone/go-agencysite/pkg/orchestrator"
	"github.com/goliatone/go-agencysite/pkg/site"
	"github.com/goliatone/go-agencysite/pkg/webhook"
)

var (
	configFlag = flag.String("config", "", "path to a YAML config file")
	envFlag    = flag.String("env", ".env", "dotenv file loaded before the environment")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "agencysite: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "agencysite: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	m := metrics.New()

	auditSink, err := newSink(cfg.Audit, "audit", logger, m)
	if err != nil {
		return err
	}
	contactSink, err := newSink(cfg.Contact, "contact", logger, m)
	if err != nil {
		return err
	}

	pages, err := newOrchestrator(cfg, logger)
	if err != nil {
		return err
	}

	srv, err := web.New(
		web.WithLogger(logger),
		web.WithMetrics(m),
		web.WithOrchestrator(pages),
		web.WithAuditSink(auditSink),
		web.WithWizardOptions(audit.WithLogger(logger)),
		web.WithContactService(contact.NewService(contactSink, contact.WithLogger(logger))),
		web.WithSessionTTL(cfg.Server.SessionTTL.Std()),
	)
	if err != nil {
		return err
	}

	return srv.ListenAndServe(ctx, cfg.Server.Addr, cfg.Server.ShutdownGrace.Std())
}

// sink is satisfied by both audit.Sink and contact.Sink.
type sink interface {
	Deliver(ctx context.Context, payload any) error
}

func newSink(target config.Target, label string, logger zerolog.Logger, m *metrics.Metrics) (sink, error) {
	if target.WebhookURL == "" {
		logger.Warn().Str("target", label).Msg("no webhook configured, submissions will be logged")
		return webhook.NewLogSink(logger, label), nil
	}
	client, err := webhook.New(target.WebhookURL,
		webhook.WithTimeout(target.Timeout.Std()),
		webhook.WithLogger(logger.With().Str("target", label).Logger()),
		webhook.WithObserver(m.ObserveWebhook),
	)
	if err != nil {
		return nil, fmt.Errorf("agencysite: %s webhook: %w", label, err)
	}
	return client, nil
}

func newOrchestrator(cfg config.Config, logger zerolog.Logger) (*orchestrator.Orchestrator, error) {
	brand, err := site.NewTheme(nil)
	if err != nil {
		return nil, fmt.Errorf("agencysite: theme: %w", err)
	}
	opts := []orchestrator.Option{
		orchestrator.WithTheme(brand, cfg.Server.ThemeVariant),
	}

	if cfg.Content.Path != "" {
		catalogue, err := content.LoadDir(cfg.Content.Path)
		if err != nil {
			return nil, fmt.Errorf("agencysite: content: %w", err)
		}
		logger.Info().Str("path", cfg.Content.Path).Msg("loaded site content")
		opts = append(opts, orchestrator.WithContent(catalogue))
	}

	return orchestrator.New(opts...), nil
}
