package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-agencysite/internal/config"
	"github.com/goliatone/go-agencysite/internal/logging"
	"github.com/goliatone/go-agencysite/pkg/audit"
	"github.com/goliatone/go-agencysite/pkg/renderers/tui"
	"github.com/goliatone/go-agencysite/pkg/webhook"
)

var (
	dryRunFlag  = flag.Bool("dry-run", false, "print the payload instead of posting it")
	formatFlag  = flag.String("format", string(tui.OutputFormatPrettyText), "dry-run output format: json, form or pretty")
	webhookFlag = flag.String("webhook", "", "webhook URL (defaults to "+config.EnvAuditWebhookURL+")")
	timeoutFlag = flag.Duration("timeout", 30*time.Second, "webhook request timeout")
	logFlag     = flag.String("log-level", "warn", "log level")
)

func main() {
	flag.Parse()

	logger, err := logging.New(*logFlag, "console", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audit-cli: %v\n", err)
		os.Exit(2)
	}

	format, ok := tui.ParseOutputFormat(*formatFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "audit-cli: unknown format %q\n", *formatFlag)
		os.Exit(2)
	}

	sink, err := newSink(format, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audit-cli: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	wizard := audit.NewWizard(sink, audit.WithLogger(logger))
	runner := tui.New(tui.WithLogger(logger))

	err = runner.Run(ctx, wizard)
	stop()
	if err != nil {
		if errors.Is(err, tui.ErrAborted) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Audit cancelled.")
			os.Exit(130)
		}
		logger.Error().Err(err).Msg("audit failed")
		os.Exit(1)
	}
}

func newSink(format tui.OutputFormat, logger zerolog.Logger) (audit.Sink, error) {
	if *dryRunFlag {
		return audit.SinkFunc(func(_ context.Context, payload any) error {
			p, ok := payload.(audit.Payload)
			if !ok {
				return fmt.Errorf("unexpected payload %T", payload)
			}
			out, err := tui.Summarize(p, format)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(out)
			return err
		}), nil
	}

	endpoint := *webhookFlag
	if endpoint == "" {
		endpoint = os.Getenv(config.EnvAuditWebhookURL)
	}
	if endpoint == "" {
		return nil, fmt.Errorf("no webhook: pass -webhook, set %s or use -dry-run", config.EnvAuditWebhookURL)
	}
	client, err := webhook.New(endpoint,
		webhook.WithTimeout(*timeoutFlag),
		webhook.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}
