// Package config loads server settings from an optional YAML file, a .env
// file, and AGENCY_* environment variables, in that order of precedence
// (environment wins).
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration.
type Config struct {
	Server  Server  `yaml:"server"`
	Audit   Target  `yaml:"audit" envPrefix:"AGENCY_AUDIT_"`
	Contact Target  `yaml:"contact" envPrefix:"AGENCY_CONTACT_"`
	Log     Log     `yaml:"log"`
	Content Content `yaml:"content"`
}

type Server struct {
	Addr          string   `yaml:"addr" env:"AGENCY_ADDR"`
	ShutdownGrace Duration `yaml:"shutdown_grace" env:"AGENCY_SHUTDOWN_GRACE"`
	SessionTTL    Duration `yaml:"session_ttl" env:"AGENCY_SESSION_TTL"`
	// ThemeVariant selects the brand variant (dark or light).
	ThemeVariant string `yaml:"theme_variant" env:"AGENCY_THEME_VARIANT"`
}

// Target is an outbound webhook. An empty URL means submissions are logged
// instead of posted.
type Target struct {
	WebhookURL string   `yaml:"webhook_url" env:"WEBHOOK_URL"`
	Timeout    Duration `yaml:"timeout" env:"TIMEOUT"`
}

type Log struct {
	Level  string `yaml:"level" env:"AGENCY_LOG_LEVEL"`
	Format string `yaml:"format" env:"AGENCY_LOG_FORMAT"`
}

// Content optionally points at a directory of YAML files replacing the
// embedded site content.
type Content struct {
	Path string `yaml:"path" env:"AGENCY_CONTENT_PATH"`
}

// Environment variable names, mirrored by the env struct tags.
const (
	EnvAddr              = "AGENCY_ADDR"
	EnvShutdownGrace     = "AGENCY_SHUTDOWN_GRACE"
	EnvSessionTTL        = "AGENCY_SESSION_TTL"
	EnvThemeVariant      = "AGENCY_THEME_VARIANT"
	EnvAuditWebhookURL   = "AGENCY_AUDIT_WEBHOOK_URL"
	EnvAuditTimeout      = "AGENCY_AUDIT_TIMEOUT"
	EnvContactWebhookURL = "AGENCY_CONTACT_WEBHOOK_URL"
	EnvContactTimeout    = "AGENCY_CONTACT_TIMEOUT"
	EnvLogLevel          = "AGENCY_LOG_LEVEL"
	EnvLogFormat         = "AGENCY_LOG_FORMAT"
	EnvContentPath       = "AGENCY_CONTENT_PATH"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Default returns a configuration that serves on :8080 and logs submissions.
func Default() Config {
	return Config{
		Server: Server{
			Addr:          ":8080",
			ShutdownGrace: Duration(5 * time.Second),
			SessionTTL:    Duration(30 * time.Minute),
			ThemeVariant:  "dark",
		},
		Audit:   Target{Timeout: Duration(30 * time.Second)},
		Contact: Target{Timeout: Duration(30 * time.Second)},
		Log: Log{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and the environment. envFiles are loaded with godotenv
// first; missing files are ignored. Variables already set in the process
// environment are not overwritten by .env files.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: load %s: %w", file, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks addresses, URLs, durations and enumerated settings.
func (c Config) Validate() error {
	var problems []string

	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		problems = append(problems, fmt.Sprintf("server.addr %q: %v", c.Server.Addr, err))
	}
	if c.Server.ShutdownGrace <= 0 {
		problems = append(problems, "server.shutdown_grace must be positive")
	}
	if c.Server.SessionTTL <= 0 {
		problems = append(problems, "server.session_ttl must be positive")
	}
	switch c.Server.ThemeVariant {
	case "", "dark", "light":
	default:
		problems = append(problems, fmt.Sprintf("server.theme_variant %q must be dark or light", c.Server.ThemeVariant))
	}

	for name, target := range map[string]Target{"audit": c.Audit, "contact": c.Contact} {
		if target.WebhookURL != "" && !validURL(target.WebhookURL) {
			problems = append(problems, fmt.Sprintf("%s.webhook_url %q must be an absolute http(s) URL", name, target.WebhookURL))
		}
		if target.Timeout < 0 {
			problems = append(problems, fmt.Sprintf("%s.timeout must not be negative", name))
		}
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		problems = append(problems, fmt.Sprintf("log.level %q: %v", c.Log.Level, err))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q must be json or console", c.Log.Format))
	}

	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
