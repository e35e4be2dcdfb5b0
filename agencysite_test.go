package agencysite

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-agencysite/pkg/site"
)

func TestStaticAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(StaticAssetsFS(), "css/site.css")
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), "--gold") {
		t.Fatalf("expected stylesheet to use brand tokens")
	}
}

func TestEmbeddedTemplatesAndContent(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "pages/home.tpl"); err != nil {
		t.Fatalf("expected home template: %v", err)
	}
	if _, err := fs.Stat(EmbeddedContent(), "site.yaml"); err != nil {
		t.Fatalf("expected site content: %v", err)
	}
}

func TestRenderPage(t *testing.T) {
	variant, err := WithThemeVariant(site.VariantLight)
	if err != nil {
		t.Fatalf("theme variant: %v", err)
	}
	out, err := RenderPage(context.Background(), site.PageAbout, "", variant)
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `data-theme="light"`) || !strings.Contains(html, "/static/css/site-light.css") {
		t.Fatalf("expected light theme markup")
	}
}

func TestNewAuditWizardRejectsBadEndpoint(t *testing.T) {
	if _, err := NewAuditWizard("://bad"); err == nil {
		t.Fatalf("expected error for malformed endpoint")
	}
	wizard, err := NewAuditWizard("")
	if err != nil {
		t.Fatalf("log wizard: %v", err)
	}
	if wizard.Step() != 1 {
		t.Fatalf("expected wizard on step 1")
	}
}
