package testsupport_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-agencysite/pkg/testsupport"
)

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.json")
	if err := os.WriteFile(path, []byte(`{"firstName":"Jane"}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var got map[string]string
	testsupport.MustLoadJSON(t, path, &got)
	if got["firstName"] != "Jane" {
		t.Fatalf("unexpected fixture %v", got)
	}

	if err := testsupport.LoadJSON("", &got); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if err := testsupport.LoadJSON(filepath.Join(dir, "missing.json"), &got); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWriteMaybeGolden_Disabled(t *testing.T) {
	t.Setenv("UPDATE_GOLDENS", "")
	path := filepath.Join(t.TempDir(), "out.golden")
	if testsupport.WriteMaybeGolden(t, path, []byte("x")) {
		t.Fatalf("expected no write without UPDATE_GOLDENS")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("golden should not exist, stat err = %v", err)
	}
}
