package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/autoi18n/autoi18n/config"
)

func TestResolveOut(t *testing.T) {
	proj := &config.Project{Out: "web/i18n"}

	if got := resolveOut("./custom", true, proj); got != "./custom" {
		t.Fatalf("explicit flag should win, got %q", got)
	}
	if got := resolveOut("./i18n", false, proj); got != "web/i18n" {
		t.Fatalf("project file should beat the default, got %q", got)
	}
	if got := resolveOut("./i18n", false, &config.Project{}); got != "./i18n" {
		t.Fatalf("default should survive, got %q", got)
	}
}

func TestResolveLangSpec(t *testing.T) {
	proj := &config.Project{Languages: []string{"en", "de"}}

	if got := resolveLangSpec("fr", true, proj); got != "fr" {
		t.Fatalf("explicit flag should win, got %q", got)
	}
	if got := resolveLangSpec(defaultLangs, false, proj); got != "en,de" {
		t.Fatalf("project file should beat the default, got %q", got)
	}
	if got := resolveLangSpec(defaultLangs, false, &config.Project{}); got != defaultLangs {
		t.Fatalf("default should survive, got %q", got)
	}
}

func TestResolveStyle(t *testing.T) {
	t.Setenv("AUTOI18N_STYLE", "")
	proj := &config.Project{Style: "from file"}

	if got := resolveStyle("from flag", proj); got != "from flag" {
		t.Fatalf("flag should win, got %q", got)
	}
	if got := resolveStyle("", proj); got != "from file" {
		t.Fatalf("file fallback, got %q", got)
	}

	t.Setenv("AUTOI18N_STYLE", "from env")
	if got := resolveStyle("", proj); got != "from env" {
		t.Fatalf("env should beat the file, got %q", got)
	}
}

// isolateCreds clears every credential source so preflight checks are
// deterministic.
func isolateCreds(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("AUTOI18N_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("AUTOI18N_STYLE", "")
}

func TestUnknownLanguageCodeAbortsBeforeAnyIO(t *testing.T) {
	isolateCreds(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	tree := t.TempDir()
	if err := os.WriteFile(filepath.Join(tree, "a.js"), []byte(`t("x")`), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "i18n")

	cmd := newRootCmd()
	cmd.SetArgs([]string{tree, "--langs", "en,xx", "--out", out})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected unknown language code to abort")
	}
	if !strings.Contains(err.Error(), "xx") {
		t.Fatalf("error should name the bad code: %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatal("aborted run must not create the output directory")
	}
}

func TestMissingCredentialAborts(t *testing.T) {
	isolateCreds(t)

	tree := t.TempDir()
	out := filepath.Join(t.TempDir(), "i18n")

	cmd := newRootCmd()
	cmd.SetArgs([]string{tree, "--out", out})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected missing credential to abort")
	}
	if !strings.Contains(err.Error(), "API key") {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatal("aborted run must not create the output directory")
	}
}

func TestEmptyOutFlagAborts(t *testing.T) {
	isolateCreds(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cmd := newRootCmd()
	cmd.SetArgs([]string{t.TempDir(), "--out", ""})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected empty output directory to abort")
	}
	if !strings.Contains(err.Error(), "output directory") {
		t.Fatalf("unexpected error: %v", err)
	}
}
