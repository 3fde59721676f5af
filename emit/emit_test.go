package emit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/autoi18n/autoi18n/cache"
)

var testLangs = []string{"en", "zh", "ja", "es", "fr", "hi"}

func TestWriteDataModuleOrderAndEscaping(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	keys := []string{"Save", `He said "hi"`, "line\nbreak"}
	records := map[string]cache.Record{
		"Save":         {"es": "Guardar", "en": "Save"},
		`He said "hi"`: {"en": `He said "hi"`},
		"line\nbreak":  {"en": "line\nbreak"},
	}

	if err := Write(out, keys, records, testLangs); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, DataFile))
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	if !strings.HasPrefix(text, "// Code generated by autoi18n. DO NOT EDIT.") {
		t.Fatalf("missing generated header:\n%s", text)
	}

	// Discovery order is preserved and record languages are sorted.
	iSave := strings.Index(text, `"Save": {"en": "Save", "es": "Guardar"}`)
	iQuote := strings.Index(text, `"He said \"hi\""`)
	iBreak := strings.Index(text, `"line\nbreak"`)
	if iSave < 0 || iQuote < 0 || iBreak < 0 {
		t.Fatalf("entries missing or mis-escaped:\n%s", text)
	}
	if !(iSave < iQuote && iQuote < iBreak) {
		t.Fatalf("key order not preserved:\n%s", text)
	}
}

func TestWriteIsDeterministic(t *testing.T) {
	t.Parallel()

	keys := []string{"a", "b"}
	records := map[string]cache.Record{
		"a": {"en": "a", "fr": "à", "ja": "あ"},
		"b": {"ja": "ぶ", "en": "b", "fr": "bé"},
	}

	read := func() string {
		t.Helper()
		out := t.TempDir()
		if err := Write(out, keys, records, testLangs); err != nil {
			t.Fatalf("Write: %v", err)
		}
		b, err := os.ReadFile(filepath.Join(out, DataFile))
		if err != nil {
			t.Fatal(err)
		}
		return string(b)
	}

	if first, second := read(), read(); first != second {
		t.Fatalf("data module not byte-identical across runs:\n%s\n---\n%s", first, second)
	}
}

func TestWriteIndexModule(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	if err := Write(out, []string{"x"}, map[string]cache.Record{"x": {"en": "x"}}, []string{"fr", "en"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(out, IndexFile))
	if err != nil {
		t.Fatal(err)
	}
	text := string(b)

	for _, want := range []string{
		`const LANGS = ["fr","en"];`,
		`const DEFAULT_LANG = "fr";`,
		`import { i18nData } from "./data.js";`,
		"export function detectLang()",
		"export function t(text, lang)",
		"export function ts(text)",
		"export function tr(text)",
		"export function ti(text)",
		"export function setLang(lang)",
		"export function format(template, values)",
		`"{" + name + "?}"`,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("index module missing %q:\n%s", want, text)
		}
	}
}

func TestWriteCreatesOutputDirectory(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "deep", "i18n")
	if err := Write(out, nil, nil, testLangs); err != nil {
		t.Fatalf("Write into missing directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, DataFile)); err != nil {
		t.Fatalf("data module not written: %v", err)
	}
}
