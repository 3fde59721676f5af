// Package emit serializes the collected translations into the two
// generated ES modules consumed by the host application: a data module
// holding the literal → record mapping, and an index module providing
// locale detection and the runtime lookup functions.
//
// Output is deterministic: keys are written in discovery order and each
// record's language keys are sorted, so an unchanged cache yields
// byte-identical files run after run.
package emit

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/autoi18n/autoi18n/cache"
)

const (
	// DataFile is the generated data module name.
	DataFile = "data.js"
	// IndexFile is the generated index module name.
	IndexFile = "index.js"

	header = "// Code generated by autoi18n. DO NOT EDIT.\n"
)

// Write regenerates both modules under outDir. keys fixes the emission
// (and therefore integer-id) order; langs is the configured language list
// embedded in the index module, with langs[0] as the baseline fallback.
func Write(outDir string, keys []string, records map[string]cache.Record, langs []string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, DataFile), []byte(dataModule(keys, records)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", DataFile, err)
	}
	if err := os.WriteFile(filepath.Join(outDir, IndexFile), []byte(indexModule(langs)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", IndexFile, err)
	}
	return nil
}

// Format runs prettier over the output directory. Best effort: the
// formatter's outcome is not distinguished from success.
func Format(outDir string) {
	cmd := exec.Command("npx", "prettier", "--write", outDir)
	cmd.Stdout = nil
	cmd.Stderr = nil
	_ = cmd.Run()
}

// dataModule renders the literal → record mapping as a static object
// literal. Property insertion order is the discovery order of keys, which
// the index module relies on for stable integer ids.
func dataModule(keys []string, records map[string]cache.Record) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\nexport const i18nData = {\n")
	for _, key := range keys {
		rec := records[key]
		b.WriteString("  ")
		b.WriteString(jsString(key))
		b.WriteString(": {")

		codes := make([]string, 0, len(rec))
		for code := range rec {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for i, code := range codes {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(jsString(code))
			b.WriteString(": ")
			b.WriteString(jsString(rec[code]))
		}
		b.WriteString("},\n")
	}
	b.WriteString("};\n")
	return b.String()
}

// indexModule renders the runtime companion module. Lookup functions take
// an optional explicit locale so callers (and tests) can resolve against
// any language without mutating module state.
func indexModule(langs []string) string {
	langsJSON, _ := json.Marshal(langs)
	return header + fmt.Sprintf(`
import { i18nData } from "./data.js";

const LANGS = %s;
const DEFAULT_LANG = %s;
const KEYS = Object.keys(i18nData);
const PREF_KEY = "autoi18n.lang";

// detectLang prefers a persisted user choice, then the first two
// characters of the browser locale, then the baseline language.
export function detectLang() {
  if (typeof localStorage !== "undefined") {
    const saved = localStorage.getItem(PREF_KEY);
    if (saved && LANGS.includes(saved)) return saved;
  }
  if (typeof navigator !== "undefined" && navigator.language) {
    const code = navigator.language.slice(0, 2);
    if (LANGS.includes(code)) return code;
  }
  return DEFAULT_LANG;
}

// t returns the localized string for text, or text itself when no record
// or no translation exists for the resolved locale.
export function t(text, lang) {
  const rec = i18nData[text];
  if (!rec) return text;
  const s = rec[lang || detectLang()];
  return s === undefined ? text : s;
}

// ts is the server-side passthrough: localization is deferred to the
// client, the literal is returned unchanged.
export function ts(text) {
  return text;
}

// tr returns the full per-language record for text.
export function tr(text) {
  return i18nData[text];
}

// ti returns the stable zero-based integer id of text, assigned by the
// data module's key order, or -1 for unknown text.
export function ti(text) {
  return KEYS.indexOf(text);
}

// setLang persists the language preference and reloads the page so every
// rendered string picks it up.
export function setLang(lang) {
  if (typeof localStorage !== "undefined") {
    localStorage.setItem(PREF_KEY, lang);
  }
  if (typeof location !== "undefined") {
    location.reload();
  }
}

// format substitutes {name} tokens from values; an unmatched token
// renders as a "{name?}" diagnostic.
export function format(template, values) {
  return template.replace(/\{(\w+)\}/g, (m, name) =>
    values && name in values ? String(values[name]) : "{" + name + "?}",
  );
}
`, langsJSON, jsString(langs[0]))
}

// jsString renders s as a double-quoted JS string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
