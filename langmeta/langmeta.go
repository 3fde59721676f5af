// Package langmeta provides a shared language metadata registry
// (English names, native names and emoji flags) used for target-language
// validation and for naming languages in translation prompts.
package langmeta

import (
	"fmt"
	"sort"
	"strings"
)

// Meta describes language display metadata.
type Meta struct {
	// Name is the English language name ("Japanese").
	Name string
	// Native is the language's own name for itself ("日本語").
	Native string
	// Flag is a representative emoji flag.
	Flag string
}

// Registry contains canonical language metadata, keyed by ISO 639-1 code.
// Locale variants ("pt-BR") are resolved in Resolve() via normalization
// and base-language fallback.
var Registry = map[string]Meta{
	"ar": {Name: "Arabic", Native: "العربية", Flag: "🇸🇦"},
	"bg": {Name: "Bulgarian", Native: "Български", Flag: "🇧🇬"},
	"bn": {Name: "Bengali", Native: "বাংলা", Flag: "🇧🇩"},
	"cs": {Name: "Czech", Native: "Čeština", Flag: "🇨🇿"},
	"da": {Name: "Danish", Native: "Dansk", Flag: "🇩🇰"},
	"de": {Name: "German", Native: "Deutsch", Flag: "🇩🇪"},
	"el": {Name: "Greek", Native: "Ελληνικά", Flag: "🇬🇷"},
	"en": {Name: "English", Native: "English", Flag: "🇺🇸"},
	"es": {Name: "Spanish", Native: "Español", Flag: "🇪🇸"},
	"et": {Name: "Estonian", Native: "Eesti", Flag: "🇪🇪"},
	"fa": {Name: "Persian", Native: "فارسی", Flag: "🇮🇷"},
	"fi": {Name: "Finnish", Native: "Suomi", Flag: "🇫🇮"},
	"fr": {Name: "French", Native: "Français", Flag: "🇫🇷"},
	"he": {Name: "Hebrew", Native: "עברית", Flag: "🇮🇱"},
	"hi": {Name: "Hindi", Native: "हिन्दी", Flag: "🇮🇳"},
	"hr": {Name: "Croatian", Native: "Hrvatski", Flag: "🇭🇷"},
	"hu": {Name: "Hungarian", Native: "Magyar", Flag: "🇭🇺"},
	"id": {Name: "Indonesian", Native: "Bahasa Indonesia", Flag: "🇮🇩"},
	"it": {Name: "Italian", Native: "Italiano", Flag: "🇮🇹"},
	"ja": {Name: "Japanese", Native: "日本語", Flag: "🇯🇵"},
	"ko": {Name: "Korean", Native: "한국어", Flag: "🇰🇷"},
	"lt": {Name: "Lithuanian", Native: "Lietuvių", Flag: "🇱🇹"},
	"lv": {Name: "Latvian", Native: "Latviešu", Flag: "🇱🇻"},
	"ms": {Name: "Malay", Native: "Bahasa Melayu", Flag: "🇲🇾"},
	"nl": {Name: "Dutch", Native: "Nederlands", Flag: "🇳🇱"},
	"no": {Name: "Norwegian", Native: "Norsk", Flag: "🇳🇴"},
	"pl": {Name: "Polish", Native: "Polski", Flag: "🇵🇱"},
	"pt": {Name: "Portuguese", Native: "Português", Flag: "🇵🇹"},
	"ro": {Name: "Romanian", Native: "Română", Flag: "🇷🇴"},
	"ru": {Name: "Russian", Native: "Русский", Flag: "🇷🇺"},
	"sk": {Name: "Slovak", Native: "Slovenčina", Flag: "🇸🇰"},
	"sl": {Name: "Slovenian", Native: "Slovenščina", Flag: "🇸🇮"},
	"sr": {Name: "Serbian", Native: "Српски", Flag: "🇷🇸"},
	"sv": {Name: "Swedish", Native: "Svenska", Flag: "🇸🇪"},
	"sw": {Name: "Swahili", Native: "Kiswahili", Flag: "🇹🇿"},
	"ta": {Name: "Tamil", Native: "தமிழ்", Flag: "🇮🇳"},
	"th": {Name: "Thai", Native: "ไทย", Flag: "🇹🇭"},
	"tr": {Name: "Turkish", Native: "Türkçe", Flag: "🇹🇷"},
	"uk": {Name: "Ukrainian", Native: "Українська", Flag: "🇺🇦"},
	"ur": {Name: "Urdu", Native: "اردو", Flag: "🇵🇰"},
	"vi": {Name: "Vietnamese", Native: "Tiếng Việt", Flag: "🇻🇳"},
	"zh": {Name: "Chinese", Native: "中文", Flag: "🇨🇳"},
}

// canonicalize normalizes a language tag to its lowercase base code:
// "pt_BR" -> "pt", " EN " -> "en".
func canonicalize(lang string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if normalized == "" {
		return ""
	}
	parts := strings.Split(normalized, "-")
	return strings.ToLower(parts[0])
}

// Resolve returns the metadata for a language tag, falling back to the
// base language for locale variants. ok is false for unknown codes.
func Resolve(lang string) (Meta, bool) {
	m, ok := Registry[canonicalize(lang)]
	return m, ok
}

// Known reports whether lang resolves to a registered language code.
func Known(lang string) bool {
	_, ok := Resolve(lang)
	return ok
}

// Name returns the English name for a language code, or the code itself
// when unknown.
func Name(lang string) string {
	if m, ok := Resolve(lang); ok {
		return m.Name
	}
	return lang
}

// Native returns the native name for a language code, or the code itself
// when unknown.
func Native(lang string) string {
	if m, ok := Resolve(lang); ok {
		return m.Native
	}
	return lang
}

// ParseList splits a comma-separated language list, canonicalizes each
// code and validates it against the registry. An unknown code is a hard
// configuration error.
func ParseList(spec string) ([]string, error) {
	var langs []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(spec, ",") {
		code := canonicalize(part)
		if code == "" {
			continue
		}
		if !Known(code) {
			return nil, fmt.Errorf("unknown language code %q", strings.TrimSpace(part))
		}
		if !seen[code] {
			seen[code] = true
			langs = append(langs, code)
		}
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("no language codes in %q", spec)
	}
	return langs, nil
}

// Codes returns all registered language codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(Registry))
	for code := range Registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
