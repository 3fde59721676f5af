// Package extract recovers translatable string literals from marker
// call-sites in a JavaScript/TypeScript source tree.
//
// Extraction is purely lexical: an ordered battery of regular-expression
// matchers runs over each file's full content, one matcher per calling
// convention of each marker function. No parser is involved, so a literal
// that itself contains call-like text is never expanded recursively.
package extract

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Markers are the function names whose string argument is collected.
// They mirror the lookup functions of the generated runtime module:
// t (localized text), ts (server passthrough), tr (full record),
// ti (integer id).
var Markers = []string{"t", "ts", "tr", "ti"}

// skipDirs contains directory names never descended into: VCS metadata,
// dependency caches, build output, generated assets, editor and ORM
// tooling folders, and the generated i18n output itself.
var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"out":          true,
	".next":        true,
	".nuxt":        true,
	"coverage":     true,
	"public":       true,
	"assets":       true,
	"static":       true,
	".vscode":      true,
	".idea":        true,
	"prisma":       true,
	"drizzle":      true,
	"migrations":   true,
	"i18n":         true,
}

// sourceSuffixes lists the file suffixes scanned for marker calls.
// Anything else is never opened.
var sourceSuffixes = []string{
	".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs", ".vue", ".svelte",
}

// matcher pairs one marker calling convention with the pattern that
// recovers its argument. Submatch 1 always captures the argument
// including its delimiters.
type matcher struct {
	convention string
	re         *regexp.Regexp
}

// registry is the ordered matcher battery, three conventions per marker:
//
//	call:   t("...") / t('...') / t(`...`) on one line
//	loose:  t( "..." , ) with arbitrary whitespace, newlines and an
//	        optional trailing comma
//	tagged: t`...` template invocation without parentheses
//
// Results are deduplicated through the key set, not through matcher
// precedence, so overlap between conventions is harmless.
var registry = buildRegistry(Markers)

func buildRegistry(markers []string) []matcher {
	const (
		quoted = `"[^"\n]*"|'[^'\n]*'|` + "`[^`]*`"
		bound  = `(?:^|[^\w$])`
	)
	var ms []matcher
	for _, name := range markers {
		ms = append(ms,
			matcher{
				convention: name + " call",
				re:         regexp.MustCompile(bound + name + `\((` + quoted + `)\)`),
			},
			matcher{
				convention: name + " loose call",
				re:         regexp.MustCompile(bound + name + `\(\s*(` + quoted + `)\s*,?\s*\)`),
			},
			matcher{
				convention: name + " tagged template",
				re:         regexp.MustCompile(bound + name + "(`[^`]*`)"),
			},
		)
	}
	return ms
}

// Result holds the outcome of a source-tree scan.
type Result struct {
	// Literals are the deduplicated marker arguments in first-discovery
	// order.
	Literals []string
	// Files is the number of source files scanned.
	Files int
}

// Scan walks the tree under root and returns every unique marker-call
// literal. Discovery order is the lexical walk order of the tree, so
// repeated scans of an unchanged tree produce identical output.
func Scan(root string) (*Result, error) {
	res := &Result{}
	seen := make(map[string]bool)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !isSource(d.Name()) {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		res.Files++
		for _, lit := range ScanText(string(content)) {
			if !seen[lit] {
				seen[lit] = true
				res.Literals = append(res.Literals, lit)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return res, nil
}

// ScanText runs the full matcher battery over one file's content and
// returns its unique literals in first-match order. The delimiter pair
// around each captured argument is stripped; arguments that are empty
// after stripping are discarded.
func ScanText(content string) []string {
	var literals []string
	seen := make(map[string]bool)
	for _, m := range registry {
		for _, match := range m.re.FindAllStringSubmatch(content, -1) {
			lit := stripDelimiters(match[1])
			if lit == "" || seen[lit] {
				continue
			}
			seen[lit] = true
			literals = append(literals, lit)
		}
	}
	return literals
}

// stripDelimiters removes the first and last character (the quote or
// backtick pair) from a captured argument.
func stripDelimiters(arg string) string {
	if len(arg) < 2 {
		return ""
	}
	return arg[1 : len(arg)-1]
}

// isSource reports whether a file name passes the text-source suffix
// filter.
func isSource(name string) bool {
	for _, suffix := range sourceSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// SourceSuffixes returns the scanned file suffixes, for CLI help output.
func SourceSuffixes() []string {
	return append([]string(nil), sourceSuffixes...)
}
