// Package pipeline sequences one autoi18n run: scan the source tree,
// serve each literal from the cache or translate and persist it, then
// regenerate the output modules.
//
// Literals are processed strictly one at a time, in discovery order, so at
// most one translation request is ever in flight. Soft failures skip one
// literal; everything else aborts the run, leaving already-cached rows
// valid for the next one. The output modules are written once, at the very
// end, from the full set collected this run.
package pipeline

import (
	"context"
	"fmt"

	"github.com/autoi18n/autoi18n/cache"
	"github.com/autoi18n/autoi18n/emit"
	"github.com/autoi18n/autoi18n/extract"
	"github.com/autoi18n/autoi18n/translate"
)

// FallbackLiteral seeds the generated modules when a tree contains no
// marker calls at all, so they are never empty.
const FallbackLiteral = "Hello, world!"

// Translator is the per-literal translation dependency.
type Translator interface {
	Translate(ctx context.Context, literal string) (cache.Record, error)
}

// Options configures one run. Translator and the language list must be
// validated by the caller before Run starts.
type Options struct {
	// Root is the source tree to scan.
	Root string
	// OutDir receives the generated modules.
	OutDir string
	// DBPath is the cache database location.
	DBPath string
	// Langs is the validated output language list.
	Langs []string
	// Translator handles cache misses.
	Translator Translator
	// Log receives progress messages; nil is silent.
	Log func(format string, args ...any)
}

// Summary reports what one run did.
type Summary struct {
	// Files is the number of source files scanned.
	Files int
	// Literals is the number of unique literals discovered.
	Literals int
	// Translated counts literals freshly translated this run.
	Translated int
	// Cached counts literals served from the cache.
	Cached int
	// Skipped counts literals dropped on soft failures.
	Skipped int
	// Entries is the number of entries in the generated data module.
	Entries int
}

func (o Options) log(format string, args ...any) {
	if o.Log != nil {
		o.Log(format, args...)
	}
}

// Run executes the pipeline and returns its summary.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if opts.OutDir == "" {
		return nil, fmt.Errorf("output directory must not be empty")
	}
	if opts.Translator == nil {
		return nil, fmt.Errorf("no translator configured")
	}
	if len(opts.Langs) == 0 {
		return nil, fmt.Errorf("no output languages configured")
	}

	res, err := extract.Scan(opts.Root)
	if err != nil {
		return nil, err
	}
	sum := &Summary{Files: res.Files, Literals: len(res.Literals)}

	literals := res.Literals
	if len(literals) == 0 {
		opts.log("no marker calls found, seeding %q", FallbackLiteral)
		literals = []string{FallbackLiteral}
	}

	store, err := cache.Open(opts.DBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	// Per-run accumulation: every literal that ends up with a record,
	// in discovery order. Skipped literals contribute nothing.
	var keys []string
	records := make(map[string]cache.Record)

	for _, lit := range literals {
		rec, ok, err := store.Lookup(lit)
		if err != nil {
			return nil, err
		}
		if ok {
			sum.Cached++
			keys = append(keys, lit)
			records[lit] = rec
			continue
		}

		opts.log("translating %q", lit)
		rec, err = opts.Translator.Translate(ctx, lit)
		if err != nil {
			if translate.IsSoft(err) {
				opts.log("skipping %q: %v", lit, err)
				sum.Skipped++
				continue
			}
			return nil, err
		}
		if err := store.Insert(lit, rec); err != nil {
			return nil, err
		}
		sum.Translated++
		keys = append(keys, lit)
		records[lit] = rec
	}

	if err := emit.Write(opts.OutDir, keys, records, opts.Langs); err != nil {
		return nil, err
	}
	emit.Format(opts.OutDir)

	sum.Entries = len(keys)
	opts.log("translated %d new literals, %d entries emitted", sum.Translated, sum.Entries)
	return sum, nil
}
