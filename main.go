// autoi18n — marker-driven UI string extraction and AI translation for
// JavaScript/TypeScript projects.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/autoi18n/autoi18n/config"
	"github.com/autoi18n/autoi18n/emit"
	"github.com/autoi18n/autoi18n/i18n"
	"github.com/autoi18n/autoi18n/langmeta"
	"github.com/autoi18n/autoi18n/pipeline"
	"github.com/autoi18n/autoi18n/settings"
	"github.com/autoi18n/autoi18n/translate"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

const defaultLangs = "en,zh,ja,es,fr,hi"

func newRootCmd() *cobra.Command {
	var (
		outFlag     string
		langsFlag   string
		styleFlag   string
		apiKeyFlag  string
		baseURLFlag string
		dbFlag      string
	)

	root := &cobra.Command{
		Use:   "autoi18n [dir]",
		Short: "Extract marker-call literals, translate them once, and generate runtime i18n modules",
		Long: `autoi18n scans a JavaScript/TypeScript tree for t(), ts(), tr() and ti()
marker calls, translates each new literal through an AI completion service,
caches every result in a local SQLite database, and regenerates the data.js
and index.js runtime modules from the cache.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runGenerate(cmd, generateArgs{
				root:    dir,
				out:     outFlag,
				langs:   langsFlag,
				style:   styleFlag,
				apiKey:  apiKeyFlag,
				baseURL: baseURLFlag,
				db:      dbFlag,
			})
		},
	}

	root.Flags().StringVarP(&outFlag, "out", "o", "./i18n", "output directory for the generated modules")
	root.Flags().StringVarP(&langsFlag, "langs", "l", defaultLangs, "comma-separated output language codes")
	root.Flags().StringVarP(&styleFlag, "style", "s", "", "extra style directive for the translation prompt (default $AUTOI18N_STYLE)")
	root.Flags().StringVar(&apiKeyFlag, "api-key", "", "API key (default $AUTOI18N_API_KEY, $OPENAI_API_KEY, stored key)")
	root.Flags().StringVar(&baseURLFlag, "base-url", translate.DefaultBaseURL, "completion service base URL")
	root.Flags().StringVar(&dbFlag, "db", "", "translation cache path (default <out>/cache.sqlite)")

	root.AddCommand(newLangsCmd())
	root.AddCommand(newAuthCmd())
	root.AddCommand(newVersionCmd())
	return root
}

type generateArgs struct {
	root    string
	out     string
	langs   string
	style   string
	apiKey  string
	baseURL string
	db      string
}

func runGenerate(cmd *cobra.Command, a generateArgs) error {
	proj, err := config.Load(a.root)
	if err != nil {
		return err
	}

	out := resolveOut(a.out, cmd.Flags().Changed("out"), proj)
	if out == "" {
		return fmt.Errorf("output directory must not be empty")
	}

	langSpec := resolveLangSpec(a.langs, cmd.Flags().Changed("langs"), proj)
	langs, err := langmeta.ParseList(langSpec)
	if err != nil {
		return err
	}

	apiKey := settings.ResolveAPIKey(a.apiKey)
	if apiKey == "" {
		return fmt.Errorf("%s", i18n.T("No API key found. Set OPENAI_API_KEY or run: autoi18n auth set-key"))
	}

	client := translate.New(apiKey, resolveStyle(a.style, proj))
	client.BaseURL = a.baseURL

	db := a.db
	if db == "" {
		db = filepath.Join(out, "cache.sqlite")
	}

	logInfo(i18n.T("Scanning %s"), a.root)
	sum, err := pipeline.Run(cmd.Context(), pipeline.Options{
		Root:       a.root,
		OutDir:     out,
		DBPath:     db,
		Langs:      langs,
		Translator: client,
		Log: func(format string, args ...any) {
			logInfo(i18n.T(format), args...)
		},
	})
	if err != nil {
		return err
	}

	if sum.Skipped > 0 {
		logWarning("%d literal(s) skipped this run, they will be retried next time", sum.Skipped)
	}
	logSuccess("%d scanned file(s), %d cached, %d newly translated, %d entries",
		sum.Files, sum.Cached, sum.Translated, sum.Entries)
	logSuccess(i18n.T("Generated %s and %s in %s"), emit.DataFile, emit.IndexFile, out)
	return nil
}

// resolveOut applies flag > project file > built-in default.
func resolveOut(flagValue string, changed bool, proj *config.Project) string {
	if changed {
		return flagValue
	}
	if proj.Out != "" {
		return proj.Out
	}
	return flagValue
}

// resolveLangSpec applies flag > project file > built-in default.
func resolveLangSpec(flagValue string, changed bool, proj *config.Project) string {
	if changed {
		return flagValue
	}
	if len(proj.Languages) > 0 {
		return strings.Join(proj.Languages, ",")
	}
	return flagValue
}

// resolveStyle applies flag > environment > project file.
func resolveStyle(flagValue string, proj *config.Project) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("AUTOI18N_STYLE"); env != "" {
		return env
	}
	return proj.Style
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List the language codes accepted by --langs",
		Run: func(cmd *cobra.Command, args []string) {
			for _, code := range langmeta.Codes() {
				m := langmeta.Registry[code]
				fmt.Printf("  %s %-5s %-12s %s\n", m.Flag, code, m.Name, m.Native)
			}
		},
	}
}

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored API credential",
	}
	cmd.AddCommand(newAuthSetKeyCmd())
	cmd.AddCommand(newAuthStatusCmd())
	return cmd
}

func newAuthSetKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key KEY",
		Short: "Store an API key in the credential file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := settings.Save(&settings.Credentials{APIKey: args[0]}); err != nil {
				return err
			}
			path, _ := settings.Path()
			logSuccess(i18n.T("API key saved"))
			logInfo("%s", path)
			return nil
		},
	}
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the API key would come from",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case os.Getenv("AUTOI18N_API_KEY") != "":
				fmt.Println("using AUTOI18N_API_KEY")
			case os.Getenv("OPENAI_API_KEY") != "":
				fmt.Println("using OPENAI_API_KEY")
			default:
				creds, err := settings.Load()
				if err != nil {
					return err
				}
				if creds.APIKey != "" {
					path, _ := settings.Path()
					fmt.Printf("using stored key (%s)\n", path)
				} else {
					fmt.Println("no API key configured")
				}
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("autoi18n %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

func main() {
	i18n.Init("")

	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}
