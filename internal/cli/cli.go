package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/happyhackingspace/lemmabase"
	"github.com/happyhackingspace/lemmabase/internal/banner"
	"github.com/happyhackingspace/lemmabase/internal/config"
	"github.com/spf13/cobra"
)

// CLI encapsulates the command-line interface with its dependencies.
type CLI struct {
	version     string
	verbose     bool
	silent      bool
	configPath  string
	cfg         *config.Config
	stderr      io.Writer
	initialized bool
	rootCmd     *cobra.Command
}

// New creates a new CLI instance with the given version string.
func New(version string) *CLI {
	c := &CLI{version: version, cfg: config.Default(), stderr: os.Stderr}
	c.setupCommands()
	return c
}

// setupCommands initializes all CLI commands and their configurations.
func (c *CLI) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:           "lemmabase",
		Short:         "Frequency baseline lemmatizer for annotated corpora",
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initApp()
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	c.rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose/debug output")
	c.rootCmd.PersistentFlags().BoolVarP(&c.silent, "silent", "s", false, "Suppress all logging and banner")
	c.rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to YAML config file")

	defaultHelp := c.rootCmd.HelpFunc()
	c.rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		_ = c.initApp()
		defaultHelp(cmd, args)
	})

	c.rootCmd.AddCommand(c.newEvaluateCommand())
	c.rootCmd.AddCommand(c.newStatsCommand())
	c.rootCmd.AddCommand(c.newPredictCommand())
	c.rootCmd.AddCommand(c.newDataCommand())
	c.rootCmd.AddCommand(c.newUpCommand())
}

// Run executes the CLI and returns any error.
// Errors always reach stderr, also in silent mode where logging is off.
func (c *CLI) Run() error {
	err := c.rootCmd.Execute()
	if err == nil {
		return nil
	}
	if c.silent || !c.initialized {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
	} else {
		slog.Error("Command failed", "error", err)
	}
	return err
}

// initApp loads configuration, initializes logging and prints the banner.
func (c *CLI) initApp() error {
	if c.initialized {
		return nil
	}
	c.initialized = true

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	c.cfg = cfg

	level := parseLevel(cfg.LogLevel)
	if c.verbose {
		level = slog.LevelDebug
	}
	if c.silent {
		level = slog.Level(100)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{
		Level: level,
	})))
	if !c.silent {
		fmt.Fprint(c.stderr, banner.Banner(c.version))
	}
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// corpusFlags binds the corpus reading flags shared by several commands.
// Values left unset on the command line come from the loaded config.
type corpusFlags struct {
	formField     int
	lemmaField    int
	skipMalformed bool
	normalize     string
	lowercase     bool
}

func (f *corpusFlags) register(cmd *cobra.Command) {
	d := config.Default().Corpus
	cmd.Flags().IntVar(&f.formField, "form-field", d.FormField, "Zero-based column of the word form")
	cmd.Flags().IntVar(&f.lemmaField, "lemma-field", d.LemmaField, "Zero-based column of the lemma")
	cmd.Flags().BoolVar(&f.skipMalformed, "skip-malformed", d.SkipMalformed, "Skip token lines with too few columns instead of failing")
	cmd.Flags().StringVar(&f.normalize, "normalize", d.Normalize, "Unicode normalization applied to forms and lemmas (nfc, nfd, nfkc, nfkd)")
	cmd.Flags().BoolVar(&f.lowercase, "lowercase", d.Lowercase, "Lowercase forms and lemmas")
}

func (f *corpusFlags) options(cmd *cobra.Command, cfg *config.Config) *lemmabase.Options {
	opts := &lemmabase.Options{
		FormField:     cfg.Corpus.FormField,
		LemmaField:    cfg.Corpus.LemmaField,
		SkipMalformed: cfg.Corpus.SkipMalformed,
		Normalize:     cfg.Corpus.Normalize,
		Lowercase:     cfg.Corpus.Lowercase,
	}
	flags := cmd.Flags()
	if flags.Changed("form-field") {
		opts.FormField = f.formField
	}
	if flags.Changed("lemma-field") {
		opts.LemmaField = f.lemmaField
	}
	if flags.Changed("skip-malformed") {
		opts.SkipMalformed = f.skipMalformed
	}
	if flags.Changed("normalize") {
		opts.Normalize = f.normalize
	}
	if flags.Changed("lowercase") {
		opts.Lowercase = f.lowercase
	}
	return opts
}
