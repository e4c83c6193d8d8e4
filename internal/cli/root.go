package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MoAI522/embed-files/internal/app"
	"github.com/MoAI522/embed-files/internal/config"
	"github.com/MoAI522/embed-files/internal/debug"
	"github.com/MoAI522/embed-files/internal/template/model"
)

// rootOptions holds the flag values of one invocation.
type rootOptions struct {
	configPath    string
	noColor       bool
	quiet         bool
	debug         bool
	dryRun        bool
	perFileFormat bool
	restrict      bool

	// cfg is the loaded configuration with flag overrides applied.
	cfg *config.Config
}

// expandError carries the warnings gathered before a failed run so they can
// be printed after the error.
type expandError struct {
	err      error
	warnings []model.Warning
}

func (e *expandError) Error() string { return e.err.Error() }
func (e *expandError) Unwrap() error { return e.err }

// newRootCmd creates the ef command. The document goes to stdout; debug
// output goes to stderr.
func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "ef TEMPLATE",
		Short: "Embed files into a text template",
		Long: `ef expands file-selection directives in a text template into the contents
of the files they select, producing a single document on stdout.

Directives must start at the beginning of a line:
  #ef <glob>     shell glob (*, ?, **, [...], {a,b}) relative to the template
  #efr <regex>   regular expression matched against paths relative to the template

Each file is rendered with the nearest .eftemplate found from the template's
directory up to the filesystem root. A format may use the placeholders
{filePath}, {language} and {content}. Without one, files are rendered as a
path line followed by a fenced code block.

Warnings (for example a pattern that matched nothing) are printed on stderr
after the document.`,
		Args:          cobra.ExactArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd, stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd.Context(), opts, args[0], stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(versionTemplate())

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, FlagConfig, "", DescConfig)
	flags.BoolVar(&opts.noColor, FlagNoColor, false, DescNoColor)
	flags.BoolVarP(&opts.quiet, FlagQuiet, "q", false, DescQuiet)
	flags.BoolVarP(&opts.debug, FlagDebug, "d", false, DescDebug)
	flags.BoolVar(&opts.dryRun, FlagDryRun, false, DescDryRun)
	flags.BoolVar(&opts.perFileFormat, FlagPerFileFormat, false, DescPerFileFormat)
	flags.BoolVar(&opts.restrict, FlagRestrict, false, DescRestrict)

	return cmd, opts
}

// load reads the configuration and applies explicitly set flags on top.
func (o *rootOptions) load(cmd *cobra.Command, stderr io.Writer) error {
	// Enable debug before loading so config discovery is logged too.
	debug.SetOutput(stderr)
	debug.SetDebug(o.debug)

	path := o.configPath
	explicit := path != ""
	if explicit {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return err
		}
		path = expanded
	} else {
		path = config.DefaultConfigPath()
	}

	loader := config.NewLoader()
	var (
		cfg *config.Config
		err error
	)
	if explicit {
		cfg, err = loader.Load(path)
	} else {
		cfg, err = loader.LoadOrDefault(path)
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed(FlagDebug) {
		cfg.Debug = o.debug
	}
	if flags.Changed(FlagQuiet) {
		cfg.Output.Quiet = o.quiet
	}
	if flags.Changed(FlagNoColor) {
		cfg.Output.Color = !o.noColor
	}
	if flags.Changed(FlagPerFileFormat) {
		cfg.Format.PerFile = o.perFileFormat
	}
	if flags.Changed(FlagRestrict) {
		cfg.Resolver.RestrictToBaseDir = o.restrict
	}

	if err := loader.Validate(cfg); err != nil {
		return err
	}

	o.cfg = cfg
	debug.SetDebug(cfg.Debug)
	debug.SetNoColor(!cfg.Output.Color || !isTerminal(stderr))
	debug.DebugValue("[cli] Config file", path)
	debug.DebugJSON("[cli] Effective config", cfg)
	return nil
}

func runExpand(ctx context.Context, opts *rootOptions, templatePath string, stdout, stderr io.Writer) error {
	cfg := opts.cfg
	result, err := app.Expand(ctx, app.ExpandOptions{
		TemplatePath:      templatePath,
		Output:            stdout,
		FormatFileName:    cfg.Format.FileName,
		FormatCacheSize:   cfg.Format.CacheSize,
		PerFileFormat:     cfg.Format.PerFile,
		RestrictToBaseDir: cfg.Resolver.RestrictToBaseDir,
		IgnorePatterns:    cfg.Resolver.IgnorePatterns,
		DryRun:            opts.dryRun,
	})
	if err != nil {
		return &expandError{err: err, warnings: result.Warnings}
	}

	newReporter(stderr, useColor(cfg, stderr), cfg.Output.Quiet, cfg.Debug).printWarnings(result.Warnings)
	return nil
}

func useColor(cfg *config.Config, w io.Writer) bool {
	if cfg == nil || !cfg.Output.Color {
		return false
	}
	return isTerminal(w)
}

// Run executes ef with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd, opts := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	defer func() {
		debug.SetDebug(false)
		debug.SetOutput(nil)
	}()

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	cfg := opts.cfg
	debugMode := opts.debug
	quiet := opts.quiet
	if cfg != nil {
		debugMode = cfg.Debug
		quiet = cfg.Output.Quiet
	}

	r := newReporter(stderr, useColor(cfg, stderr) && !opts.noColor, quiet, debugMode)
	var expErr *expandError
	if errors.As(err, &expErr) {
		r.printError(expErr.err)
		r.printWarnings(expErr.warnings)
	} else {
		r.printError(err)
	}
	return 1
}

// Execute runs the root command with the process arguments and exits.
// This is called by main.main().
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
