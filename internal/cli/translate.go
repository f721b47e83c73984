package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gohipify/internal/configloader"
	"github.com/yaklabco/gohipify/internal/logging"
	"github.com/yaklabco/gohipify/pkg/config"
	"github.com/yaklabco/gohipify/pkg/parser/cuparse"
	"github.com/yaklabco/gohipify/pkg/rename"
	"github.com/yaklabco/gohipify/pkg/reporter"
	"github.com/yaklabco/gohipify/pkg/runner"
	"github.com/yaklabco/gohipify/pkg/translate"
	_ "github.com/yaklabco/gohipify/pkg/translate/matchers" // Register built-in matchers
)

// ExitError carries a process exit code out of command execution.
type ExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ErrTranslateIssues is returned when the run finished but some edits were
// skipped or error diagnostics were reported.
var ErrTranslateIssues = &ExitError{Code: ExitTranslateIssues}

type translateFlags struct {
	format        string
	diff          bool
	stdin         bool
	ignore        []string
	enable        []string
	disable       []string
	strict        bool
	keepSuffix    bool
	detectContent bool
	noContext     bool
	compact       bool
	perFile       bool
	matcherFormat string
	summaryOrder  string
}

func newTranslateCommand() *cobra.Command {
	var cfg config.Config
	flags := &translateFlags{}

	cmd := &cobra.Command{
		Use:   "translate [paths...]",
		Short: "Translate CUDA sources to HIP",
		Long:  translateLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args, &cfg, flags)
		},
	}

	addTranslateFlags(cmd, &cfg, flags)

	return cmd
}

const translateLongDescription = `Translate CUDA kernel sources to their HIP equivalents.

By default, translates all .cu and .cuh files in the current directory
and subdirectories, writing each result to a sibling .hip file. Specify
paths to translate specific files or directories.

Examples:
  gohipify translate                     # Translate current directory
  gohipify translate kernels/            # Translate kernels directory
  gohipify translate vector_add.cu       # Translate single file
  gohipify translate --in-place          # Rewrite sources in place (with backup)
  gohipify translate --dry-run           # Show replacements without writing
  gohipify translate --diff              # Print a unified diff of the changes
  gohipify translate --format json       # Output as JSON for CI
  gohipify translate --stdin < kernel.cu # Translate stdin to stdout`

func runTranslate(cmd *cobra.Command, args []string, cfg *config.Config, flags *translateFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	// --diff is shorthand for --format diff.
	if flags.diff {
		flags.format = string(config.FormatDiff)
	}
	cfg.Format = config.OutputFormat(flags.format)
	cfg.MatcherFormat = config.MatcherFormat(flags.matcherFormat)
	cfg.Ignore = flags.ignore
	cfg.EnableMatchers = configloader.ExpandMatcherKeys(flags.enable)
	cfg.DisableMatchers = configloader.ExpandMatcherKeys(flags.disable)
	cfg.Strict = flags.strict
	cfg.KeepSuffix = flags.keepSuffix

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	// Get working directory for config discovery.
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	// Load and merge configuration.
	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(fmt.Errorf("failed to load configuration: %w", err),
			&ExitError{Code: ExitConfigError})
	}

	finalCfg := loadResult.Config

	// Log warnings from config loading.
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	// Log loaded configuration files.
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldInPlace, finalCfg.InPlace,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
		logging.FieldFormat, finalCfg.Format,
	)

	// Assemble the translation pipeline: parser, matcher registry, and the
	// built-in rename table.
	parser := cuparse.New()
	engine := translate.NewEngine(parser, translate.DefaultRegistry, rename.DefaultTable())
	pipeline := translate.NewPipeline(engine)

	if flags.stdin {
		return runTranslateStdin(ctx, cmd, pipeline, finalCfg)
	}

	translateRunner := runner.New(pipeline)

	runOpts := runner.Options{
		Paths:         args,
		WorkingDir:    workDir,
		Extensions:    runner.DefaultExtensions(),
		DetectContent: flags.detectContent,
		ExcludeGlobs:  finalCfg.Ignore,
		Jobs:          finalCfg.Jobs,
		Config:        finalCfg,
	}

	logger.Debug("starting translation run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := translateRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("translation run failed"), err)
	}

	// Get color mode from persistent flag.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto" // Default to auto if flag retrieval fails
	}

	// Parse output format.
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	// Create reporter.
	rep, err := reporter.New(reporter.Options{
		Writer:        cmd.OutOrStdout(),
		ErrorWriter:   cmd.ErrOrStderr(),
		Format:        format,
		Color:         colorMode,
		ShowContext:   !flags.noContext,
		ShowSummary:   true,
		GroupByFile:   true,
		Compact:       flags.compact,
		PerFile:       flags.perFile,
		MatcherFormat: config.MatcherFormat(flags.matcherFormat),
		SummaryOrder:  config.SummaryOrder(flags.summaryOrder),
		WorkingDir:    workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	// Report results.
	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", "error", err)
		return fmt.Errorf("report results: %w", err)
	}

	// Determine exit code based on result.
	exitCode := ExitCodeFromResult(result, finalCfg.Strict)
	if exitCode != ExitSuccess {
		return &ExitError{Code: exitCode}
	}

	return nil
}

// runTranslateStdin translates stdin to stdout. Diagnostics are logged to
// stderr so the translated source stays clean on stdout.
func runTranslateStdin(
	ctx context.Context,
	cmd *cobra.Command,
	pipeline *translate.Pipeline,
	cfg *config.Config,
) error {
	logger := logging.Default()

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.Warn("reading CUDA source from terminal; pipe a file or press Ctrl-D to end input")
	}

	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	opts := translate.PipelineOptionsFromConfig(cfg)
	result, err := pipeline.ProcessContent(ctx, "<stdin>", content, cfg, opts)
	if err != nil {
		return fmt.Errorf("translate stdin: %w", err)
	}

	output := content
	if result.Modified {
		output = result.ModifiedContent
	}
	if _, err := cmd.OutOrStdout().Write(output); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}

	if result.FileResult != nil {
		for _, diag := range result.FileResult.Diagnostics {
			logger.Debug("replacement",
				logging.FieldName, diag.MatcherName,
				"line", diag.StartLine,
				"old", diag.OldText,
				"new", diag.NewText,
			)
		}
		if len(result.FileResult.SkippedEdits) > 0 {
			logger.Warn("some replacements were skipped",
				"skipped", len(result.FileResult.SkippedEdits))
			return ErrTranslateIssues
		}
	}

	return nil
}

func addTranslateFlags(cmd *cobra.Command, cfg *config.Config, flags *translateFlags) {
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show replacements without writing files")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print a unified diff (shorthand for --format diff)")
	cmd.Flags().BoolVar(&cfg.InPlace, "in-place", false, "rewrite source files instead of writing .hip siblings")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation for in-place rewrites")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "matcher IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "matcher IDs to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.keepSuffix, "keep-suffix", false, "keep the .hip.cu working suffix instead of renaming to .hip")
	cmd.Flags().BoolVar(&flags.stdin, "stdin", false, "translate stdin to stdout")
	cmd.Flags().BoolVar(&flags.detectContent, "detect-content", false,
		"also translate C/C++ files whose content carries CUDA markers")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.perFile, "per-file", false, "output separate report for each file (table format)")
	cmd.Flags().StringVar(&flags.matcherFormat, "matcher-format", "name",
		"matcher identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.summaryOrder, "summary-order", "matchers",
		"order of tables in summary output: matchers, files")
}
