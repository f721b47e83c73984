package translate

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/gohipify/pkg/config"
	"github.com/yaklabco/gohipify/pkg/edit"
	"github.com/yaklabco/gohipify/pkg/fsutil"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrParseFailure indicates a parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")

	// ErrEditsSkipped indicates some replacements could not be applied.
	ErrEditsSkipped = errors.New("some replacements were skipped")
)

// PipelineResult contains the result of processing a single file through
// the translation pipeline.
type PipelineResult struct {
	// FileResult contains translation diagnostics and edits.
	*FileResult

	// Path is the source file path that was processed.
	Path string

	// OutputPath is the path the translated content was (or would be)
	// written to. Equal to Path for in-place rewrites.
	OutputPath string

	// OriginalInfo is the file state before processing.
	OriginalInfo *fsutil.FileInfo

	// Modified is true if the translated content differs from the source.
	Modified bool

	// ModifiedContent is the translated content (nil if not modified).
	ModifiedContent []byte

	// Diff is the unified diff for dry-run and diff output (nil otherwise).
	Diff *edit.Diff

	// Skipped is true if the file was skipped (e.g., due to concurrent
	// modification).
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if output was written to disk.
	Written bool
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.Written && pr.FileResult != nil && !pr.Clean():
		return "translated (some replacements skipped)"
	case pr.Written && pr.BackupCreated:
		return "translated (backup created)"
	case pr.Written:
		return "translated"
	case pr.Modified:
		return "changes pending"
	default:
		return "no changes"
	}
}

// PipelineOptions controls translation pipeline behavior.
type PipelineOptions struct {
	// DryRun generates diffs without writing files.
	DryRun bool

	// InPlace rewrites the source file instead of writing a sibling.
	InPlace bool

	// KeepSuffix leaves the output at the .hip.cu working name instead of
	// renaming it to .hip.
	KeepSuffix bool

	// Backup configures backup behavior for in-place rewrites.
	Backup fsutil.BackupConfig

	// StrictRaceDetection uses hash comparison for modification detection.
	// When false, only mod time and size are checked.
	StrictRaceDetection bool

	// WithDiff generates a unified diff even outside dry-run mode.
	WithDiff bool
}

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		DryRun:              false,
		InPlace:             false,
		KeepSuffix:          false,
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
	}
}

// PipelineOptionsFromConfig creates PipelineOptions from config.Config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		return DefaultPipelineOptions()
	}
	return PipelineOptions{
		DryRun:     cfg.DryRun,
		InPlace:    cfg.InPlace,
		KeepSuffix: cfg.KeepSuffix,
		Backup: fsutil.BackupConfig{
			Enabled: cfg.Backups.Enabled && !cfg.NoBackups && cfg.InPlace,
			Mode:    fsutil.BackupMode(cfg.Backups.Mode),
		},
		StrictRaceDetection: true,
		WithDiff:            cfg.Format == config.FormatDiff,
	}
}

// Pipeline orchestrates the safe processing of a single file.
type Pipeline struct {
	// Engine is the translation engine used for parsing and matcher execution.
	Engine *Engine
}

// NewPipeline creates a new translation pipeline with the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile runs the full pipeline for a single file.
//
// The pipeline performs the following steps:
//  1. Read and hash the source file.
//  2. Run the translation engine (both compilation views).
//  3. Apply the accepted edits in memory.
//  4. Generate a diff (dry-run or diff output).
//  5. Check for concurrent modifications.
//  6. Persist: in-place mode backs up and rewrites the source
//     atomically; sibling mode writes the .hip.cu working file and
//     renames it to the final .hip name.
//
// Skipped edits do not abort the run; the remaining edits are still
// applied and the skips are reported on the result.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result := &PipelineResult{
		Path: path,
	}

	// Step 1: Read and hash the source file.
	originalContent, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}
	result.OriginalInfo = info

	// Step 2: Run the translation engine.
	fileResult, err := p.Engine.TranslateFile(ctx, path, originalContent, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}
	result.FileResult = fileResult

	// Step 3: Apply the accepted edits in memory.
	applied := edit.ApplyAll(originalContent, fileResult.Edits)
	content := applied.Output
	result.Modified = applied.Changed()
	result.OutputPath = p.outputPath(path, opts)

	if !result.Modified {
		return result, nil
	}
	result.ModifiedContent = content

	// Step 4: Generate diff for dry-run and diff output.
	if opts.DryRun || opts.WithDiff {
		result.Diff = edit.GenerateDiff(path, originalContent, content)
	}
	if opts.DryRun {
		return result, nil
	}

	// Step 5: Check for concurrent modifications before writing.
	modified, err := p.checkModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	// Step 6: Persist.
	if opts.InPlace {
		if opts.Backup.Enabled {
			created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
			if err != nil {
				return nil, fmt.Errorf("create backup: %w", err)
			}
			result.BackupCreated = created
		}
		if err := fsutil.WriteAtomic(ctx, path, content, info.Mode); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
		}
		result.Written = true
		return result, nil
	}

	// Sibling mode: write the working file first, then move it to its
	// final name. The two-step sequence means a crash leaves either
	// nothing or a valid working file, never a truncated .hip.
	working := fsutil.WorkingPath(path)
	if err := fsutil.WriteAtomic(ctx, working, content, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	if result.OutputPath != working {
		if err := os.Rename(working, result.OutputPath); err != nil {
			return nil, fmt.Errorf("%w: rename working file: %w", ErrWriteFailure, err)
		}
	}
	result.Written = true

	return result, nil
}

// ProcessContent processes in-memory content without file I/O.
// This is used for stdin input and testing.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	path string,
	originalContent []byte,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result := &PipelineResult{
		Path:       path,
		OutputPath: p.outputPath(path, opts),
	}

	fileResult, err := p.Engine.TranslateFile(ctx, path, originalContent, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}
	result.FileResult = fileResult

	applied := edit.ApplyAll(originalContent, fileResult.Edits)
	result.Modified = applied.Changed()
	if result.Modified {
		result.ModifiedContent = applied.Output
	}

	if (opts.DryRun || opts.WithDiff) && result.Modified {
		result.Diff = edit.GenerateDiff(path, originalContent, applied.Output)
	}

	return result, nil
}

// outputPath resolves where the translated content for path lands.
func (p *Pipeline) outputPath(path string, opts PipelineOptions) string {
	if opts.InPlace {
		return path
	}
	if opts.KeepSuffix {
		return fsutil.WorkingPath(path)
	}
	return fsutil.FinalPath(path)
}

// checkModified checks if a file has been modified since it was read.
func (p *Pipeline) checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	var modified bool
	var err error

	if strict {
		modified, err = fsutil.CheckModified(ctx, info)
	} else {
		modified, err = fsutil.CheckModifiedQuick(ctx, info)
	}

	if err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}
	return modified, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
// It uses errors.Is for robust error detection rather than string matching.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	// Check for file not found errors.
	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	// Check for permission errors.
	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrParseFailure) ||
		errors.Is(err, ErrWriteFailure) ||
		errors.Is(err, ErrEditsSkipped)
}
