package runner

import "github.com/yaklabco/gohipify/pkg/translate"

// FileOutcome wraps PipelineResult with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file.
	// May be nil if the file encountered an error during processing.
	Result *translate.PipelineResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesSkipped is the number of files skipped (e.g., due to concurrent modification).
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// ReplacementsTotal is the total number of replacements reported
	// across all files.
	ReplacementsTotal int

	// ReplacementsApplied is the number of edits that survived conflict
	// resolution and were applied.
	ReplacementsApplied int

	// ReplacementsSkipped is the number of edits dropped due to overlap
	// or invalid spans.
	ReplacementsSkipped int

	// DiagnosticsBySeverity maps severity levels to counts.
	DiagnosticsBySeverity map[string]int

	// FilesWithReplacements is the number of files with at least one
	// reported replacement.
	FilesWithReplacements int

	// FilesChanged is the number of files whose translated content
	// differs from the source.
	FilesChanged int

	// FilesWritten is the number of files persisted to disk.
	FilesWritten int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasFailures reports whether any diagnostics with error severity occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsBySeverity["error"] > 0
}

// HasReplacements reports whether any replacements were found.
func (r *Result) HasReplacements() bool {
	if r == nil {
		return false
	}
	return r.Stats.ReplacementsTotal > 0
}

// Clean reports whether every proposed edit was applied.
func (r *Result) Clean() bool {
	if r == nil {
		return true
	}
	return r.Stats.ReplacementsSkipped == 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		DiagnosticsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Result.Skipped {
		r.Stats.FilesSkipped++
	}

	if outcome.Result.Modified {
		r.Stats.FilesChanged++
	}

	if outcome.Result.Written {
		r.Stats.FilesWritten++
	}

	if outcome.Result.FileResult != nil {
		fr := outcome.Result.FileResult
		r.Stats.ReplacementsTotal += fr.ReplacementCount()
		if fr.ReplacementCount() > 0 {
			r.Stats.FilesWithReplacements++
		}
		r.Stats.ReplacementsApplied += len(fr.Edits)
		r.Stats.ReplacementsSkipped += len(fr.SkippedEdits)

		for _, diag := range fr.Diagnostics {
			severity := string(diag.Severity)
			if severity == "" {
				severity = "warning"
			}
			r.Stats.DiagnosticsBySeverity[severity]++
		}
	}
}
