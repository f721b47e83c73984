// Package analysis transforms raw translation results into renderable reports.
package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/gohipify/pkg/runner"
	"github.com/yaklabco/gohipify/pkg/translate"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// Severity string constants for internal use.
const (
	severityError   = "error"
	severityWarning = "warning"
	severityInfo    = "info"
)

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	matcherMap   map[string]*MatcherAnalysis
	fileMap      map[string]*FileAnalysis
	matcherFiles map[string]map[string]bool
	fileMatchers map[string]map[string]bool
}

// newAnalysisContext creates a new analysis context.
func newAnalysisContext() *analysisContext {
	return &analysisContext{
		matcherMap:   make(map[string]*MatcherAnalysis),
		fileMap:      make(map[string]*FileAnalysis),
		matcherFiles: make(map[string]map[string]bool),
		fileMatchers: make(map[string]map[string]bool),
	}
}

// normalizeSeverity returns the severity string, defaulting to warning.
func normalizeSeverity(sev string) string {
	if sev == "" {
		return severityWarning
	}
	return sev
}

// incrementSeverityCounts updates counts based on severity.
func incrementSeverityCounts(severity string, totals *Totals, fa *FileAnalysis) {
	switch severity {
	case severityError:
		totals.Errors++
		fa.Errors++
	case severityWarning:
		totals.Warnings++
		fa.Warnings++
	case severityInfo:
		totals.Infos++
		fa.Infos++
	}
}

// incrementMatcherSeverity updates matcher analysis severity counts.
func incrementMatcherSeverity(severity string, ma *MatcherAnalysis) {
	switch severity {
	case severityError:
		ma.Errors++
	case severityWarning:
		ma.Warnings++
	case severityInfo:
		ma.Infos++
	}
}

// getOrCreateFileAnalysis returns existing or creates new FileAnalysis.
func (ctx *analysisContext) getOrCreateFileAnalysis(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileMatchers[path] = make(map[string]bool)
	}
	return ctx.fileMap[path]
}

// getOrCreateMatcherAnalysis returns existing or creates new MatcherAnalysis.
func (ctx *analysisContext) getOrCreateMatcherAnalysis(matcherID, matcherName string) *MatcherAnalysis {
	if _, ok := ctx.matcherMap[matcherID]; !ok {
		ctx.matcherMap[matcherID] = &MatcherAnalysis{
			MatcherID:   matcherID,
			MatcherName: matcherName,
		}
		ctx.matcherFiles[matcherID] = make(map[string]bool)
	}
	return ctx.matcherMap[matcherID]
}

// createDiagnosticEntry builds a DiagnosticEntry from a translation diagnostic.
func createDiagnosticEntry(path, severity string, diag *translate.Diagnostic) DiagnosticEntry {
	entry := DiagnosticEntry{
		FilePath:    path,
		MatcherID:   diag.MatcherID,
		MatcherName: diag.MatcherName,
		Severity:    severity,
		Message:     diag.Message,
		StartLine:   diag.StartLine,
		StartColumn: diag.StartColumn,
		EndLine:     diag.EndLine,
		EndColumn:   diag.EndColumn,
		OldText:     diag.OldText,
		NewText:     diag.NewText,
		Rewritten:   len(diag.Edits) > 0,
	}
	for _, edit := range diag.Edits {
		entry.Edits = append(entry.Edits, EditEntry{
			StartOffset: edit.StartOffset,
			EndOffset:   edit.EndOffset,
			NewText:     edit.NewText,
		})
	}
	return entry
}

// buildByMatcher constructs the ByMatcher slice from accumulated data.
func (ctx *analysisContext) buildByMatcher(opts Options) []MatcherAnalysis {
	result := make([]MatcherAnalysis, 0, len(ctx.matcherMap))
	for matcherID, ma := range ctx.matcherMap {
		for f := range ctx.matcherFiles[matcherID] {
			ma.Files = append(ma.Files, f)
		}
		slices.Sort(ma.Files)
		result = append(result, *ma)
	}
	sortMatcherAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// buildByFile constructs the ByFile slice from accumulated data.
func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	var result []FileAnalysis
	for path, fa := range ctx.fileMap {
		if fa.Replacements == 0 {
			continue
		}
		for m := range ctx.fileMatchers[path] {
			fa.Matchers = append(fa.Matchers, m)
		}
		slices.Sort(fa.Matchers)
		result = append(result, *fa)
	}
	sortFileAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through diagnostics to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		report.Totals.Files++
		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}
		if len(file.Result.Diagnostics) > 0 {
			report.Totals.FilesWithReplacements++
		}
		if file.Result.Modified {
			report.Totals.FilesChanged++
		}
		if file.Result.Written {
			report.Totals.FilesWritten++
		}
		report.Totals.Skipped += len(file.Result.SkippedEdits)

		displayPath := makeRelativePath(file.Path, opts.WorkingDir)
		fa := ctx.getOrCreateFileAnalysis(displayPath)

		for _, diag := range file.Result.Diagnostics {
			report.Totals.Replacements++
			severity := normalizeSeverity(string(diag.Severity))
			rewritten := len(diag.Edits) > 0

			incrementSeverityCounts(severity, &report.Totals, fa)
			if rewritten {
				report.Totals.Rewritten++
			}

			fa.Replacements++
			ctx.fileMatchers[displayPath][diag.MatcherID] = true

			ma := ctx.getOrCreateMatcherAnalysis(diag.MatcherID, diag.MatcherName)
			ma.Replacements++
			incrementMatcherSeverity(severity, ma)
			if rewritten {
				ma.Rewrites = true
			}
			ctx.matcherFiles[diag.MatcherID][displayPath] = true

			if opts.IncludeDiagnostics {
				report.Diagnostics = append(report.Diagnostics, createDiagnosticEntry(displayPath, severity, &diag))
			}
		}
	}

	if opts.IncludeByMatcher {
		report.ByMatcher = ctx.buildByMatcher(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}

	return report
}

func sortMatcherAnalysis(matchers []MatcherAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(matchers, func(left, right MatcherAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.MatcherID, right.MatcherID)
		case SortBySeverity:
			// Errors first, then warnings, then infos (always descending by severity)
			result := cmp.Compare(right.Errors, left.Errors)
			if result == 0 {
				result = cmp.Compare(right.Warnings, left.Warnings)
			}
			if result == 0 {
				result = cmp.Compare(right.Replacements, left.Replacements)
			}
			return result
		default: // SortByCount
			result := cmp.Compare(left.Replacements, right.Replacements)
			if desc {
				result = -result
			}
			return result
		}
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.Path, right.Path)
		case SortBySeverity:
			// Errors first, then warnings, then infos (always descending by severity)
			result := cmp.Compare(right.Errors, left.Errors)
			if result == 0 {
				result = cmp.Compare(right.Warnings, left.Warnings)
			}
			if result == 0 {
				result = cmp.Compare(right.Replacements, left.Replacements)
			}
			return result
		default: // SortByCount
			result := cmp.Compare(left.Replacements, right.Replacements)
			if desc {
				result = -result
			}
			return result
		}
	})
}
