package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohipify/pkg/config"
	"github.com/yaklabco/gohipify/pkg/edit"
	"github.com/yaklabco/gohipify/pkg/runner"
	"github.com/yaklabco/gohipify/pkg/translate"
)

func TestAnalyze_EmptyResult(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{},
	}

	report := Analyze(result, DefaultOptions())

	require.NotNil(t, report)
	assert.Equal(t, 0, report.Totals.Replacements)
	assert.Empty(t, report.Diagnostics)
	assert.Empty(t, report.ByFile)
	assert.Empty(t, report.ByMatcher)
}

func TestAnalyze_CountsTotals(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "kernel1.cu",
				Result: &translate.PipelineResult{
					FileResult: &translate.FileResult{
						Diagnostics: []translate.Diagnostic{
							{MatcherID: "CH001", MatcherName: "cuda-api-call", Severity: config.SeverityError},
							{MatcherID: "CH001", MatcherName: "cuda-api-call", Severity: config.SeverityError},
							{MatcherID: "CH010", MatcherName: "cuda-include-directive", Severity: config.SeverityWarning},
						},
					},
					Modified: true,
					Written:  true,
				},
			},
			{
				Path: "kernel2.cu",
				Result: &translate.PipelineResult{
					FileResult: &translate.FileResult{
						Diagnostics: []translate.Diagnostic{
							{MatcherID: "CH010", MatcherName: "cuda-include-directive", Severity: config.SeverityWarning},
						},
					},
					Modified: true,
				},
			},
		},
	}

	report := Analyze(result, DefaultOptions())

	assert.Equal(t, 4, report.Totals.Replacements)
	assert.Equal(t, 2, report.Totals.Errors)
	assert.Equal(t, 2, report.Totals.Warnings)
	assert.Equal(t, 2, report.Totals.Files)
	assert.Equal(t, 2, report.Totals.FilesWithReplacements)
	assert.Equal(t, 2, report.Totals.FilesChanged)
	assert.Equal(t, 1, report.Totals.FilesWritten)
}

func TestAnalyze_GroupsByMatcher(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "kernel1.cu",
				Result: &translate.PipelineResult{
					FileResult: &translate.FileResult{
						Diagnostics: []translate.Diagnostic{
							{MatcherID: "CH008", MatcherName: "cuda-kernel-launch", Severity: config.SeverityError},
							{MatcherID: "CH001", MatcherName: "cuda-api-call", Severity: config.SeverityWarning, Edits: []edit.TextEdit{{}}},
						},
					},
				},
			},
			{
				Path: "kernel2.cu",
				Result: &translate.PipelineResult{
					FileResult: &translate.FileResult{
						Diagnostics: []translate.Diagnostic{
							{MatcherID: "CH001", MatcherName: "cuda-api-call", Severity: config.SeverityWarning, Edits: []edit.TextEdit{{}}},
						},
					},
				},
			},
		},
	}

	report := Analyze(result, DefaultOptions())

	require.Len(t, report.ByMatcher, 2)

	// Sorted by count descending, CH001 has 2, CH008 has 1
	assert.Equal(t, "CH001", report.ByMatcher[0].MatcherID)
	assert.Equal(t, 2, report.ByMatcher[0].Replacements)
	assert.True(t, report.ByMatcher[0].Rewrites)
	assert.ElementsMatch(t, []string{"kernel1.cu", "kernel2.cu"}, report.ByMatcher[0].Files)

	assert.Equal(t, "CH008", report.ByMatcher[1].MatcherID)
	assert.Equal(t, 1, report.ByMatcher[1].Replacements)
	assert.False(t, report.ByMatcher[1].Rewrites)
}

func TestAnalyze_GroupsByFile(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "a.cu",
				Result: &translate.PipelineResult{
					FileResult: &translate.FileResult{
						Diagnostics: []translate.Diagnostic{
							{MatcherID: "CH001", Severity: config.SeverityError},
						},
					},
				},
			},
			{
				Path: "b.cu",
				Result: &translate.PipelineResult{
					FileResult: &translate.FileResult{
						Diagnostics: []translate.Diagnostic{
							{MatcherID: "CH001", Severity: config.SeverityError},
							{MatcherID: "CH003", Severity: config.SeverityWarning},
							{MatcherID: "CH010", Severity: config.SeverityWarning},
						},
					},
				},
			},
		},
	}

	report := Analyze(result, DefaultOptions())

	require.Len(t, report.ByFile, 2)

	// Sorted by count descending, b.cu has 3, a.cu has 1
	assert.Equal(t, "b.cu", report.ByFile[0].Path)
	assert.Equal(t, 3, report.ByFile[0].Replacements)
	assert.Equal(t, 1, report.ByFile[0].Errors)
	assert.Equal(t, 2, report.ByFile[0].Warnings)

	assert.Equal(t, "a.cu", report.ByFile[1].Path)
	assert.Equal(t, 1, report.ByFile[1].Replacements)
}

func TestAnalyze_SortByAlpha(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "z.cu",
				Result: &translate.PipelineResult{
					FileResult: &translate.FileResult{
						Diagnostics: []translate.Diagnostic{{MatcherID: "CH001"}},
					},
				},
			},
			{
				Path: "a.cu",
				Result: &translate.PipelineResult{
					FileResult: &translate.FileResult{
						Diagnostics: []translate.Diagnostic{{MatcherID: "CH001"}, {MatcherID: "CH001"}},
					},
				},
			},
		},
	}

	opts := DefaultOptions()
	opts.SortBy = SortByAlpha

	report := Analyze(result, opts)

	require.Len(t, report.ByFile, 2)
	assert.Equal(t, "a.cu", report.ByFile[0].Path)
	assert.Equal(t, "z.cu", report.ByFile[1].Path)
}

func TestAnalyze_SkippedEdits(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "file.cu",
				Result: &translate.PipelineResult{
					FileResult: &translate.FileResult{
						Diagnostics: []translate.Diagnostic{{MatcherID: "CH001"}},
						SkippedEdits: []edit.SkippedEdit{
							{Reason: edit.ReasonConflict},
						},
					},
				},
			},
		},
	}

	report := Analyze(result, DefaultOptions())

	assert.Equal(t, 1, report.Totals.Skipped)
	assert.False(t, report.Totals.Clean())
}

func TestAnalyze_ExcludeViews(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "file.cu",
				Result: &translate.PipelineResult{
					FileResult: &translate.FileResult{
						Diagnostics: []translate.Diagnostic{{MatcherID: "CH001"}},
					},
				},
			},
		},
	}

	opts := Options{
		IncludeDiagnostics: false,
		IncludeByFile:      false,
		IncludeByMatcher:   true,
		SortBy:             SortByCount,
		SortDesc:           true,
	}

	report := Analyze(result, opts)

	assert.Empty(t, report.Diagnostics, "diagnostics should be excluded")
	assert.Empty(t, report.ByFile, "byFile should be excluded")
	assert.NotEmpty(t, report.ByMatcher, "byMatcher should be included")
	assert.Equal(t, 1, report.Totals.Replacements, "totals always computed")
}
