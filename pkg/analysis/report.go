package analysis

import "time"

// Report contains pre-computed views of translation results.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Diagnostics is the flat list for detailed output.
	Diagnostics []DiagnosticEntry `json:"diagnostics,omitempty"`

	// ByFile groups diagnostics by file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByMatcher groups diagnostics by matcher.
	ByMatcher []MatcherAnalysis `json:"byMatcher,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// DiagnosticEntry represents a single replacement in the report.
type DiagnosticEntry struct {
	FilePath    string      `json:"filePath"`
	MatcherID   string      `json:"matcherId"`
	MatcherName string      `json:"matcherName"`
	Severity    string      `json:"severity"`
	Message     string      `json:"message"`
	StartLine   int         `json:"startLine"`
	StartColumn int         `json:"startColumn"`
	EndLine     int         `json:"endLine"`
	EndColumn   int         `json:"endColumn"`
	OldText     string      `json:"oldText,omitempty"`
	NewText     string      `json:"newText,omitempty"`
	Rewritten   bool        `json:"rewritten"`
	Edits       []EditEntry `json:"edits,omitempty"`
}

// EditEntry represents a text edit backing a replacement.
type EditEntry struct {
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	NewText     string `json:"newText"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files                 int `json:"filesProcessed"`
	FilesWithReplacements int `json:"filesWithReplacements"`
	FilesChanged          int `json:"filesChanged"`
	FilesWritten          int `json:"filesWritten"`
	Replacements          int `json:"totalReplacements"`
	Errors                int `json:"errors"`
	Warnings              int `json:"warnings"`
	Infos                 int `json:"infos"`
	Rewritten             int `json:"rewritten"`
	Skipped               int `json:"skippedEdits"`
}

// HasReplacements returns true if any replacements were found.
func (t Totals) HasReplacements() bool {
	return t.Replacements > 0
}

// HasErrors returns true if there are any error-severity diagnostics.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// Clean returns true if no proposed edit was skipped.
func (t Totals) Clean() bool {
	return t.Skipped == 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path         string   `json:"path"`
	Replacements int      `json:"replacements"`
	Errors       int      `json:"errors"`
	Warnings     int      `json:"warnings"`
	Infos        int      `json:"infos"`
	Matchers     []string `json:"matchers,omitempty"`
}

// MatcherAnalysis contains aggregated data for a single matcher.
type MatcherAnalysis struct {
	MatcherID    string   `json:"matcherId"`
	MatcherName  string   `json:"matcherName"`
	Replacements int      `json:"replacements"`
	Errors       int      `json:"errors"`
	Warnings     int      `json:"warnings"`
	Infos        int      `json:"infos"`
	Rewrites     bool     `json:"rewrites"`
	Files        []string `json:"files,omitempty"`
}
