// Package translate provides the matcher engine, diagnostics, and registry for gohipify.
package translate

import (
	"github.com/yaklabco/gohipify/pkg/config"
	"github.com/yaklabco/gohipify/pkg/cuast"
	"github.com/yaklabco/gohipify/pkg/edit"
	"github.com/yaklabco/gohipify/pkg/rename"
)

// Diagnostic represents a single replacement (or skipped replacement)
// found in a file.
type Diagnostic struct {
	// MatcherID is the identifier of the matcher that produced this diagnostic.
	MatcherID string

	// MatcherName is the human-readable name of the matcher (e.g., "cuda-api-call").
	MatcherName string

	// Message is the human-readable description of the replacement.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file containing the match.
	FilePath string

	// StartLine is the 1-based line number where the match starts.
	StartLine int

	// StartColumn is the 1-based column number where the match starts.
	StartColumn int

	// EndLine is the 1-based line number where the match ends.
	EndLine int

	// EndColumn is the 1-based column number where the match ends.
	EndColumn int

	// OldText is the matched source text.
	OldText string

	// NewText is the replacement text. Empty when the matcher could not
	// produce a rewrite (the diagnostic then only reports the match).
	NewText string

	// Edits contains the text edits for this replacement (may be empty).
	Edits []edit.TextEdit
}

// HasEdits returns true if this diagnostic carries replacement edits.
func (d *Diagnostic) HasEdits() bool {
	return len(d.Edits) > 0
}

// SourcePosition returns the diagnostic position as a SourcePosition.
func (d *Diagnostic) SourcePosition() cuast.SourcePosition {
	return cuast.SourcePosition{
		StartLine:   d.StartLine,
		StartColumn: d.StartColumn,
		EndLine:     d.EndLine,
		EndColumn:   d.EndColumn,
	}
}

// Matcher defines the interface that all translation matchers must implement.
type Matcher interface {
	// ID returns the unique identifier for this matcher (e.g., "CH001").
	ID() string

	// Name returns the human-readable name of the matcher.
	Name() string

	// Description returns a detailed description of what the matcher rewrites.
	Description() string

	// DefaultEnabled returns whether the matcher is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this matcher.
	DefaultSeverity() config.Severity

	// Categories returns the rename-table categories this matcher draws on.
	// Empty for structural matchers that do not consult the table.
	Categories() []rename.Category

	// Apply executes the matcher against the given context and returns diagnostics.
	//
	// Matchers must:
	//   - Return one diagnostic per replacement proposed.
	//   - Record the replacement edits on both the diagnostic and ctx.Builder.
	//   - Respect context cancellation.
	//   - Return error only for internal failures, not for unmatched input.
	Apply(ctx *MatchContext) ([]Diagnostic, error)
}
