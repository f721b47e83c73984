package translate

import (
	"github.com/yaklabco/gohipify/pkg/config"
	"github.com/yaklabco/gohipify/pkg/cuast"
	"github.com/yaklabco/gohipify/pkg/edit"
)

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnostic starts building a diagnostic for the given matcher and node.
func NewDiagnostic(matcherID string, node *cuast.Node, message string) *DiagnosticBuilder {
	var filePath string
	var pos cuast.SourcePosition

	if node != nil {
		pos = node.SourcePosition()
		if node.File != nil {
			filePath = node.File.Path
		}
	}

	return &DiagnosticBuilder{
		diag: Diagnostic{
			MatcherID:   matcherID,
			Message:     message,
			FilePath:    filePath,
			StartLine:   pos.StartLine,
			StartColumn: pos.StartColumn,
			EndLine:     pos.EndLine,
			EndColumn:   pos.EndColumn,
		},
	}
}

// NewDiagnosticAt starts building a diagnostic at a specific source range.
func NewDiagnosticAt(
	matcherID string,
	file *cuast.FileSnapshot,
	r cuast.SourceRange,
	message string,
) *DiagnosticBuilder {
	var filePath string
	var pos cuast.SourcePosition

	if file != nil {
		filePath = file.Path
		startLine, startCol := file.LineAt(r.StartOffset)
		endLine, endCol := file.LineAt(r.EndOffset)
		pos = cuast.SourcePosition{
			StartLine:   startLine,
			StartColumn: startCol,
			EndLine:     endLine,
			EndColumn:   endCol,
		}
	}

	return &DiagnosticBuilder{
		diag: Diagnostic{
			MatcherID:   matcherID,
			Message:     message,
			FilePath:    filePath,
			StartLine:   pos.StartLine,
			StartColumn: pos.StartColumn,
			EndLine:     pos.EndLine,
			EndColumn:   pos.EndColumn,
		},
	}
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// WithName sets the matcher name for human-readable output.
func (b *DiagnosticBuilder) WithName(name string) *DiagnosticBuilder {
	b.diag.MatcherName = name
	return b
}

// WithReplacement records the matched text and its replacement.
func (b *DiagnosticBuilder) WithReplacement(oldText, newText string) *DiagnosticBuilder {
	b.diag.OldText = oldText
	b.diag.NewText = newText
	return b
}

// WithEdit adds a single replacement edit.
func (b *DiagnosticBuilder) WithEdit(e edit.TextEdit) *DiagnosticBuilder {
	b.diag.Edits = append(b.diag.Edits, e)
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
