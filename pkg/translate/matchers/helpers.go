// Package matchers contains the built-in translation matchers.
package matchers

import (
	"fmt"

	"github.com/yaklabco/gohipify/pkg/cuast"
	"github.com/yaklabco/gohipify/pkg/edit"
	"github.com/yaklabco/gohipify/pkg/rename"
	"github.com/yaklabco/gohipify/pkg/translate"
)

// enumTypeNames lists the rename-table types that are enums rather than
// structs or opaque handles. The declaration matchers split on this so
// enum-typed and struct-typed variables report under their own IDs.
var enumTypeNames = map[string]bool{
	"cudaError_t":         true,
	"cudaError":           true,
	"cudaMemcpyKind":      true,
	"cudaFuncCache":       true,
	"cudaSharedMemConfig": true,
}

// renameAt records a replacement of r with entry.New and returns the
// matching diagnostic. The edit lands on ctx.Builder; the diagnostic
// carries a copy for reporting.
func renameAt(ctx *translate.MatchContext, matcherID string, r cuast.SourceRange, entry rename.Entry) translate.Diagnostic {
	oldText := ctx.Snippet(r)
	ctx.Builder.ReplaceRange(r.StartOffset, r.EndOffset, entry.New)

	return translate.NewDiagnosticAt(matcherID, ctx.File, r,
		fmt.Sprintf("%s -> %s", entry.Old, entry.New)).
		WithReplacement(oldText, entry.New).
		WithEdit(edit.TextEdit{
			StartOffset: r.StartOffset,
			EndOffset:   r.EndOffset,
			NewText:     entry.New,
		}).
		Build()
}

// replaceAt records a free-form replacement of r with newText.
func replaceAt(ctx *translate.MatchContext, matcherID string, r cuast.SourceRange, newText, message string) translate.Diagnostic {
	oldText := ctx.Snippet(r)
	ctx.Builder.ReplaceRange(r.StartOffset, r.EndOffset, newText)

	return translate.NewDiagnosticAt(matcherID, ctx.File, r, message).
		WithReplacement(oldText, newText).
		WithEdit(edit.TextEdit{
			StartOffset: r.StartOffset,
			EndOffset:   r.EndOffset,
			NewText:     newText,
		}).
		Build()
}

// skipAt records a diagnostic for a match that could not be rewritten.
// No edit is produced.
func skipAt(ctx *translate.MatchContext, matcherID string, r cuast.SourceRange, message string) translate.Diagnostic {
	return translate.NewDiagnosticAt(matcherID, ctx.File, r, message).
		WithReplacement(ctx.Snippet(r), "").
		Build()
}

// cancelled wraps the context error for a matcher that stopped early.
func cancelled(ctx *translate.MatchContext) error {
	return fmt.Errorf("matcher cancelled: %w", ctx.Ctx.Err())
}
