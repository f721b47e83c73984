package matchers

import (
	"github.com/yaklabco/gohipify/pkg/cuast"
	"github.com/yaklabco/gohipify/pkg/rename"
	"github.com/yaklabco/gohipify/pkg/translate"
)

// BuiltinIndexMatcher rewrites the thread-indexing builtins. Member
// accesses like threadIdx.x become the HIP spelling hipThreadIdx_x, and
// the bare warpSize identifier becomes hipWarpSize.
type BuiltinIndexMatcher struct {
	translate.BaseMatcher
}

// NewBuiltinIndexMatcher creates a new builtin index matcher.
func NewBuiltinIndexMatcher() *BuiltinIndexMatcher {
	return &BuiltinIndexMatcher{
		BaseMatcher: translate.NewBaseMatcher(
			"CH002",
			"cuda-builtin-index",
			"Thread-indexing builtins should use the HIP spellings",
			[]rename.Category{rename.CategoryBuiltinField},
		),
	}
}

// Apply rewrites builtin member expressions and bare builtin identifiers.
// The rename table keys member builtins by their full spelling
// ("threadIdx.x"), so the whole member expression is replaced in one edit.
func (m *BuiltinIndexMatcher) Apply(ctx *translate.MatchContext) ([]translate.Diagnostic, error) {
	if ctx.File == nil || ctx.Root == nil {
		return nil, nil
	}

	var diags []translate.Diagnostic

	for _, member := range cuast.FindByKind(ctx.Root, cuast.NodeMemberExpr) {
		if ctx.Cancelled() {
			return diags, cancelled(ctx)
		}
		if member.Expr == nil {
			continue
		}

		spelling := member.Expr.Base + "." + member.Expr.Field
		entry, ok := ctx.Table.LookupIn(spelling, rename.CategoryBuiltinField)
		if !ok {
			continue
		}

		// Replace base through field so stray whitespace around the dot
		// collapses into the single HIP identifier.
		r := cuast.SourceRange{
			StartOffset: member.Expr.BaseRange.StartOffset,
			EndOffset:   member.Expr.FieldRange.EndOffset,
		}
		diags = append(diags, renameAt(ctx, m.ID(), r, entry))
	}

	for _, ref := range cuast.FindByKind(ctx.Root, cuast.NodeIdentRef) {
		if ctx.Cancelled() {
			return diags, cancelled(ctx)
		}
		if ref.Expr == nil {
			continue
		}

		entry, ok := ctx.Table.LookupIn(ref.Expr.Name, rename.CategoryBuiltinField)
		if !ok {
			continue
		}

		diags = append(diags, renameAt(ctx, m.ID(), ref.SourceRange(), entry))
	}

	return diags, nil
}
