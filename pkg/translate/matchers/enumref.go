package matchers

import (
	"github.com/yaklabco/gohipify/pkg/cuast"
	"github.com/yaklabco/gohipify/pkg/rename"
	"github.com/yaklabco/gohipify/pkg/translate"
)

// EnumRefMatcher rewrites references to CUDA error codes and enum
// constants (cudaSuccess -> hipSuccess, cudaMemcpyHostToDevice ->
// hipMemcpyHostToDevice).
type EnumRefMatcher struct {
	translate.BaseMatcher
}

// NewEnumRefMatcher creates a new enum reference matcher.
func NewEnumRefMatcher() *EnumRefMatcher {
	return &EnumRefMatcher{
		BaseMatcher: translate.NewBaseMatcher(
			"CH003",
			"cuda-enum-ref",
			"CUDA error codes and enum constants should use the HIP names",
			[]rename.Category{rename.CategoryErrorCode, rename.CategoryEnumConstant},
		),
	}
}

// Apply rewrites every identifier reference found in the error-code or
// enum-constant categories of the rename table.
func (m *EnumRefMatcher) Apply(ctx *translate.MatchContext) ([]translate.Diagnostic, error) {
	if ctx.File == nil || ctx.Root == nil {
		return nil, nil
	}

	refs := cuast.FindByKind(ctx.Root, cuast.NodeIdentRef)

	var diags []translate.Diagnostic
	for _, ref := range refs {
		if ctx.Cancelled() {
			return diags, cancelled(ctx)
		}
		if ref.Expr == nil {
			continue
		}

		entry, ok := ctx.Table.LookupIn(ref.Expr.Name,
			rename.CategoryErrorCode, rename.CategoryEnumConstant)
		if !ok {
			continue
		}

		diags = append(diags, renameAt(ctx, m.ID(), ref.SourceRange(), entry))
	}

	return diags, nil
}
