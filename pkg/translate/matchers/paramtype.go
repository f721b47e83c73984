package matchers

import (
	"github.com/yaklabco/gohipify/pkg/cuast"
	"github.com/yaklabco/gohipify/pkg/rename"
	"github.com/yaklabco/gohipify/pkg/translate"
)

// ParamTypeMatcher rewrites function parameters typed with a CUDA type
// (void f(cudaStream_t s) -> void f(hipStream_t s)).
type ParamTypeMatcher struct {
	translate.BaseMatcher
}

// NewParamTypeMatcher creates a new parameter type matcher.
func NewParamTypeMatcher() *ParamTypeMatcher {
	return &ParamTypeMatcher{
		BaseMatcher: translate.NewBaseMatcher(
			"CH006",
			"cuda-param-type",
			"Function parameters of CUDA types should use the HIP type",
			[]rename.Category{rename.CategoryType},
		),
	}
}

// Apply rewrites the type name of every parameter declaration whose type
// appears in the type category of the rename table.
func (m *ParamTypeMatcher) Apply(ctx *translate.MatchContext) ([]translate.Diagnostic, error) {
	if ctx.File == nil || ctx.Root == nil {
		return nil, nil
	}

	params := cuast.FindByKind(ctx.Root, cuast.NodeParamDecl)

	var diags []translate.Diagnostic
	for _, param := range params {
		if ctx.Cancelled() {
			return diags, cancelled(ctx)
		}
		if param.Decl == nil || param.Decl.TypeName == "" {
			continue
		}

		entry, ok := ctx.Table.LookupIn(param.Decl.TypeName, rename.CategoryType)
		if !ok {
			continue
		}

		diags = append(diags, renameAt(ctx, m.ID(), param.Decl.TypeRange, entry))
	}

	return diags, nil
}
