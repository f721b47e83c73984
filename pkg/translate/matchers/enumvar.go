package matchers

import (
	"github.com/yaklabco/gohipify/pkg/cuast"
	"github.com/yaklabco/gohipify/pkg/rename"
	"github.com/yaklabco/gohipify/pkg/translate"
)

// EnumVarMatcher rewrites variable declarations whose written type is a
// CUDA enum type (cudaError_t err -> hipError_t err).
type EnumVarMatcher struct {
	translate.BaseMatcher
}

// NewEnumVarMatcher creates a new enum variable matcher.
func NewEnumVarMatcher() *EnumVarMatcher {
	return &EnumVarMatcher{
		BaseMatcher: translate.NewBaseMatcher(
			"CH004",
			"cuda-enum-var",
			"Variables of CUDA enum types should use the HIP type",
			[]rename.Category{rename.CategoryType},
		),
	}
}

// Apply rewrites the type name of variable declarations typed with one of
// the CUDA enum types. Struct and handle types are covered by the struct
// variable matcher.
func (m *EnumVarMatcher) Apply(ctx *translate.MatchContext) ([]translate.Diagnostic, error) {
	if ctx.File == nil || ctx.Root == nil {
		return nil, nil
	}

	decls := cuast.FindByKind(ctx.Root, cuast.NodeVarDecl)

	var diags []translate.Diagnostic
	for _, decl := range decls {
		if ctx.Cancelled() {
			return diags, cancelled(ctx)
		}
		if decl.Decl == nil || !enumTypeNames[decl.Decl.TypeName] {
			continue
		}

		entry, ok := ctx.Table.LookupIn(decl.Decl.TypeName, rename.CategoryType)
		if !ok {
			continue
		}

		diags = append(diags, renameAt(ctx, m.ID(), decl.Decl.TypeRange, entry))
	}

	return diags, nil
}
