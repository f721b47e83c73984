package matchers

import (
	"github.com/yaklabco/gohipify/pkg/cuast"
	"github.com/yaklabco/gohipify/pkg/rename"
	"github.com/yaklabco/gohipify/pkg/translate"
)

// StructVarMatcher rewrites variable declarations whose written type is a
// CUDA struct or opaque handle type (cudaStream_t s -> hipStream_t s,
// cudaDeviceProp p -> hipDeviceProp_t p).
type StructVarMatcher struct {
	translate.BaseMatcher
}

// NewStructVarMatcher creates a new struct variable matcher.
func NewStructVarMatcher() *StructVarMatcher {
	return &StructVarMatcher{
		BaseMatcher: translate.NewBaseMatcher(
			"CH005",
			"cuda-struct-var",
			"Variables of CUDA struct and handle types should use the HIP type",
			[]rename.Category{rename.CategoryType},
		),
	}
}

// Apply rewrites the type name of variable declarations typed with a CUDA
// struct or handle type. Enum types report under the enum variable matcher.
func (m *StructVarMatcher) Apply(ctx *translate.MatchContext) ([]translate.Diagnostic, error) {
	if ctx.File == nil || ctx.Root == nil {
		return nil, nil
	}

	decls := cuast.FindByKind(ctx.Root, cuast.NodeVarDecl)

	var diags []translate.Diagnostic
	for _, decl := range decls {
		if ctx.Cancelled() {
			return diags, cancelled(ctx)
		}
		if decl.Decl == nil || enumTypeNames[decl.Decl.TypeName] {
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
