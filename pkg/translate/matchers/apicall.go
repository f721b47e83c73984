package matchers

import (
	"github.com/yaklabco/gohipify/pkg/cuast"
	"github.com/yaklabco/gohipify/pkg/rename"
	"github.com/yaklabco/gohipify/pkg/translate"
)

// APICallMatcher rewrites calls to CUDA runtime and driver API functions
// to their HIP equivalents (cudaMalloc -> hipMalloc).
type APICallMatcher struct {
	translate.BaseMatcher
}

// NewAPICallMatcher creates a new API call matcher.
func NewAPICallMatcher() *APICallMatcher {
	return &APICallMatcher{
		BaseMatcher: translate.NewBaseMatcher(
			"CH001",
			"cuda-api-call",
			"CUDA API calls should use the HIP runtime equivalent",
			[]rename.Category{rename.CategoryFunction},
		),
	}
}

// Apply rewrites the callee name of every call whose name appears in the
// function category of the rename table. Kernel launches are handled by
// the launch matcher, not here.
func (m *APICallMatcher) Apply(ctx *translate.MatchContext) ([]translate.Diagnostic, error) {
	if ctx.File == nil || ctx.Root == nil {
		return nil, nil
	}

	calls := cuast.FindByKind(ctx.Root, cuast.NodeCallExpr)

	var diags []translate.Diagnostic
	for _, call := range calls {
		if ctx.Cancelled() {
			return diags, cancelled(ctx)
		}
		if call.Expr == nil || call.Expr.Callee == "" {
			continue
		}

		entry, ok := ctx.Table.LookupIn(call.Expr.Callee, rename.CategoryFunction)
		if !ok {
			continue
		}

		diags = append(diags, renameAt(ctx, m.ID(), call.Expr.CalleeRange, entry))
	}

	return diags, nil
}
