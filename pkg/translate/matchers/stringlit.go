package matchers

import (
	"strings"

	"github.com/yaklabco/gohipify/pkg/cuast"
	"github.com/yaklabco/gohipify/pkg/translate"
)

// StringLitMatcher rewrites string literals that mention CUDA, so log
// messages and error text track the translated API ("cudaMalloc failed"
// -> "hipMalloc failed").
type StringLitMatcher struct {
	translate.BaseMatcher
}

// NewStringLitMatcher creates a new string literal matcher.
func NewStringLitMatcher() *StringLitMatcher {
	return &StringLitMatcher{
		BaseMatcher: translate.NewBaseMatcher(
			"CH007",
			"cuda-string-literal",
			"String literals mentioning CUDA should mention HIP",
			nil,
		),
	}
}

// Apply replaces every case-sensitive "cuda" occurrence inside each
// string literal. A literal produces at most one edit covering the whole
// token, no matter how many occurrences it holds. Other casings are left
// alone; prose like "CUDA" names the platform, not an API symbol.
func (m *StringLitMatcher) Apply(ctx *translate.MatchContext) ([]translate.Diagnostic, error) {
	if ctx.File == nil || ctx.Root == nil {
		return nil, nil
	}

	lits := cuast.FindByKind(ctx.Root, cuast.NodeStringLit)

	var diags []translate.Diagnostic
	for _, lit := range lits {
		if ctx.Cancelled() {
			return diags, cancelled(ctx)
		}

		r := lit.SourceRange()
		oldText := ctx.Snippet(r)
		newText := hipifyString(oldText)
		if newText == oldText {
			continue
		}

		diags = append(diags, replaceAt(ctx, m.ID(), r, newText,
			"string literal mentions CUDA"))
	}

	return diags, nil
}

func hipifyString(s string) string {
	return strings.ReplaceAll(s, "cuda", "hip")
}
