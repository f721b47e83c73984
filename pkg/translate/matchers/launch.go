package matchers

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gohipify/pkg/cuast"
	"github.com/yaklabco/gohipify/pkg/edit"
	"github.com/yaklabco/gohipify/pkg/rename"
	"github.com/yaklabco/gohipify/pkg/translate"
)

// launchParmText is prepended to the parameter list of every kernel
// declaration, matching the hipLaunchKernel calling convention.
const launchParmText = "hipLaunchParm lp, "

// KernelLaunchMatcher rewrites triple-chevron kernel launches to
// hipLaunchKernel calls and prepends hipLaunchParm to kernel parameter
// lists:
//
//	kern<<<grid, block, 0, stream>>>(buf)
//
// becomes
//
//	hipLaunchKernel(HIP_KERNEL_NAME(kern), dim3(grid), dim3(block), 0, stream, buf)
type KernelLaunchMatcher struct {
	translate.BaseMatcher
}

// NewKernelLaunchMatcher creates a new kernel launch matcher.
func NewKernelLaunchMatcher() *KernelLaunchMatcher {
	return &KernelLaunchMatcher{
		BaseMatcher: translate.NewBaseMatcher(
			"CH008",
			"cuda-kernel-launch",
			"Triple-chevron kernel launches should use hipLaunchKernel",
			[]rename.Category{rename.CategoryFunction},
		),
	}
}

// Apply rewrites every launch site and the declarations of the kernels
// it launches. Declarations are only touched when a triple-chevron
// launch names them: already-translated files have no launch sites left,
// so nothing gains a second hipLaunchParm. Launches whose callee is not
// declared in the file, or whose kernel takes no parameters, are
// reported but left unchanged: hipLaunchKernel needs at least one kernel
// argument, and the parameter list must gain the hipLaunchParm slot for
// the rewrite to compile.
func (m *KernelLaunchMatcher) Apply(ctx *translate.MatchContext) ([]translate.Diagnostic, error) {
	if ctx.File == nil || ctx.Root == nil {
		return nil, nil
	}

	var diags []translate.Diagnostic
	launched := make(map[string]bool)

	for _, launch := range cuast.FindByKind(ctx.Root, cuast.NodeLaunchExpr) {
		if ctx.Cancelled() {
			return diags, cancelled(ctx)
		}
		if launch.Expr == nil || launch.Expr.Callee == "" {
			continue
		}

		fn, ok := ctx.File.FuncDecls[launch.Expr.Callee]
		if !ok || fn.Decl == nil {
			diags = append(diags, skipAt(ctx, m.ID(), launch.Expr.CalleeRange,
				fmt.Sprintf("cannot resolve kernel %s; launch left unchanged", launch.Expr.Callee)))
			continue
		}
		launched[launch.Expr.Callee] = true
		if fn.Decl.ParamsRange.IsEmpty() {
			diags = append(diags, skipAt(ctx, m.ID(), launch.Expr.CalleeRange,
				fmt.Sprintf("kernel %s takes no arguments; launch left unchanged", launch.Expr.Callee)))
			continue
		}

		newText := buildLaunchText(ctx, launch)
		diags = append(diags, replaceAt(ctx, m.ID(), launch.SourceRange(), newText,
			fmt.Sprintf("launch of %s rewritten to hipLaunchKernel", launch.Expr.Callee)))
	}

	if len(launched) == 0 {
		return diags, nil
	}

	for _, fn := range cuast.FindByKind(ctx.Root, cuast.NodeFunctionDecl) {
		if ctx.Cancelled() {
			return diags, cancelled(ctx)
		}
		if fn.Decl == nil || !fn.Decl.IsKernel || !launched[fn.Decl.Name] {
			continue
		}

		if fn.Decl.ParamsRange.IsEmpty() {
			diags = append(diags, skipAt(ctx, m.ID(), fn.Decl.NameRange,
				fmt.Sprintf("kernel %s takes no parameters; hipLaunchParm must be added manually", fn.Decl.Name)))
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(ctx.Snippet(fn.Decl.ParamsRange)), "hipLaunchParm") {
			continue
		}

		start := fn.Decl.ParamsRange.StartOffset
		ctx.Builder.Insert(start, launchParmText)
		diags = append(diags, translate.NewDiagnosticAt(m.ID(), ctx.File,
			fn.Decl.NameRange,
			fmt.Sprintf("kernel %s gains a hipLaunchParm parameter", fn.Decl.Name)).
			WithReplacement("", launchParmText).
			WithEdit(edit.TextEdit{StartOffset: start, EndOffset: start, NewText: launchParmText}).
			Build())
	}

	return diags, nil
}

// buildLaunchText renders the hipLaunchKernel replacement for a launch.
// Grid and block expressions are wrapped in dim3 constructors; dim3 has a
// copy constructor, so already-dim3 expressions nest harmlessly. Every
// elided configuration slot becomes 0.
func buildLaunchText(ctx *translate.MatchContext, launch *cuast.Node) string {
	var b strings.Builder
	b.WriteString("hipLaunchKernel(HIP_KERNEL_NAME(")
	b.WriteString(launch.Expr.Callee)
	b.WriteString(")")

	cfg := launch.Expr.Config
	for i := 0; i < 2 && i < len(cfg); i++ {
		b.WriteString(", dim3(")
		if cfg[i].Elided {
			b.WriteString("0")
		} else {
			b.WriteString(strings.TrimSpace(ctx.Snippet(cfg[i].Range)))
		}
		b.WriteString(")")
	}
	for i := 2; i < 4 && i < len(cfg); i++ {
		b.WriteString(", ")
		if cfg[i].Elided {
			b.WriteString("0")
		} else {
			b.WriteString(strings.TrimSpace(ctx.Snippet(cfg[i].Range)))
		}
	}

	for _, arg := range launch.Expr.Args {
		b.WriteString(", ")
		b.WriteString(strings.TrimSpace(ctx.Snippet(arg)))
	}

	b.WriteString(")")
	return b.String()
}
