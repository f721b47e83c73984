package matchers

import (
	"fmt"

	"github.com/yaklabco/gohipify/pkg/cuast"
	"github.com/yaklabco/gohipify/pkg/rename"
	"github.com/yaklabco/gohipify/pkg/translate"
)

// MacroDefineMatcher rewrites CUDA identifiers inside #define bodies,
// where the structural parser builds no nodes. Each renamed body token
// yields its own edit, anchored to the token's byte offsets in the
// directive line.
type MacroDefineMatcher struct {
	translate.BaseMatcher
}

// NewMacroDefineMatcher creates a new macro define matcher.
func NewMacroDefineMatcher() *MacroDefineMatcher {
	return &MacroDefineMatcher{
		BaseMatcher: translate.NewBaseMatcher(
			"CH009",
			"cuda-macro-define",
			"CUDA identifiers in macro bodies should use the HIP names",
			[]rename.Category{
				rename.CategoryMacro,
				rename.CategoryFunction,
				rename.CategoryType,
				rename.CategoryErrorCode,
				rename.CategoryEnumConstant,
				rename.CategoryBuiltinField,
			},
		),
	}
}

// Apply scans the body tokens of every live #define. Macro parameters
// shadow table names and are never renamed. Adjacent ident-dot-ident
// triples are tried as a builtin member spelling first so threadIdx.x
// in a body becomes hipThreadIdx_x in one edit.
func (m *MacroDefineMatcher) Apply(ctx *translate.MatchContext) ([]translate.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var diags []translate.Diagnostic
	for _, def := range ctx.File.Macros {
		if ctx.Cancelled() {
			return diags, cancelled(ctx)
		}

		if entry, ok := ctx.Table.LookupIn(def.Name, rename.CategoryMacro); ok {
			diags = append(diags, renameAt(ctx, m.ID(), def.NameRange, entry))
		}

		diags = append(diags, m.applyBody(ctx, def)...)
	}

	return diags, nil
}

func (m *MacroDefineMatcher) applyBody(ctx *translate.MatchContext, def cuast.MacroDef) []translate.Diagnostic {
	var diags []translate.Diagnostic

	body := def.Body
	for i := 0; i < len(body); i++ {
		tok := body[i]
		if tok.Kind != cuast.TokIdent {
			continue
		}
		name := string(tok.Text(ctx.File.Content))
		if def.IsParam(name) {
			continue
		}

		// Builtin member access spelled across three body tokens.
		if i+2 < len(body) &&
			body[i+1].Kind == cuast.TokPunct && string(body[i+1].Text(ctx.File.Content)) == "." &&
			body[i+2].Kind == cuast.TokIdent {
			field := string(body[i+2].Text(ctx.File.Content))
			if entry, ok := ctx.Table.LookupIn(name+"."+field, rename.CategoryBuiltinField); ok {
				r := cuast.SourceRange{
					StartOffset: tok.StartOffset,
					EndOffset:   body[i+2].EndOffset,
				}
				diags = append(diags, renameAt(ctx, m.ID(), r, entry))
				i += 2
				continue
			}
		}

		entry, ok := ctx.Table.LookupEntry(name)
		if !ok {
			continue
		}
		diag := renameAt(ctx, m.ID(), tok.Range(), entry)
		diag.Message = fmt.Sprintf("%s -> %s in macro %s", entry.Old, entry.New, def.Name)
		diags = append(diags, diag)
	}

	return diags
}
