package matchers

import (
	"github.com/yaklabco/gohipify/pkg/config"
	"github.com/yaklabco/gohipify/pkg/translate"
)

// RegisterAll registers all built-in matchers with the given registry.
func RegisterAll(registry *translate.Registry) {
	// Identifier renames
	registry.Register(NewAPICallMatcher())      // CH001
	registry.Register(NewBuiltinIndexMatcher()) // CH002
	registry.Register(NewEnumRefMatcher())      // CH003

	// Declaration renames
	registry.Register(NewEnumVarMatcher())   // CH004
	registry.Register(NewStructVarMatcher()) // CH005
	registry.Register(NewParamTypeMatcher()) // CH006

	// Literals
	registry.Register(NewStringLitMatcher()) // CH007

	// Launch syntax
	registry.Register(NewKernelLaunchMatcher()) // CH008

	// Preprocessor
	registry.Register(NewMacroDefineMatcher()) // CH009
	registry.Register(NewIncludeMatcher())     // CH010
}

// RegisterBindingAliases registers the clang AST matcher binding names
// the original hipify tooling used, so configurations written against
// those names keep working.
func RegisterBindingAliases(registry *translate.Registry) {
	registry.RegisterAlias("cudaCall", "CH001")
	registry.RegisterAlias("cudaBuiltin", "CH002")
	registry.RegisterAlias("cudaEnumConstantRef", "CH003")
	registry.RegisterAlias("cudaEnumConstantDecl", "CH004")
	registry.RegisterAlias("cudaStructVar", "CH005")
	registry.RegisterAlias("cudaParamDecl", "CH006")
	registry.RegisterAlias("stringLiteral", "CH007")
	registry.RegisterAlias("cudaLaunchKernel", "CH008")
}

// MatcherInfos returns metadata for every registered matcher, for config
// template generation.
func MatcherInfos() []config.MatcherInfo {
	ms := translate.DefaultRegistry.Matchers()
	infos := make([]config.MatcherInfo, 0, len(ms))
	for _, m := range ms {
		cats := make([]string, 0, len(m.Categories()))
		for _, c := range m.Categories() {
			cats = append(cats, c.String())
		}
		infos = append(infos, config.MatcherInfo{
			ID:          m.ID(),
			Name:        m.Name(),
			Description: m.Description(),
			Enabled:     m.DefaultEnabled(),
			Severity:    m.DefaultSeverity(),
			Categories:  cats,
		})
	}
	return infos
}

// init registers all built-in matchers with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic matcher registration
func init() {
	RegisterAll(translate.DefaultRegistry)
	RegisterBindingAliases(translate.DefaultRegistry)
	config.DefaultMatcherInfoProvider = MatcherInfos
}
