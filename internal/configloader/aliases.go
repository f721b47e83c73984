package configloader

import "strings"

// matcherAliases maps human-readable matcher names and the clang-binding
// names the original hipify tooling used to their canonical matcher IDs.
// This enables configuration files to use either form.
//
//nolint:gochecknoglobals // Read-only lookup table.
var matcherAliases = map[string]string{
	// Human-readable names
	"cuda-api-call":          "CH001",
	"cuda-builtin-index":     "CH002",
	"cuda-enum-ref":          "CH003",
	"cuda-enum-var":          "CH004",
	"cuda-struct-var":        "CH005",
	"cuda-param-type":        "CH006",
	"cuda-string-literal":    "CH007",
	"cuda-kernel-launch":     "CH008",
	"cuda-macro-define":      "CH009",
	"cuda-include-directive": "CH010",

	// Binding names from the clang-based tooling
	"cudaCall":             "CH001",
	"cudaBuiltin":          "CH002",
	"cudaEnumConstantRef":  "CH003",
	"cudaEnumConstantDecl": "CH004",
	"cudaStructVar":        "CH005",
	"cudaParamDecl":        "CH006",
	"stringLiteral":        "CH007",
	"cudaLaunchKernel":     "CH008",
}

// matcherTags maps tag names to the matcher IDs they contain.
// Tags can be used in configuration to enable/disable groups of matchers at once.
//
//nolint:gochecknoglobals // Read-only lookup table.
var matcherTags = map[string][]string{
	"identifiers":  {"CH001", "CH002", "CH003"},
	"declarations": {"CH004", "CH005", "CH006"},
	"literals":     {"CH007"},
	"launch":       {"CH008"},
	"preprocessor": {"CH009", "CH010"},
	"headers":      {"CH010"},
	"runtime":      {"CH001", "CH003", "CH004", "CH005", "CH006"},
	"device":       {"CH002", "CH008"},
}

// NormalizeMatcherID converts a matcher alias or ID to its canonical matcher ID.
// Returns empty string if the key is not a recognized matcher ID or alias.
func NormalizeMatcherID(key string) string {
	// Check if already a matcher ID (starts with CH)
	upper := strings.ToUpper(key)
	if strings.HasPrefix(upper, "CH") {
		return upper
	}

	// Check aliases
	if id, ok := matcherAliases[key]; ok {
		return id
	}

	return ""
}

// ExpandMatcherKeys resolves a list of CLI matcher keys into canonical
// matcher IDs. Tags expand to every matcher ID they contain; plain keys
// normalize through the alias table. Unrecognized keys pass through
// unchanged so the registry can report them.
func ExpandMatcherKeys(keys []string) []string {
	if len(keys) == 0 {
		return nil
	}

	expanded := make([]string, 0, len(keys))
	for _, key := range keys {
		if IsTag(key) {
			expanded = append(expanded, GetTagMatchers(key)...)
			continue
		}
		if id := NormalizeMatcherID(key); id != "" {
			expanded = append(expanded, id)
			continue
		}
		expanded = append(expanded, key)
	}
	return expanded
}

// IsTag returns true if the key is a recognized tag name.
func IsTag(key string) bool {
	_, ok := matcherTags[key]
	return ok
}

// GetTagMatchers returns the matcher IDs associated with a tag.
// Returns nil if the tag is not recognized.
func GetTagMatchers(tag string) []string {
	return matcherTags[tag]
}

// GetAllMatcherIDs returns a slice of all known matcher IDs.
func GetAllMatcherIDs() []string {
	// Build a set of all matcher IDs from aliases
	seen := make(map[string]struct{})
	for _, id := range matcherAliases {
		seen[id] = struct{}{}
	}

	// Convert to slice
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}

	return ids
}

// GetAliasesForMatcher returns all aliases for a given matcher ID.
func GetAliasesForMatcher(matcherID string) []string {
	var aliases []string
	for alias, id := range matcherAliases {
		if id == matcherID {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}
