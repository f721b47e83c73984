package reporter

import "fmt"

// Format selects how a run's results are rendered.
type Format string

// Formats the reporter can render. The config package's OutputFormat is
// the file-loadable subset; table and sarif are reachable from the CLI
// only.
const (
	FormatText    Format = "text"
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatSARIF   Format = "sarif"
	FormatDiff    Format = "diff"
	FormatSummary Format = "summary"
)

// knownFormats holds every renderable format, in help-text order.
var knownFormats = []Format{
	FormatText,
	FormatTable,
	FormatJSON,
	FormatSARIF,
	FormatDiff,
	FormatSummary,
}

// ParseFormat resolves a format string. The empty string means text.
func ParseFormat(formatStr string) (Format, error) {
	if formatStr == "" {
		return FormatText, nil
	}
	for _, f := range knownFormats {
		if string(f) == formatStr {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q; valid formats: text, table, json, sarif, diff, summary", formatStr)
}

func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f names a renderable format.
func (f Format) IsValid() bool {
	for _, known := range knownFormats {
		if f == known {
			return true
		}
	}
	return false
}
