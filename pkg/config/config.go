// Package config defines core configuration types for gohipify.
// These types are pure data structures with no external dependencies on Viper or other config loaders.
package config

// Severity represents the severity level of a translation diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// MatcherConfig holds per-matcher configuration options.
type MatcherConfig struct {
	Enabled  *bool          `mapstructure:"enabled" yaml:"enabled"`
	Severity *string        `mapstructure:"severity" yaml:"severity"`
	Options  map[string]any `mapstructure:"options" yaml:"options"`
}

// BackupsConfig controls backup behavior when rewriting files in place.
type BackupsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Mode    string `mapstructure:"mode" yaml:"mode"` // "sidecar", "xdg", etc.
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// MatcherFormat controls how matcher identifiers appear in output.
type MatcherFormat string

const (
	MatcherFormatName     MatcherFormat = "name"     // "cuda-api-call"
	MatcherFormatID       MatcherFormat = "id"       // "CH001"
	MatcherFormatCombined MatcherFormat = "combined" // "CH001/cuda-api-call"
)

// SummaryOrder controls the order of tables in summary output.
type SummaryOrder string

const (
	// SummaryOrderMatchers shows the matchers table first (default).
	SummaryOrderMatchers SummaryOrder = "matchers"
	// SummaryOrderFiles shows the files table first.
	SummaryOrderFiles SummaryOrder = "files"
)

// IsValid returns true if the summary order is valid.
func (s SummaryOrder) IsValid() bool {
	switch s {
	case SummaryOrderMatchers, SummaryOrderFiles:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for gohipify.
type Config struct {
	// SeverityDefault is the default severity for matchers that don't specify one.
	SeverityDefault string `mapstructure:"severity_default" yaml:"severity_default"`

	// Matchers contains per-matcher configuration keyed by matcher ID.
	Matchers map[string]MatcherConfig `mapstructure:"matchers" yaml:"matchers"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// Backups configures backup behavior for in-place rewrites.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups"`

	// InPlace rewrites the source file instead of writing a .hip sibling.
	InPlace bool `mapstructure:"in_place" yaml:"in_place"`

	// KeepSuffix leaves the .hip.cu working name instead of renaming the
	// translated output to .hip.
	KeepSuffix bool `mapstructure:"keep_suffix" yaml:"keep_suffix"`

	// CLI-level options (not persisted to config files).

	// DryRun shows what would change without writing any files.
	DryRun bool `mapstructure:"-" yaml:"-"`

	// Strict escalates skipped replacements to a failure.
	Strict bool `mapstructure:"-" yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// MatcherFormat controls how matcher identifiers appear in output.
	MatcherFormat MatcherFormat `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"-" yaml:"-"`

	// EnableMatchers contains matcher IDs to explicitly enable.
	EnableMatchers []string `mapstructure:"-" yaml:"-"`

	// DisableMatchers contains matcher IDs to explicitly disable.
	DisableMatchers []string `mapstructure:"-" yaml:"-"`

	// NoBackups disables backup creation for in-place rewrites.
	NoBackups bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		SeverityDefault: string(SeverityWarning),
		Matchers:        make(map[string]MatcherConfig),
		Ignore:          nil,
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format:        FormatText,
		MatcherFormat: MatcherFormatName,
		Jobs:          0, // 0 means use GOMAXPROCS
	}
}
