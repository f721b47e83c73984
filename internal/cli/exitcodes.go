package cli

import "github.com/yaklabco/gohipify/pkg/runner"

// Exit codes for gohipify.
const (
	// ExitSuccess indicates successful execution with every edit applied.
	ExitSuccess = 0

	// ExitTranslateIssues indicates the run finished but some replacements
	// were skipped, or error-severity diagnostics were reported.
	ExitTranslateIssues = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.FilesErrored > 0 {
		return ExitIOError
	}

	if result.Stats.DiagnosticsBySeverity["error"] > 0 {
		return ExitTranslateIssues
	}

	if result.Stats.ReplacementsSkipped > 0 {
		return ExitTranslateIssues
	}

	if strict && result.Stats.DiagnosticsBySeverity["warning"] > 0 {
		return ExitTranslateIssues
	}

	return ExitSuccess
}
