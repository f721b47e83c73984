package translate

import "github.com/yaklabco/gohipify/pkg/config"

// ResolvedMatcher pairs a Matcher with its resolved configuration.
type ResolvedMatcher struct {
	// Matcher is the underlying matcher implementation.
	Matcher Matcher

	// Enabled indicates whether the matcher should be run.
	Enabled bool

	// Severity is the resolved severity for diagnostics from this matcher.
	Severity config.Severity

	// Config is the matcher-specific configuration (may be nil).
	Config *config.MatcherConfig
}

// ResolveMatchers determines which matchers to run based on registry and config.
// Returns only enabled matchers with their resolved configuration.
func ResolveMatchers(registry *Registry, cfg *config.Config) []ResolvedMatcher {
	var resolved []ResolvedMatcher

	for _, m := range registry.Matchers() {
		rm := resolveMatcher(registry, m, cfg)
		if rm.Enabled {
			resolved = append(resolved, rm)
		}
	}

	return resolved
}

// resolveMatcher resolves the configuration for a single matcher.
func resolveMatcher(registry *Registry, m Matcher, cfg *config.Config) ResolvedMatcher {
	rm := ResolvedMatcher{
		Matcher:  m,
		Enabled:  m.DefaultEnabled(),
		Severity: m.DefaultSeverity(),
		Config:   nil,
	}

	if cfg == nil {
		return rm
	}

	// Check for explicit enable/disable from CLI. Keys may be IDs, names,
	// or aliases.
	for _, key := range cfg.EnableMatchers {
		if id, _, ok := registry.Resolve(key); ok && id == m.ID() {
			rm.Enabled = true
			break
		}
	}
	for _, key := range cfg.DisableMatchers {
		if id, _, ok := registry.Resolve(key); ok && id == m.ID() {
			rm.Enabled = false
			break
		}
	}

	// Apply matcher-specific config.
	if matcherCfg, ok := cfg.Matchers[m.ID()]; ok {
		rm.Config = &matcherCfg

		if matcherCfg.Enabled != nil {
			rm.Enabled = *matcherCfg.Enabled
		}
		if matcherCfg.Severity != nil {
			rm.Severity = config.Severity(*matcherCfg.Severity)
		}
	}

	return rm
}
