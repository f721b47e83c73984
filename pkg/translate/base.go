package translate

import (
	"github.com/yaklabco/gohipify/pkg/config"
	"github.com/yaklabco/gohipify/pkg/rename"
)

// BaseMatcher provides a default implementation of the Matcher interface.
// Embed this in matcher implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
// Use the New* constructors or struct literal with field names.
type BaseMatcher struct {
	id   string            // Unique identifier (e.g., "CH001")
	name string            // Human-readable name
	desc string            // Detailed description
	cats []rename.Category // Rename-table categories consulted
}

// NewBaseMatcher creates a BaseMatcher with the given properties.
func NewBaseMatcher(id, name, desc string, cats []rename.Category) BaseMatcher {
	return BaseMatcher{
		id:   id,
		name: name,
		desc: desc,
		cats: cats,
	}
}

// ID returns the unique identifier for this matcher.
func (m *BaseMatcher) ID() string {
	return m.id
}

// Name returns the human-readable name of the matcher.
func (m *BaseMatcher) Name() string {
	return m.name
}

// Description returns a detailed description of what the matcher rewrites.
func (m *BaseMatcher) Description() string {
	return m.desc
}

// DefaultEnabled returns whether the matcher is enabled by default.
// Override this method to change the default.
func (m *BaseMatcher) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this matcher.
// Override this method to change the default.
func (m *BaseMatcher) DefaultSeverity() config.Severity {
	return config.SeverityWarning
}

// Categories returns the rename-table categories this matcher draws on.
func (m *BaseMatcher) Categories() []rename.Category {
	return m.cats
}

// Apply must be overridden by concrete matcher implementations.
// The default implementation returns no diagnostics.
func (m *BaseMatcher) Apply(_ *MatchContext) ([]Diagnostic, error) {
	return nil, nil
}
