package translate

import (
	"context"

	"github.com/yaklabco/gohipify/pkg/config"
	"github.com/yaklabco/gohipify/pkg/cuast"
	"github.com/yaklabco/gohipify/pkg/edit"
	"github.com/yaklabco/gohipify/pkg/rename"
)

// MatchContext provides all context needed by a matcher to propose
// replacements for one compilation view of one file.
//
// Design note: MatchContext stores context.Context as a field (Ctx) rather
// than passing it as a method parameter. This is acceptable because
// MatchContext is a short-lived parameter object created per-matcher
// invocation, not a long-lived struct. This design simplifies the Matcher
// interface (single Apply method) while still providing cancellation
// support via the Cancelled() helper.
type MatchContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// File is the parsed FileSnapshot for one view.
	File *cuast.FileSnapshot

	// Root is the tree root node (convenience alias for File.Root).
	Root *cuast.Node

	// Table is the identifier rename table.
	Table *rename.Table

	// Config is the resolved configuration.
	Config *config.Config

	// MatcherConfig is the matcher-specific configuration (may be nil).
	MatcherConfig *config.MatcherConfig

	// Builder accumulates text edits across all matchers for this view.
	Builder *edit.EditBuilder

	// Registry provides access to the matcher registry for name lookups.
	Registry *Registry
}

// NewMatchContext creates a MatchContext for the given file and configuration.
func NewMatchContext(
	ctx context.Context,
	file *cuast.FileSnapshot,
	table *rename.Table,
	cfg *config.Config,
	matcherCfg *config.MatcherConfig,
) *MatchContext {
	var root *cuast.Node
	if file != nil {
		root = file.Root
	}

	return &MatchContext{
		Ctx:           ctx,
		File:          file,
		Root:          root,
		Table:         table,
		Config:        cfg,
		MatcherConfig: matcherCfg,
		Builder:       edit.NewEditBuilder(),
	}
}

// Cancelled returns true if the context has been cancelled.
func (mc *MatchContext) Cancelled() bool {
	select {
	case <-mc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns a matcher-specific option value, or the default if not set.
func (mc *MatchContext) Option(key string, defaultValue any) any {
	if mc.MatcherConfig == nil || mc.MatcherConfig.Options == nil {
		return defaultValue
	}
	if v, ok := mc.MatcherConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionBool returns a matcher-specific boolean option, or the default.
func (mc *MatchContext) OptionBool(key string, defaultValue bool) bool {
	v := mc.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}

// OptionString returns a matcher-specific string option, or the default.
func (mc *MatchContext) OptionString(key string, defaultValue string) string {
	v := mc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionStringSlice returns a matcher-specific string slice option, or the default.
func (mc *MatchContext) OptionStringSlice(key string, defaultValue []string) []string {
	v := mc.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// Handle []interface{} from YAML/JSON parsing
	if iface, ok := v.([]interface{}); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}

// Snippet returns the source text for a range in the current file.
func (mc *MatchContext) Snippet(r cuast.SourceRange) string {
	return string(r.Text(mc.File.Content))
}
