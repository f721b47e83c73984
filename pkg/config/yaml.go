package config

import (
	"bytes"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
// It produces human-readable output with appropriate formatting.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	// Marshal to YAML
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration with a header comment.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}

	if header == "" {
		return yamlBytes, nil
	}

	// Prepend header
	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	// Ensure Matchers map is initialized
	if cfg.Matchers == nil {
		cfg.Matchers = make(map[string]MatcherConfig)
	}

	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	// Use YAML round-trip for deep copy of serializable fields
	yamlBytes, err := c.ToYAML()
	if err != nil {
		// Fallback to manual deep copy on error
		return c.deepCopy()
	}

	clone, err := FromYAML(yamlBytes)
	if err != nil {
		// Fallback to manual deep copy on error
		return c.deepCopy()
	}

	// Copy CLI-only fields that aren't serialized to YAML
	c.copyCLIFields(clone)

	return clone
}

// copyCLIFields copies CLI-only fields (yaml:"-") to the target config.
func (c *Config) copyCLIFields(target *Config) {
	target.DryRun = c.DryRun
	target.Strict = c.Strict
	target.Format = c.Format
	target.MatcherFormat = c.MatcherFormat
	target.Jobs = c.Jobs
	target.NoBackups = c.NoBackups

	// Deep copy CLI-only slices
	if c.EnableMatchers != nil {
		target.EnableMatchers = make([]string, len(c.EnableMatchers))
		copy(target.EnableMatchers, c.EnableMatchers)
	}
	if c.DisableMatchers != nil {
		target.DisableMatchers = make([]string, len(c.DisableMatchers))
		copy(target.DisableMatchers, c.DisableMatchers)
	}
}

// deepCopy creates a manual deep copy of the configuration.
// This is used as a fallback when YAML round-trip fails.
func (c *Config) deepCopy() *Config {
	clone := &Config{
		SeverityDefault: c.SeverityDefault,
		Backups:         c.Backups, // BackupsConfig only has value types
		InPlace:         c.InPlace,
		KeepSuffix:      c.KeepSuffix,
		DryRun:          c.DryRun,
		Strict:          c.Strict,
		Format:          c.Format,
		MatcherFormat:   c.MatcherFormat,
		Jobs:            c.Jobs,
		NoBackups:       c.NoBackups,
	}

	// Deep copy Ignore slice
	if c.Ignore != nil {
		clone.Ignore = make([]string, len(c.Ignore))
		copy(clone.Ignore, c.Ignore)
	}

	// Deep copy Matchers map
	if c.Matchers != nil {
		clone.Matchers = make(map[string]MatcherConfig, len(c.Matchers))
		for k, v := range c.Matchers {
			clone.Matchers[k] = v.clone()
		}
	}

	// Deep copy EnableMatchers slice
	if c.EnableMatchers != nil {
		clone.EnableMatchers = make([]string, len(c.EnableMatchers))
		copy(clone.EnableMatchers, c.EnableMatchers)
	}

	// Deep copy DisableMatchers slice
	if c.DisableMatchers != nil {
		clone.DisableMatchers = make([]string, len(c.DisableMatchers))
		copy(clone.DisableMatchers, c.DisableMatchers)
	}

	return clone
}

// clone creates a deep copy of a MatcherConfig.
func (mc MatcherConfig) clone() MatcherConfig {
	clone := MatcherConfig{}

	if mc.Enabled != nil {
		enabled := *mc.Enabled
		clone.Enabled = &enabled
	}

	if mc.Severity != nil {
		severity := *mc.Severity
		clone.Severity = &severity
	}

	if mc.Options != nil {
		clone.Options = make(map[string]any, len(mc.Options))
		maps.Copy(clone.Options, mc.Options) // Note: nested maps/slices in Options are not deep copied
	}

	return clone
}

// YAMLIndent returns the default YAML indentation.
func YAMLIndent() int {
	return 2
}
