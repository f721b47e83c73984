package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gohipify/pkg/config"
)

func TestFormatMatcherID(t *testing.T) {
	tests := []struct {
		name        string
		format      config.MatcherFormat
		matcherID   string
		matcherName string
		want        string
	}{
		{"name format", config.MatcherFormatName, "CH001", "cuda-api-call", "cuda-api-call"},
		{"id format", config.MatcherFormatID, "CH001", "cuda-api-call", "CH001"},
		{"combined format", config.MatcherFormatCombined, "CH001", "cuda-api-call", "CH001/cuda-api-call"},
		{"name format empty name", config.MatcherFormatName, "CH001", "", "CH001"},
		{"default to name", config.MatcherFormat(""), "CH001", "cuda-api-call", "cuda-api-call"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FormatMatcherID(tt.format, tt.matcherID, tt.matcherName)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatcherFormat_Values(t *testing.T) {
	assert.Equal(t, config.MatcherFormatName, config.MatcherFormat("name"))
	assert.Equal(t, config.MatcherFormatID, config.MatcherFormat("id"))
	assert.Equal(t, config.MatcherFormatCombined, config.MatcherFormat("combined"))
}

func TestNewConfig_DefaultMatcherFormat(t *testing.T) {
	cfg := config.NewConfig()
	assert.Equal(t, config.MatcherFormatName, cfg.MatcherFormat)
}
