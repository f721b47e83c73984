package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohipify/internal/logging"
	"github.com/yaklabco/gohipify/pkg/config"
	"github.com/yaklabco/gohipify/pkg/translate"
)

type matchersFlags struct {
	matcherFormat string
	format        string
}

const formatJSON = "json"

// matcherInfo represents a matcher in JSON output.
type matcherInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Enabled     bool     `json:"enabled"`
	Categories  []string `json:"categories"`
}

func newMatchersCommand() *cobra.Command {
	flags := &matchersFlags{}

	cmd := &cobra.Command{
		Use:   "matchers",
		Short: "List available translation matchers",
		Long: `List all registered translation matchers with their IDs, descriptions,
default severity, and the rename-table categories they draw on.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ms := translate.DefaultRegistry.Matchers()

			// Handle JSON output format.
			if flags.format == formatJSON {
				return outputMatchersJSON(ms)
			}

			// Default to text output.
			logger := logging.NewInteractive()

			if len(ms) == 0 {
				logger.Info("no matchers registered")
				return nil
			}

			logger.Info("available matchers")

			matcherFormat := config.MatcherFormat(flags.matcherFormat)

			for _, m := range ms {
				cats := make([]string, 0, len(m.Categories()))
				for _, c := range m.Categories() {
					cats = append(cats, c.String())
				}

				identifier := config.FormatMatcherID(matcherFormat, m.ID(), m.Name())

				logger.Info(identifier,
					logging.FieldSeverity, m.DefaultSeverity(),
					"categories", strings.Join(cats, ","),
					logging.FieldDescription, m.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.matcherFormat, "matcher-format", "name",
		"matcher identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputMatchersJSON outputs matchers as a JSON array.
func outputMatchersJSON(ms []translate.Matcher) error {
	infos := make([]matcherInfo, 0, len(ms))
	for _, m := range ms {
		cats := make([]string, 0, len(m.Categories()))
		for _, c := range m.Categories() {
			cats = append(cats, c.String())
		}
		infos = append(infos, matcherInfo{
			ID:          m.ID(),
			Name:        m.Name(),
			Description: m.Description(),
			Severity:    string(m.DefaultSeverity()),
			Enabled:     m.DefaultEnabled(),
			Categories:  cats,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding matchers: %w", err)
	}
	return nil
}
