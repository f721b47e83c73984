package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohipify/pkg/rename"
)

type tableFlags struct {
	category string
	format   string
}

// tableEntry represents a rename entry in JSON output.
type tableEntry struct {
	Old      string `json:"old"`
	New      string `json:"new"`
	Category string `json:"category"`
}

func newTableCommand() *cobra.Command {
	flags := &tableFlags{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "List CUDA-to-HIP rename entries",
		Long: `List the built-in rename table: every CUDA name the translator
recognizes and the HIP name it maps to.

Entries can be filtered by category:
  macro, include, type, error-code, function, builtin-field, enum-constant`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := rename.DefaultTable()

			entries := table.Entries()
			if flags.category != "" {
				cat, ok := rename.ParseCategory(flags.category)
				if !ok {
					return fmt.Errorf("unknown category %q", flags.category)
				}
				entries = table.EntriesIn(cat)
			}

			if flags.format == formatJSON {
				return outputTableJSON(entries)
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%-40s %-40s %s\n", e.Old, e.New, e.Category)
			}
			fmt.Fprintf(out, "\n%d entries\n", len(entries))

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.category, "category", "",
		"only list entries in this category")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputTableJSON outputs rename entries as a JSON array.
func outputTableJSON(entries []rename.Entry) error {
	out := make([]tableEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, tableEntry{
			Old:      e.Old,
			New:      e.New,
			Category: e.Category.String(),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding table: %w", err)
	}
	return nil
}
