// Command radarctl is the Radar dataset maintenance CLI.
//
// Usage:
//
//	radarctl validate communities.json
//	radarctl validate --strict communities.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swingscene/radar/internal/domain"
	"github.com/swingscene/radar/internal/sources/dataset"
)

func main() {
	root := &cobra.Command{
		Use:   "radarctl",
		Short: "Radar dataset maintenance CLI",
	}

	root.AddCommand(validateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// validate command
// --------------------------------------------------------------------------

func validateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate <dataset-file>",
		Short: "Normalize a dataset file and report records that needed fixing up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := dataset.NewLoader(args[0])
			doc, err := loader.Load()
			if err != nil {
				return err
			}

			records := dataset.NormalizeDocument(doc)
			warnings := lintRecords(records)

			for _, w := range warnings {
				fmt.Fprintln(cmd.OutOrStdout(), "warning:", w)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d records, %d warnings\n", len(records), len(warnings))

			if strict && len(warnings) > 0 {
				return fmt.Errorf("%d warnings in strict mode", len(warnings))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any warning is emitted")
	return cmd
}

// lintRecords flags records that the normalizer had to fill in with defaults.
// The normalizer never rejects input, so authoring mistakes only show up as
// placeholder values; this surfaces them before the dataset ships.
func lintRecords(records []domain.Community) []string {
	var warnings []string
	seen := make(map[string]int)

	for i, c := range records {
		ref := c.Username
		if ref == "" {
			ref = fmt.Sprintf("record #%d", i)
			warnings = append(warnings, fmt.Sprintf("%s: missing username", ref))
		} else {
			seen[ref]++
			if seen[ref] == 2 {
				warnings = append(warnings, fmt.Sprintf("%s: duplicate username", ref))
			}
		}

		if c.Name == "Unknown" {
			warnings = append(warnings, fmt.Sprintf("%s: missing name", ref))
		}
		if c.City == "Unknown" {
			warnings = append(warnings, fmt.Sprintf("%s: missing city", ref))
		}
		if c.Country == "Unknown" {
			warnings = append(warnings, fmt.Sprintf("%s: missing country", ref))
		}
		if len(c.Styles) == 0 {
			warnings = append(warnings, fmt.Sprintf("%s: no recognized dance styles", ref))
		}
		if c.EntityType == domain.EntityFestival && c.StartDate == "" {
			warnings = append(warnings, fmt.Sprintf("%s: festival without a start date", ref))
		}

		for _, e := range c.Scraped.UpcomingEvents {
			if e.Date == domain.SentinelDate {
				warnings = append(warnings, fmt.Sprintf("%s: event %q has a missing or malformed date", ref, e.Title))
			}
			if e.Title == "Unknown Event" {
				warnings = append(warnings, fmt.Sprintf("%s: event on %s has no title", ref, e.Date))
			}
		}
	}

	return warnings
}
