package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/wordsearch-mcp/internal/grid"
	"github.com/ironsheep/wordsearch-mcp/internal/logger"
)

func newSearchCmd(_ *app) *cobra.Command {
	var (
		puzzlePath string
		gridPath   string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "search [words...]",
		Short: "Find words in a text grid",
		Long: `Search a letter grid for words. The grid comes from a YAML puzzle file
(--puzzle) or a plain text file with one row per line (--grid). Words given
as arguments replace the puzzle file's word list.

Every placement is reported as (row,col) and a compass direction.`,
		Example: `  wordsearch search --puzzle animals.yaml
  wordsearch search --grid grid.txt cat dog`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if puzzlePath == "" && gridPath == "" {
				return errors.New("one of --puzzle or --grid is required")
			}
			g, bank, err := puzzleInput(puzzlePath, gridPath, args)
			if err != nil {
				return err
			}
			if g.Rows() == 0 {
				return errors.New("grid is empty")
			}
			if len(bank) == 0 {
				return errNoWords
			}
			if ragged := g.RaggedRows(); len(ragged) > 0 {
				logger.Warn("Grid rows %v differ in length from row 0", ragged)
			}

			results := grid.SearchBank(g, bank)
			if asJSON {
				return outputResultsJSON(cmd, results)
			}
			outputResultsText(cmd, g, results)
			return nil
		},
	}
	cmd.Flags().StringVarP(&puzzlePath, "puzzle", "p", "", "YAML puzzle file with grid and words")
	cmd.Flags().StringVarP(&gridPath, "grid", "g", "", "text file with one grid row per line")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output results as JSON")
	return cmd
}

func outputResultsJSON(cmd *cobra.Command, results []grid.Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultsText(cmd *cobra.Command, g grid.Grid, results []grid.Result) {
	if g != nil {
		cmd.Printf("Grid (%dx%d):\n", g.Rows(), g.Cols())
		for _, line := range g.Lines() {
			cmd.Printf("  %s\n", line)
		}
		cmd.Println()
	}

	found := 0
	for _, r := range results {
		if !r.Found {
			cmd.Printf("%s: not found\n", r.Word)
			continue
		}
		found++
		cmd.Printf("%s:\n", r.Word)
		for _, m := range r.Matches {
			cmd.Printf("  %s\n", m)
		}
	}
	cmd.Printf("\nFound %d of %d words.\n", found, len(results))
}
