package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/scale-sonar/evaluation"
)

var (
	evaluateIterations int
	evaluateSeed       int64
)

func init() {
	defaults := evaluation.DefaultParams()
	evaluateCmd.Flags().IntVar(&evaluateIterations, "iterations", defaults.BootstrapIterations,
		"bootstrap iterations per item for the chance baseline")
	evaluateCmd.Flags().Int64Var(&evaluateSeed, "seed", defaults.Seed,
		"random seed for baseline sampling")
	rootCmd.AddCommand(evaluateCmd)
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <manifest.json>",
	Short: "Score the classifier against a ground-truth manifest",
	Long: `Evaluate reads a JSON manifest of ground-truth items, each naming a
saxophone and a piano transcription of the same performance plus the scale it
is known to use, classifies every item, and prints a scored report.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := loadManifest(args[0])
		if err != nil {
			return err
		}

		e := evaluation.NewEvaluatorWithParams(evaluation.Params{
			BootstrapIterations: evaluateIterations,
			Seed:                evaluateSeed,
		})
		report, err := e.Evaluate(items)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func loadManifest(path string) ([]evaluation.Item, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest: %w", err)
	}

	var items []evaluation.Item
	if err := json.Unmarshal(dat, &items); err != nil {
		return nil, fmt.Errorf("error parsing manifest: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("manifest %q contains no items", path)
	}
	return items, nil
}
