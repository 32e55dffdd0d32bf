package main

import (
	"github.com/spf13/cobra"

	"github.com/jonesrussell/market-validator/internal/domain"
	"github.com/jonesrussell/market-validator/internal/logging"
)

// classifyOutput pairs each input result with its label.
type classifyOutput struct {
	URL      string                `json:"url,omitempty"`
	Title    string                `json:"title,omitempty"`
	Category domain.ResultCategory `json:"category"`
}

var classifyCmd = &cobra.Command{
	Use:   "classify <results.json>",
	Short: "Classify search results from a JSON file",
	Long: `Classify reads a JSON array of {title, snippet, url} records and labels
each as commercial, diy, content or unknown. Recognized content-site
domains always classify as content.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := logging.Must(cfg.Logging)
		defer func() { _ = logger.Sync() }()

		var results []domain.SearchResult
		if err := readJSONFile(args[0], &results); err != nil {
			return err
		}

		eval := newEvaluator(cfg, logger)
		categories := eval.ClassifyResults(results)

		out := make([]classifyOutput, len(results))
		for i, r := range results {
			out[i] = classifyOutput{URL: r.URL, Title: r.Title, Category: categories[i]}
		}
		return printOutput(out)
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
