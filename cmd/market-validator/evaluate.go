package main

import (
	"github.com/spf13/cobra"

	"github.com/jonesrussell/market-validator/internal/domain"
	"github.com/jonesrussell/market-validator/internal/logging"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <request.json>",
	Short: "Run the full validation pipeline over a request file",
	Long: `Evaluate reads a JSON request holding the problem text, the gathered
search results, the structured solution facts and the market context,
and prints the full evaluation report: query plan, signal counts,
problem severity, leverage flags and the final validation class.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := logging.Must(cfg.Logging)
		defer func() { _ = logger.Sync() }()

		var req domain.EvaluationRequest
		if err := readJSONFile(args[0], &req); err != nil {
			return err
		}

		eval := newEvaluator(cfg, logger)
		report, err := eval.Evaluate(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printOutput(report)
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}
