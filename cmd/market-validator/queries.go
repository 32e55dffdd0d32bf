package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/market-validator/internal/logging"
)

var queriesCmd = &cobra.Command{
	Use:   "queries <problem text>",
	Short: "Generate the four search query buckets for a problem phrase",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := logging.Must(cfg.Logging)
		defer func() { _ = logger.Sync() }()

		eval := newEvaluator(cfg, logger)
		buckets := eval.GenerateQueries(strings.Join(args, " "))
		return printOutput(buckets)
	},
}

func init() {
	rootCmd.AddCommand(queriesCmd)
}
