// Package main is the entry point for the market-validator CLI.
// The CLI is a thin shell over internal/validator: it parses input
// files and flags, runs the engine, and prints reports. The engine
// itself performs no I/O.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jonesrussell/market-validator/internal/config"
	"github.com/jonesrussell/market-validator/internal/domain"
	"github.com/jonesrussell/market-validator/internal/logging"
	"github.com/jonesrussell/market-validator/internal/validator"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	flagConfig   string
	flagLogLevel string
	flagFormat   string
)

var rootCmd = &cobra.Command{
	Use:   "market-validator",
	Short: "Deterministic market problem validation engine",
	Long: `market-validator evaluates a problem statement and candidate solution
against search evidence and structured solution facts, producing a
deterministic validation class.

Each stage is a subcommand: queries generates the search plan, classify
labels search results, evaluate runs the full pipeline.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "json", "output format (json, yaml)")
}

// loadConfig loads the YAML config if given, otherwise defaults.
// The --log-level flag overrides whatever the file says.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flagConfig != "" {
		loaded, err := config.LoadWithDefaults[config.Config](flagConfig, (*config.Config).SetDefaults)
		if err != nil {
			return nil, err
		}
		if err := loaded.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		cfg = loaded
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	return cfg, nil
}

// newEvaluator builds the engine from config.
func newEvaluator(cfg *config.Config, logger logging.Logger) *validator.Evaluator {
	extraKeywords := make(map[domain.SignalCategory][]string, len(cfg.Lexicon.ExtraKeywords))
	for cat, words := range cfg.Lexicon.ExtraKeywords {
		extraKeywords[domain.SignalCategory(cat)] = words
	}
	return validator.NewEvaluator(logger, validator.Options{
		Version:              cfg.Service.Version,
		ExtraContentDomains:  cfg.Lexicon.ExtraContentDomains,
		ExtraKeywords:        extraKeywords,
		ExtraExcludedPhrases: cfg.Lexicon.ExtraExcludedPhrases,
	})
}

// printOutput renders v to stdout in the selected format.
func printOutput(v any) error {
	switch flagFormat {
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// readJSONFile decodes a JSON file into out.
func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
