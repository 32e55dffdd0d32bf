package validator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonesrussell/market-validator/internal/domain"
	"github.com/jonesrussell/market-validator/internal/logging"
)

// Evaluator orchestrates the full validation pipeline: query
// generation, result classification, signal extraction, severity
// scoring, leverage detection and the final synchronizer. Every stage
// is a pure transformation; the evaluator holds no mutable state and
// is safe for concurrent use.
type Evaluator struct {
	norm     *Normalizer
	queries  *QueryGenerator
	results  *ResultClassifier
	signals  *SignalExtractor
	severity *SeverityClassifier
	leverage *LeverageEngine
	narrator Narrator
	logger   logging.Logger
	version  string
}

// Options configures an Evaluator. Zero value gives the built-in
// lexicons and the stub narrator.
type Options struct {
	Version              string
	Narrator             Narrator
	ExtraContentDomains  []string
	ExtraKeywords        map[domain.SignalCategory][]string
	ExtraExcludedPhrases []string
}

// NewEvaluator wires all pipeline stages.
func NewEvaluator(logger logging.Logger, opts Options) *Evaluator {
	norm := NewNormalizer(logger)
	narrator := opts.Narrator
	if narrator == nil {
		narrator = StubNarrator{}
	}
	return &Evaluator{
		norm:    norm,
		queries: NewQueryGenerator(logger, norm),
		results: NewResultClassifier(logger, opts.ExtraContentDomains),
		signals: NewSignalExtractor(logger, norm, ExtractorOptions{
			ExtraKeywords:        opts.ExtraKeywords,
			ExtraExcludedPhrases: opts.ExtraExcludedPhrases,
		}),
		severity: NewSeverityClassifier(logger),
		leverage: NewLeverageEngine(logger),
		narrator: narrator,
		logger:   logger,
		version:  opts.Version,
	}
}

// GenerateQueries exposes the query generator for callers that only
// need the search plan.
func (e *Evaluator) GenerateQueries(problemText string) domain.QueryBuckets {
	return e.queries.Generate(problemText)
}

// ClassifyResults exposes batch result classification.
func (e *Evaluator) ClassifyResults(results []domain.SearchResult) []domain.ResultCategory {
	return e.results.ClassifyAll(results)
}

// ExtractSignals exposes signal extraction.
func (e *Evaluator) ExtractSignals(results []domain.SearchResult) (domain.SignalCounts, domain.SignalProvenance) {
	return e.signals.Extract(results)
}

// Evaluate runs the full pipeline over one request and produces a
// fresh report. The context is only consulted for cancellation between
// stages; no stage blocks or performs I/O.
func (e *Evaluator) Evaluate(ctx context.Context, req domain.EvaluationRequest) (*domain.EvaluationReport, error) {
	start := time.Now()

	if strings.TrimSpace(req.ProblemText) == "" {
		return nil, domain.NewValidationError("problem_text", "must not be empty")
	}

	report := &domain.EvaluationReport{
		ID:          uuid.NewString(),
		ProblemText: req.ProblemText,
		Market:      req.Market,
		EvaluatedAt: start.UTC(),
	}

	log := e.logger.With(logging.String("evaluation_id", report.ID))
	log.Debug("starting evaluation",
		logging.Int("results", len(req.Results)),
		logging.String("version", e.version))

	report.Queries = e.queries.Generate(req.ProblemText)
	report.Categories = e.results.ClassifyAll(req.Results)
	report.Signals, report.Provenance = e.signals.Extract(req.Results)
	report.SignalLevels = report.Signals.Levels()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	level, err := e.severity.Classify(report.Signals)
	if err != nil {
		return nil, fmt.Errorf("severity classification failed: %w", err)
	}
	report.ProblemLevel = level

	flags, err := e.leverage.Detect(req.Facts, req.Market)
	if err != nil {
		return nil, fmt.Errorf("leverage detection failed: %w", err)
	}
	report.Leverage = flags

	report.Validation = SynchronizeValidation(level, flags)
	report.Narrative = e.narrator.Narrate(report)
	report.ProcessingTimeMs = time.Since(start).Milliseconds()

	log.Info("evaluation complete",
		logging.String("problem_level", string(report.ProblemLevel)),
		logging.String("validation_class", string(report.Validation.ValidationClass)),
		logging.Int64("processing_time_ms", report.ProcessingTimeMs))
	return report, nil
}
