package usecase

import (
	"ChartsAgent/internal/domain/models"
	"ChartsAgent/internal/services/ta"
	"ChartsAgent/pkg/config"
	"ChartsAgent/pkg/logger"
)

// Analyzer runs the five-stage analysis pipeline over one candle batch:
// normalize, indicators, patterns, trend, then signals and confidence.
// It holds no per-call state, so a single instance is safe to reuse across
// invocations with different batches.
type Analyzer struct {
	logger     *logger.Logger
	minPeriods int
}

func NewAnalyzer(l *logger.Logger, cfg *config.Config) *Analyzer {
	return &Analyzer{logger: l, minPeriods: cfg.Analysis.MinPeriods}
}

// Analyze computes the full technical snapshot for the given batch. The batch
// need not be sorted but must be non-empty; any error aborts the invocation
// with no partial result.
func (a *Analyzer) Analyze(candles []models.Candle) (*models.AnalysisResult, error) {
	series, err := ta.NewSeries(candles)
	if err != nil {
		return nil, err
	}

	indicators := ta.ComputeIndicators(series)
	patterns := ta.RecognizePatterns(series)
	trend := ta.AnalyzeTrend(series, indicators)
	signals := ta.GenerateSignals(indicators, patterns, trend)
	confidence := ta.ConfidenceScore(indicators, patterns, trend, series.Len(), a.minPeriods)

	result := &models.AnalysisResult{
		Symbol:       series.Symbol,
		Timestamp:    series.LatestTimestamp(),
		CurrentPrice: series.LatestClose(),
		Indicators:   indicators,
		Patterns:     patterns,
		Trend:        trend,
		Signals:      signals,
		Confidence:   confidence,
	}

	a.logger.Debug("analysis complete",
		logger.String("symbol", series.Symbol),
		logger.Int64("timestamp", series.LatestTimestamp()),
		logger.Int("candles", series.Len()),
		logger.String("overall", signals[models.SignalKeyOverall]),
		logger.Float64("confidence", confidence),
	)
	return result, nil
}
