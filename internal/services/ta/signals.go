package ta

import (
	"math"

	"ChartsAgent/internal/domain/models"
)

// RSI thresholds for the buy/sell vote.
const (
	rsiOversold   = 30.0
	rsiOverbought = 70.0
)

// confidenceIndicatorDivisor is the historical coverage divisor. It stays at
// 12 for output compatibility even though the snapshot carries 17 keys.
const confidenceIndicatorDivisor = 12.0

// GenerateSignals maps indicator, pattern and trend outputs to per-component
// buy/sell/hold votes plus an overall majority vote. Component keys whose
// inputs are undefined are omitted; the overall vote is always present and
// resolves ties (including zero defined components) to hold.
func GenerateSignals(ind models.IndicatorSnapshot, patterns models.PatternResult, trend models.TrendResult) map[string]string {
	signals := make(map[string]string, 6)

	if ind.RSI14 != nil {
		switch {
		case *ind.RSI14 < rsiOversold:
			signals[models.SignalKeyRSI] = models.SignalBuy
		case *ind.RSI14 > rsiOverbought:
			signals[models.SignalKeyRSI] = models.SignalSell
		default:
			signals[models.SignalKeyRSI] = models.SignalHold
		}
	}

	if ind.MACD != nil && ind.MACDSignal != nil {
		switch {
		case *ind.MACD > *ind.MACDSignal:
			signals[models.SignalKeyMACD] = models.SignalBuy
		case *ind.MACD < *ind.MACDSignal:
			signals[models.SignalKeyMACD] = models.SignalSell
		default:
			signals[models.SignalKeyMACD] = models.SignalHold
		}
	}

	if ind.BBUpper != nil && ind.BBLower != nil {
		// VWAP stands in for the current price; when it is undefined the
		// comparison price degrades to zero.
		price := 0.0
		if ind.VWAP != nil {
			price = *ind.VWAP
		}
		switch {
		case price <= *ind.BBLower:
			signals[models.SignalKeyBollinger] = models.SignalBuy
		case price >= *ind.BBUpper:
			signals[models.SignalKeyBollinger] = models.SignalSell
		default:
			signals[models.SignalKeyBollinger] = models.SignalHold
		}
	}

	switch {
	case len(patterns.BullishPatterns) > len(patterns.BearishPatterns):
		signals[models.SignalKeyPattern] = models.SignalBuy
	case len(patterns.BearishPatterns) > len(patterns.BullishPatterns):
		signals[models.SignalKeyPattern] = models.SignalSell
	default:
		signals[models.SignalKeyPattern] = models.SignalHold
	}

	switch trend.TrendDirection {
	case models.TrendBullish:
		signals[models.SignalKeyTrend] = models.SignalBuy
	case models.TrendBearish:
		signals[models.SignalKeyTrend] = models.SignalSell
	default:
		signals[models.SignalKeyTrend] = models.SignalHold
	}

	buyCount, sellCount := 0, 0
	for _, v := range signals {
		switch v {
		case models.SignalBuy:
			buyCount++
		case models.SignalSell:
			sellCount++
		}
	}
	switch {
	case buyCount > sellCount:
		signals[models.SignalKeyOverall] = models.SignalBuy
	case sellCount > buyCount:
		signals[models.SignalKeyOverall] = models.SignalSell
	default:
		signals[models.SignalKeyOverall] = models.SignalHold
	}

	return signals
}

// ConfidenceScore aggregates data sufficiency, indicator coverage, pattern
// strength and trend strength into a 0-100 score, clamped at 100.
func ConfidenceScore(ind models.IndicatorSnapshot, patterns models.PatternResult, trend models.TrendResult, dataPoints, minPeriods int) float64 {
	if minPeriods <= 0 {
		minPeriods = 200
	}

	score := math.Min(float64(dataPoints), float64(minPeriods)) / float64(minPeriods) * 30

	score += float64(ind.DefinedCount()) / confidenceIndicatorDivisor * 30

	switch patterns.Strength {
	case models.StrengthStrong:
		score += 20
	case models.StrengthModerate:
		score += 12
	default:
		score += 5
	}

	score += trend.TrendStrength / 100 * 20

	return math.Min(score, 100)
}
