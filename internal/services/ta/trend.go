package ta

import (
	"ChartsAgent/internal/domain/models"
)

// Trend strengths reported per rule.
const (
	trendStrengthSMA     = 75.0
	trendStrengthEMA     = 60.0
	trendStrengthNeutral = 50.0
)

// AnalyzeTrend derives trend direction and strength from moving-average
// relationships and computes classic floor-trader pivot levels from the most
// recent candle. The SMA rule wins when both SMAs are defined; the EMA pair
// is only consulted when the SMA pair is not available.
func AnalyzeTrend(s *Series, ind models.IndicatorSnapshot) models.TrendResult {
	direction := models.TrendNeutral
	strength := trendStrengthNeutral
	lastClose := s.LatestClose()

	switch {
	case ind.SMA50 != nil && ind.SMA200 != nil:
		if lastClose > *ind.SMA50 && *ind.SMA50 > *ind.SMA200 {
			direction = models.TrendBullish
			strength = trendStrengthSMA
		} else if lastClose < *ind.SMA50 && *ind.SMA50 < *ind.SMA200 {
			direction = models.TrendBearish
			strength = trendStrengthSMA
		}
	case ind.EMA12 != nil && ind.EMA26 != nil:
		if *ind.EMA12 > *ind.EMA26 {
			direction = models.TrendBullish
			strength = trendStrengthEMA
		} else if *ind.EMA12 < *ind.EMA26 {
			direction = models.TrendBearish
			strength = trendStrengthEMA
		}
	}

	i := s.Len() - 1
	high, low := s.High[i], s.Low[i]
	pivot := (high + low + lastClose) / 3
	pp := models.PivotPoints{
		Pivot: pivot,
		R1:    2*pivot - low,
		R2:    pivot + (high - low),
		R3:    high + 2*(pivot-low),
		S1:    2*pivot - high,
		S2:    pivot - (high - low),
		S3:    low - 2*(high-pivot),
	}

	return models.TrendResult{
		TrendDirection:   direction,
		TrendStrength:    strength,
		SupportLevels:    []float64{pp.S1, pp.S2, pp.S3},
		ResistanceLevels: []float64{pp.R1, pp.R2, pp.R3},
		PivotPoints:      pp,
	}
}
