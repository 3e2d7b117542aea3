package ta

import (
	"math"

	talib "github.com/markcheno/go-talib"

	"ChartsAgent/internal/domain/models"
)

// Indicator periods. These match the published indicator keys (sma_20,
// rsi_14, ...), so changing one changes the output contract.
const (
	smaShortPeriod   = 20
	smaMidPeriod     = 50
	smaLongPeriod    = 200
	emaFastPeriod    = 12
	emaSlowPeriod    = 26
	rsiPeriod        = 14
	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9
	stochFastK       = 14
	stochSlowK       = 3
	stochSlowD       = 3
	bbPeriod         = 20
	bbDeviations     = 2.0
	atrPeriod        = 14
)

// ComputeIndicators evaluates the full indicator catalog over the series and
// keeps only the most recent value of each. Every computation is gated on the
// exact lookback the indicator needs, so short series leave the key undefined
// instead of producing a bogus value.
func ComputeIndicators(s *Series) models.IndicatorSnapshot {
	var ind models.IndicatorSnapshot
	n := s.Len()

	// Trend
	if n >= smaShortPeriod {
		ind.SMA20 = lastFinite(talib.Sma(s.Close, smaShortPeriod))
	}
	if n >= smaMidPeriod {
		ind.SMA50 = lastFinite(talib.Sma(s.Close, smaMidPeriod))
	}
	if n >= smaLongPeriod {
		ind.SMA200 = lastFinite(talib.Sma(s.Close, smaLongPeriod))
	}
	if n >= emaFastPeriod {
		ind.EMA12 = lastFinite(talib.Ema(s.Close, emaFastPeriod))
	}
	if n >= emaSlowPeriod {
		ind.EMA26 = lastFinite(talib.Ema(s.Close, emaSlowPeriod))
	}

	// Momentum
	if n >= rsiPeriod+1 {
		ind.RSI14 = lastFinite(talib.Rsi(s.Close, rsiPeriod))
	}
	if n >= macdSlowPeriod+macdSignalPeriod-1 {
		line, signal, hist := talib.Macd(s.Close, macdFastPeriod, macdSlowPeriod, macdSignalPeriod)
		ind.MACD = lastFinite(line)
		ind.MACDSignal = lastFinite(signal)
		ind.MACDHistogram = lastFinite(hist)
	}
	if n >= stochFastK+stochSlowK+stochSlowD-2 {
		k, d := talib.Stoch(s.High, s.Low, s.Close, stochFastK, stochSlowK, talib.SMA, stochSlowD, talib.SMA)
		ind.StochK = lastFinite(k)
		ind.StochD = lastFinite(d)
	}

	// Volatility
	if n >= bbPeriod {
		upper, middle, lower := talib.BBands(s.Close, bbPeriod, bbDeviations, bbDeviations, talib.SMA)
		ind.BBUpper = lastFinite(upper)
		ind.BBMiddle = lastFinite(middle)
		ind.BBLower = lastFinite(lower)
	}
	if n >= atrPeriod+1 {
		ind.ATR14 = lastFinite(talib.Atr(s.High, s.Low, s.Close, atrPeriod))
	}

	// Volume
	ind.OBV = lastFinite(talib.Obv(s.Close, s.Volume))
	ind.VWAP = cumulativeVWAP(s.Close, s.Volume)

	return ind
}

// cumulativeVWAP is sum(close*volume)/sum(volume) over the whole series.
// Undefined when total volume is zero.
func cumulativeVWAP(close, volume []float64) *float64 {
	var priceVolume, totalVolume float64
	for i := range close {
		priceVolume += close[i] * volume[i]
		totalVolume += volume[i]
	}
	if totalVolume == 0 {
		return nil
	}
	return finite(priceVolume / totalVolume)
}

func lastFinite(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	return finite(values[len(values)-1])
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
