package ta

import (
	"testing"

	"ChartsAgent/internal/domain/models"
)

func TestIndicatorsShortSeries(t *testing.T) {
	s := mustSeries(t, risingCandles(5))
	ind := ComputeIndicators(s)

	undefined := map[string]*float64{
		"sma_20":      ind.SMA20,
		"sma_50":      ind.SMA50,
		"sma_200":     ind.SMA200,
		"ema_12":      ind.EMA12,
		"ema_26":      ind.EMA26,
		"rsi_14":      ind.RSI14,
		"macd":        ind.MACD,
		"macd_signal": ind.MACDSignal,
		"stoch_k":     ind.StochK,
		"stoch_d":     ind.StochD,
		"bb_upper":    ind.BBUpper,
		"atr_14":      ind.ATR14,
	}
	for key, v := range undefined {
		if v != nil {
			t.Fatalf("%s should be undefined for 5 candles, got %v", key, *v)
		}
	}
	if ind.OBV == nil {
		t.Fatalf("obv should always be defined for a non-empty series")
	}
	if ind.VWAP == nil {
		t.Fatalf("vwap should be defined when total volume > 0")
	}
}

func TestIndicatorsWindowGating(t *testing.T) {
	ind := ComputeIndicators(mustSeries(t, risingCandles(199)))
	if ind.SMA200 != nil {
		t.Fatalf("sma_200 should be undefined for 199 candles")
	}
	if ind.SMA50 == nil || ind.SMA20 == nil || ind.EMA12 == nil || ind.EMA26 == nil {
		t.Fatalf("shorter moving averages should be defined for 199 candles")
	}
	if ind.RSI14 == nil || ind.MACD == nil || ind.MACDSignal == nil || ind.MACDHistogram == nil {
		t.Fatalf("momentum indicators should be defined for 199 candles")
	}
	if ind.StochK == nil || ind.StochD == nil || ind.BBUpper == nil || ind.BBMiddle == nil || ind.BBLower == nil || ind.ATR14 == nil {
		t.Fatalf("stochastic, bollinger and atr should be defined for 199 candles")
	}

	ind = ComputeIndicators(mustSeries(t, risingCandles(200)))
	if ind.SMA200 == nil {
		t.Fatalf("sma_200 should be defined for 200 candles")
	}
	if got, want := ind.DefinedCount(), 17; got != want {
		t.Fatalf("defined count = %d, want %d", got, want)
	}
}

func TestRisingSeriesOrdering(t *testing.T) {
	s := mustSeries(t, risingCandles(200))
	ind := ComputeIndicators(s)

	if !(*ind.SMA50 > *ind.SMA200) {
		t.Fatalf("expected sma_50 (%v) > sma_200 (%v) for rising closes", *ind.SMA50, *ind.SMA200)
	}
	if !(s.LatestClose() > *ind.SMA50) {
		t.Fatalf("expected close (%v) > sma_50 (%v)", s.LatestClose(), *ind.SMA50)
	}
	if !(*ind.EMA12 > *ind.EMA26) {
		t.Fatalf("expected ema_12 (%v) > ema_26 (%v)", *ind.EMA12, *ind.EMA26)
	}
	if !(*ind.RSI14 > 70) {
		t.Fatalf("expected rsi_14 > 70 for monotone rise, got %v", *ind.RSI14)
	}
}

func TestVWAPFlatSeries(t *testing.T) {
	ind := ComputeIndicators(mustSeries(t, flatCandles(10, 10, 5)))
	if ind.VWAP == nil || !almostEqual(*ind.VWAP, 10, 1e-9) {
		t.Fatalf("vwap of flat series should equal the price, got %v", ind.VWAP)
	}
}

func TestVWAPZeroVolume(t *testing.T) {
	ind := ComputeIndicators(mustSeries(t, flatCandles(10, 10, 0)))
	if ind.VWAP != nil {
		t.Fatalf("vwap should be undefined when total volume is zero, got %v", *ind.VWAP)
	}
	if ind.OBV == nil {
		t.Fatalf("obv should still be defined with zero volume")
	}
}

func TestOBVSingleCandle(t *testing.T) {
	ind := ComputeIndicators(mustSeries(t, []models.Candle{
		{Timestamp: 0, Open: 10, High: 12, Low: 9, Close: 11, Volume: 100},
	}))
	if ind.OBV == nil || *ind.OBV != 100 {
		t.Fatalf("obv for a single candle should equal its volume, got %v", ind.OBV)
	}
	if ind.VWAP == nil || !almostEqual(*ind.VWAP, 11, 1e-9) {
		t.Fatalf("vwap for a single candle should equal its close, got %v", ind.VWAP)
	}
}
