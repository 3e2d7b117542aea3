package models

// Signal values emitted per component and for the overall vote.
const (
	SignalBuy  = "buy"
	SignalSell = "sell"
	SignalHold = "hold"
)

// Keys of the signals mapping in an AnalysisResult.
const (
	SignalKeyRSI       = "rsi"
	SignalKeyMACD      = "macd"
	SignalKeyBollinger = "bollinger"
	SignalKeyPattern   = "pattern"
	SignalKeyTrend     = "trend"
	SignalKeyOverall   = "overall"
)

// Pattern strength labels.
const (
	StrengthWeak     = "weak"
	StrengthModerate = "moderate"
	StrengthStrong   = "strong"
)

// Trend directions.
const (
	TrendBullish = "bullish"
	TrendBearish = "bearish"
	TrendNeutral = "neutral"
)

// IndicatorSnapshot holds the latest value of every indicator in the catalog.
// A nil entry means the value is undefined for the given series, either
// because the series is shorter than the indicator's lookback or because the
// computation did not produce a finite number.
type IndicatorSnapshot struct {
	// Trend
	SMA20  *float64 `json:"sma_20"`
	SMA50  *float64 `json:"sma_50"`
	SMA200 *float64 `json:"sma_200"`
	EMA12  *float64 `json:"ema_12"`
	EMA26  *float64 `json:"ema_26"`

	// Momentum
	RSI14         *float64 `json:"rsi_14"`
	MACD          *float64 `json:"macd"`
	MACDSignal    *float64 `json:"macd_signal"`
	MACDHistogram *float64 `json:"macd_histogram"`
	StochK        *float64 `json:"stoch_k"`
	StochD        *float64 `json:"stoch_d"`

	// Volatility
	BBUpper  *float64 `json:"bb_upper"`
	BBMiddle *float64 `json:"bb_middle"`
	BBLower  *float64 `json:"bb_lower"`
	ATR14    *float64 `json:"atr_14"`

	// Volume
	OBV  *float64 `json:"obv"`
	VWAP *float64 `json:"vwap"`
}

// DefinedCount returns how many indicators carry a defined value.
func (s IndicatorSnapshot) DefinedCount() int {
	count := 0
	for _, v := range []*float64{
		s.SMA20, s.SMA50, s.SMA200, s.EMA12, s.EMA26,
		s.RSI14, s.MACD, s.MACDSignal, s.MACDHistogram, s.StochK, s.StochD,
		s.BBUpper, s.BBMiddle, s.BBLower, s.ATR14,
		s.OBV, s.VWAP,
	} {
		if v != nil {
			count++
		}
	}
	return count
}

// PatternResult lists the candlestick patterns matched on the latest candles.
// The engulfing detector is registered under two display names, so both
// BULLISH_ENGULFING and BEARISH_ENGULFING appear whenever it fires; consumers
// depend on both labels being present.
type PatternResult struct {
	PatternsFound   []string `json:"patterns_found"`
	BullishPatterns []string `json:"bullish_patterns"`
	BearishPatterns []string `json:"bearish_patterns"`
	Strength        string   `json:"strength"`
}

// PivotPoints are the classic floor-trader levels from a single candle.
type PivotPoints struct {
	Pivot float64 `json:"pivot"`
	R1    float64 `json:"r1"`
	R2    float64 `json:"r2"`
	R3    float64 `json:"r3"`
	S1    float64 `json:"s1"`
	S2    float64 `json:"s2"`
	S3    float64 `json:"s3"`
}

// TrendResult describes trend direction/strength and support/resistance levels.
type TrendResult struct {
	TrendDirection   string      `json:"trend_direction"`
	TrendStrength    float64     `json:"trend_strength"`
	SupportLevels    []float64   `json:"support_levels"`
	ResistanceLevels []float64   `json:"resistance_levels"`
	PivotPoints      PivotPoints `json:"pivot_points"`
}

// AnalysisResult is the complete output of one analysis invocation.
type AnalysisResult struct {
	Symbol       string            `json:"symbol"`
	Timestamp    int64             `json:"timestamp"`
	CurrentPrice float64           `json:"current_price"`
	Indicators   IndicatorSnapshot `json:"indicators"`
	Patterns     PatternResult     `json:"patterns"`
	Trend        TrendResult       `json:"trend"`
	Signals      map[string]string `json:"signals"`
	Confidence   float64           `json:"confidence"`
}
