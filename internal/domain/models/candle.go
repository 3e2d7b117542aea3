package models

// DefaultSymbol is used when the input batch carries no symbol.
const DefaultSymbol = "UNKNOWN"

// Candle is one OHLCV bar with a millisecond epoch timestamp.
type Candle struct {
	Timestamp int64
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	Symbol    string
}

// CandleRecord is the wire-level candle as decoded from the request JSON.
// Required numeric fields are pointers so an absent field is distinguishable
// from a legitimate zero value.
type CandleRecord struct {
	Timestamp *int64   `json:"timestamp" validate:"required"`
	Open      *float64 `json:"open" validate:"required"`
	High      *float64 `json:"high" validate:"required"`
	Low       *float64 `json:"low" validate:"required"`
	Close     *float64 `json:"close" validate:"required"`
	Volume    *float64 `json:"volume" validate:"required"`
	Symbol    string   `json:"symbol"`
}

// ToCandle converts a validated wire record into a domain candle.
func (r CandleRecord) ToCandle() Candle {
	return Candle{
		Timestamp: *r.Timestamp,
		Open:      *r.Open,
		High:      *r.High,
		Low:       *r.Low,
		Close:     *r.Close,
		Volume:    *r.Volume,
		Symbol:    r.Symbol,
	}
}

// ToCandles converts a validated batch of wire records into domain candles.
func ToCandles(records []CandleRecord) []Candle {
	candles := make([]Candle, len(records))
	for i, r := range records {
		candles[i] = r.ToCandle()
	}
	return candles
}
