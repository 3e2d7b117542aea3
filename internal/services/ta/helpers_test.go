package ta

import (
	"math"
	"testing"

	"ChartsAgent/internal/domain/models"
)

func fptr(v float64) *float64 { return &v }

// risingCandles builds n one-minute candles with close = 100 + i.
func risingCandles(n int) []models.Candle {
	candles := make([]models.Candle, n)
	for i := 0; i < n; i++ {
		close := 100.0 + float64(i)
		candles[i] = models.Candle{
			Timestamp: int64(i) * 60_000,
			Open:      close - 0.5,
			High:      close + 1,
			Low:       close - 1,
			Close:     close,
			Volume:    1000,
		}
	}
	return candles
}

func flatCandles(n int, price, volume float64) []models.Candle {
	candles := make([]models.Candle, n)
	for i := 0; i < n; i++ {
		candles[i] = models.Candle{
			Timestamp: int64(i) * 60_000,
			Open:      price,
			High:      price,
			Low:       price,
			Close:     price,
			Volume:    volume,
		}
	}
	return candles
}

func mustSeries(t *testing.T, candles []models.Candle) *Series {
	t.Helper()
	s, err := NewSeries(candles)
	if err != nil {
		t.Fatalf("NewSeries: %v", err)
	}
	return s
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
