package ta

import (
	"sort"

	"ChartsAgent/internal/domain/models"
)

// Series is the time-ascending projection of a candle batch into five aligned
// numeric columns. It is owned by a single analysis invocation and holds no
// state beyond it.
type Series struct {
	Symbol     string
	Timestamps []int64
	Open       []float64
	High       []float64
	Low        []float64
	Close      []float64
	Volume     []float64
}

// NewSeries validates and normalizes a candle batch. The batch need not be
// sorted; candles are ordered ascending by timestamp with a stable sort, so
// ties keep their original relative order. The symbol is resolved from the
// first candle as given, before sorting.
func NewSeries(candles []models.Candle) (*Series, error) {
	if len(candles) == 0 {
		return nil, models.InvalidInput("empty candle batch")
	}

	symbol := candles[0].Symbol
	if symbol == "" {
		symbol = models.DefaultSymbol
	}

	sorted := make([]models.Candle, len(candles))
	copy(sorted, candles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	s := &Series{
		Symbol:     symbol,
		Timestamps: make([]int64, len(sorted)),
		Open:       make([]float64, len(sorted)),
		High:       make([]float64, len(sorted)),
		Low:        make([]float64, len(sorted)),
		Close:      make([]float64, len(sorted)),
		Volume:     make([]float64, len(sorted)),
	}
	for i, c := range sorted {
		s.Timestamps[i] = c.Timestamp
		s.Open[i] = c.Open
		s.High[i] = c.High
		s.Low[i] = c.Low
		s.Close[i] = c.Close
		s.Volume[i] = c.Volume
	}
	return s, nil
}

// Len returns the number of candles in the series.
func (s *Series) Len() int { return len(s.Close) }

// LatestTimestamp returns the millisecond timestamp of the newest candle.
func (s *Series) LatestTimestamp() int64 { return s.Timestamps[len(s.Timestamps)-1] }

// LatestClose returns the close of the newest candle.
func (s *Series) LatestClose() float64 { return s.Close[len(s.Close)-1] }
