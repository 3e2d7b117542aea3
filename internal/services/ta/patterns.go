package ta

import (
	"math"

	"ChartsAgent/internal/domain/models"
)

// Geometry thresholds for the candlestick detectors, expressed as fractions
// of the candle range (high-low).
const (
	dojiBodyMax    = 0.1
	smallBodyMax   = 0.3
	shortShadowMax = 0.1
	longShadowMin  = 0.6
	longBodyMin    = 0.6
	starBodyMax    = 0.3
)

// detectorFunc inspects the tail of a series and returns a signed match for
// the most recent candle: positive for a bullish match, negative for bearish,
// zero for no match.
type detectorFunc func(s *Series) int

type patternDetector struct {
	name       string
	minCandles int
	detect     detectorFunc
}

// patternCatalog is evaluated in this fixed order; the output lists preserve
// it. The engulfing detector is intentionally registered under both display
// names, with its sign picking the bullish or bearish side — both names
// appear whenever it fires, which downstream consumers rely on.
var patternCatalog = []patternDetector{
	{"HAMMER", 2, detectHammer},
	{"INVERTED_HAMMER", 2, detectInvertedHammer},
	{"MORNING_STAR", 3, detectMorningStar},
	{"BULLISH_ENGULFING", 2, detectEngulfing},
	{"PIERCING", 2, detectPiercing},
	{"THREE_WHITE_SOLDIERS", 3, detectThreeWhiteSoldiers},
	{"DOJI", 1, detectDoji},
	{"DRAGONFLY_DOJI", 1, detectDragonflyDoji},
	{"HANGING_MAN", 2, detectHangingMan},
	{"SHOOTING_STAR", 2, detectShootingStar},
	{"EVENING_STAR", 3, detectEveningStar},
	{"BEARISH_ENGULFING", 2, detectEngulfing},
	{"DARK_CLOUD_COVER", 2, detectDarkCloudCover},
	{"THREE_BLACK_CROWS", 3, detectThreeBlackCrows},
}

// RecognizePatterns runs every catalog detector against the trailing candles
// and classifies the matches. Detectors needing more candles than the series
// has are skipped.
func RecognizePatterns(s *Series) models.PatternResult {
	found := make([]string, 0, len(patternCatalog))
	bullish := make([]string, 0, len(patternCatalog))
	bearish := make([]string, 0, len(patternCatalog))

	for _, d := range patternCatalog {
		if s.Len() < d.minCandles {
			continue
		}
		match := d.detect(s)
		if match == 0 {
			continue
		}
		found = append(found, d.name)
		if match > 0 {
			bullish = append(bullish, d.name)
		} else {
			bearish = append(bearish, d.name)
		}
	}

	strength := models.StrengthWeak
	switch {
	case len(found) >= 3:
		strength = models.StrengthStrong
	case len(found) == 2:
		strength = models.StrengthModerate
	}

	return models.PatternResult{
		PatternsFound:   found,
		BullishPatterns: bullish,
		BearishPatterns: bearish,
		Strength:        strength,
	}
}

func bodySize(o, c float64) float64    { return math.Abs(c - o) }
func candleRange(h, l float64) float64 { return h - l }

func upperShadow(o, c, h float64) float64 {
	if top := math.Max(o, c); top < h {
		return h - top
	}
	return 0
}

func lowerShadow(o, c, l float64) float64 {
	if bottom := math.Min(o, c); bottom > l {
		return bottom - l
	}
	return 0
}

func isBullishCandle(o, c float64) bool { return c > o }
func isBearishCandle(o, c float64) bool { return c < o }

// detectHammer: small real body near the top, a lower shadow dominating the
// range, and a prior down candle to hang the reversal on.
func detectHammer(s *Series) int {
	i := s.Len() - 1
	o, h, l, c := s.Open[i], s.High[i], s.Low[i], s.Close[i]
	rng := candleRange(h, l)
	body := bodySize(o, c)
	if rng <= 0 || body == 0 || body > rng*smallBodyMax {
		return 0
	}
	if lowerShadow(o, c, l) < 2*body || lowerShadow(o, c, l) < rng*longShadowMin {
		return 0
	}
	if upperShadow(o, c, h) > rng*shortShadowMax {
		return 0
	}
	if !isBearishCandle(s.Open[i-1], s.Close[i-1]) {
		return 0
	}
	return 100
}

// detectHangingMan: hammer geometry after an up candle.
func detectHangingMan(s *Series) int {
	i := s.Len() - 1
	o, h, l, c := s.Open[i], s.High[i], s.Low[i], s.Close[i]
	rng := candleRange(h, l)
	body := bodySize(o, c)
	if rng <= 0 || body == 0 || body > rng*smallBodyMax {
		return 0
	}
	if lowerShadow(o, c, l) < 2*body || lowerShadow(o, c, l) < rng*longShadowMin {
		return 0
	}
	if upperShadow(o, c, h) > rng*shortShadowMax {
		return 0
	}
	if !isBullishCandle(s.Open[i-1], s.Close[i-1]) {
		return 0
	}
	return -100
}

// detectInvertedHammer: small real body near the bottom with a dominant upper
// shadow after a down candle.
func detectInvertedHammer(s *Series) int {
	i := s.Len() - 1
	o, h, l, c := s.Open[i], s.High[i], s.Low[i], s.Close[i]
	rng := candleRange(h, l)
	body := bodySize(o, c)
	if rng <= 0 || body == 0 || body > rng*smallBodyMax {
		return 0
	}
	if upperShadow(o, c, h) < 2*body || upperShadow(o, c, h) < rng*longShadowMin {
		return 0
	}
	if lowerShadow(o, c, l) > rng*shortShadowMax {
		return 0
	}
	if !isBearishCandle(s.Open[i-1], s.Close[i-1]) {
		return 0
	}
	return 100
}

// detectShootingStar: inverted-hammer geometry after an up candle.
func detectShootingStar(s *Series) int {
	i := s.Len() - 1
	o, h, l, c := s.Open[i], s.High[i], s.Low[i], s.Close[i]
	rng := candleRange(h, l)
	body := bodySize(o, c)
	if rng <= 0 || body == 0 || body > rng*smallBodyMax {
		return 0
	}
	if upperShadow(o, c, h) < 2*body || upperShadow(o, c, h) < rng*longShadowMin {
		return 0
	}
	if lowerShadow(o, c, l) > rng*shortShadowMax {
		return 0
	}
	if !isBullishCandle(s.Open[i-1], s.Close[i-1]) {
		return 0
	}
	return -100
}

func detectDoji(s *Series) int {
	i := s.Len() - 1
	if bodySize(s.Open[i], s.Close[i]) <= candleRange(s.High[i], s.Low[i])*dojiBodyMax {
		return 100
	}
	return 0
}

func detectDragonflyDoji(s *Series) int {
	i := s.Len() - 1
	o, h, l, c := s.Open[i], s.High[i], s.Low[i], s.Close[i]
	rng := candleRange(h, l)
	if rng <= 0 || bodySize(o, c) > rng*dojiBodyMax {
		return 0
	}
	if upperShadow(o, c, h) > rng*shortShadowMax || lowerShadow(o, c, l) < rng*longShadowMin {
		return 0
	}
	return 100
}

// detectEngulfing backs both the BULLISH_ENGULFING and BEARISH_ENGULFING
// catalog entries; the sign of the result distinguishes the two.
func detectEngulfing(s *Series) int {
	i := s.Len() - 1
	o, c := s.Open[i], s.Close[i]
	o1, c1 := s.Open[i-1], s.Close[i-1]
	if isBearishCandle(o1, c1) && isBullishCandle(o, c) && o < c1 && c > o1 {
		return 100
	}
	if isBullishCandle(o1, c1) && isBearishCandle(o, c) && o > c1 && c < o1 {
		return -100
	}
	return 0
}

// detectPiercing: a bullish candle opening below the prior low and closing
// above the midpoint of the prior bearish body without engulfing it.
func detectPiercing(s *Series) int {
	i := s.Len() - 1
	o, c := s.Open[i], s.Close[i]
	o1, c1, l1 := s.Open[i-1], s.Close[i-1], s.Low[i-1]
	if !isBearishCandle(o1, c1) || !isBullishCandle(o, c) {
		return 0
	}
	mid := (o1 + c1) / 2
	if o < l1 && c > mid && c < o1 {
		return 100
	}
	return 0
}

// detectDarkCloudCover: the bearish mirror of piercing.
func detectDarkCloudCover(s *Series) int {
	i := s.Len() - 1
	o, c := s.Open[i], s.Close[i]
	o1, c1, h1 := s.Open[i-1], s.Close[i-1], s.High[i-1]
	if !isBullishCandle(o1, c1) || !isBearishCandle(o, c) {
		return 0
	}
	mid := (o1 + c1) / 2
	if o > h1 && c < mid && c > o1 {
		return -100
	}
	return 0
}

// detectMorningStar: long bearish candle, a small star gapping below its
// close, then a bullish candle closing above the first body's midpoint.
func detectMorningStar(s *Series) int {
	i := s.Len() - 1
	firstO, firstH, firstL, firstC := s.Open[i-2], s.High[i-2], s.Low[i-2], s.Close[i-2]
	starO, starC := s.Open[i-1], s.Close[i-1]
	lastO, lastC := s.Open[i], s.Close[i]

	firstBody := bodySize(firstO, firstC)
	firstRng := candleRange(firstH, firstL)
	if firstRng <= 0 || !isBearishCandle(firstO, firstC) || firstBody < firstRng*longBodyMin {
		return 0
	}
	if bodySize(starO, starC) > firstBody*starBodyMax || math.Max(starO, starC) >= firstC {
		return 0
	}
	if !isBullishCandle(lastO, lastC) || lastC <= (firstO+firstC)/2 {
		return 0
	}
	return 100
}

// detectEveningStar: the bearish mirror of morning star.
func detectEveningStar(s *Series) int {
	i := s.Len() - 1
	firstO, firstH, firstL, firstC := s.Open[i-2], s.High[i-2], s.Low[i-2], s.Close[i-2]
	starO, starC := s.Open[i-1], s.Close[i-1]
	lastO, lastC := s.Open[i], s.Close[i]

	firstBody := bodySize(firstO, firstC)
	firstRng := candleRange(firstH, firstL)
	if firstRng <= 0 || !isBullishCandle(firstO, firstC) || firstBody < firstRng*longBodyMin {
		return 0
	}
	if bodySize(starO, starC) > firstBody*starBodyMax || math.Min(starO, starC) <= firstC {
		return 0
	}
	if !isBearishCandle(lastO, lastC) || lastC >= (firstO+firstC)/2 {
		return 0
	}
	return -100
}

// detectThreeWhiteSoldiers: three consecutive bullish candles, each opening
// within the prior body and closing at a new high.
func detectThreeWhiteSoldiers(s *Series) int {
	i := s.Len() - 1
	for k := i - 2; k <= i; k++ {
		if !isBullishCandle(s.Open[k], s.Close[k]) {
			return 0
		}
	}
	for k := i - 1; k <= i; k++ {
		if s.Close[k] <= s.Close[k-1] {
			return 0
		}
		if s.Open[k] <= s.Open[k-1] || s.Open[k] >= s.Close[k-1] {
			return 0
		}
	}
	return 100
}

// detectThreeBlackCrows: three consecutive bearish candles, each opening
// within the prior body and closing at a new low.
func detectThreeBlackCrows(s *Series) int {
	i := s.Len() - 1
	for k := i - 2; k <= i; k++ {
		if !isBearishCandle(s.Open[k], s.Close[k]) {
			return 0
		}
	}
	for k := i - 1; k <= i; k++ {
		if s.Close[k] >= s.Close[k-1] {
			return 0
		}
		if s.Open[k] >= s.Open[k-1] || s.Open[k] <= s.Close[k-1] {
			return 0
		}
	}
	return -100
}
