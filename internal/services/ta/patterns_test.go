package ta

import (
	"reflect"
	"testing"

	"ChartsAgent/internal/domain/models"
)

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}

func TestEngulfingDualRegistration(t *testing.T) {
	// A bullish engulfing shape must surface under BOTH display names.
	s := mustSeries(t, []models.Candle{
		{Timestamp: 1, Open: 105, High: 106, Low: 99, Close: 100},
		{Timestamp: 2, Open: 99, High: 108, Low: 98, Close: 107},
	})
	res := RecognizePatterns(s)

	wantFound := []string{"BULLISH_ENGULFING", "BEARISH_ENGULFING"}
	if !reflect.DeepEqual(res.PatternsFound, wantFound) {
		t.Fatalf("patterns_found = %v, want %v", res.PatternsFound, wantFound)
	}
	if !reflect.DeepEqual(res.BullishPatterns, wantFound) {
		t.Fatalf("bullish_patterns = %v, want %v", res.BullishPatterns, wantFound)
	}
	if len(res.BearishPatterns) != 0 {
		t.Fatalf("bearish_patterns = %v, want empty", res.BearishPatterns)
	}
	if res.Strength != models.StrengthModerate {
		t.Fatalf("strength = %q, want moderate", res.Strength)
	}
}

func TestBearishEngulfingClassification(t *testing.T) {
	s := mustSeries(t, []models.Candle{
		{Timestamp: 1, Open: 100, High: 106, Low: 99, Close: 105},
		{Timestamp: 2, Open: 106, High: 107, Low: 97, Close: 98},
	})
	res := RecognizePatterns(s)

	if !contains(res.BearishPatterns, "BULLISH_ENGULFING") || !contains(res.BearishPatterns, "BEARISH_ENGULFING") {
		t.Fatalf("both engulfing labels should classify bearish, got %v", res.BearishPatterns)
	}
	if len(res.BullishPatterns) != 0 {
		t.Fatalf("bullish_patterns = %v, want empty", res.BullishPatterns)
	}
}

func TestDoji(t *testing.T) {
	s := mustSeries(t, []models.Candle{
		{Timestamp: 1, Open: 10, High: 11, Low: 9, Close: 10},
	})
	res := RecognizePatterns(s)

	if !reflect.DeepEqual(res.PatternsFound, []string{"DOJI"}) {
		t.Fatalf("patterns_found = %v, want [DOJI]", res.PatternsFound)
	}
	if res.Strength != models.StrengthWeak {
		t.Fatalf("strength = %q, want weak", res.Strength)
	}
}

func TestDragonflyDoji(t *testing.T) {
	s := mustSeries(t, []models.Candle{
		{Timestamp: 1, Open: 10, High: 10.05, Low: 9, Close: 10},
	})
	res := RecognizePatterns(s)

	want := []string{"DOJI", "DRAGONFLY_DOJI"}
	if !reflect.DeepEqual(res.PatternsFound, want) {
		t.Fatalf("patterns_found = %v, want %v", res.PatternsFound, want)
	}
	if res.Strength != models.StrengthModerate {
		t.Fatalf("strength = %q, want moderate", res.Strength)
	}
}

func TestHammer(t *testing.T) {
	s := mustSeries(t, []models.Candle{
		{Timestamp: 1, Open: 11, High: 11.2, Low: 10.4, Close: 10.5},
		{Timestamp: 2, Open: 10, High: 10.12, Low: 8, Close: 10.1},
	})
	res := RecognizePatterns(s)

	if !contains(res.PatternsFound, "HAMMER") {
		t.Fatalf("expected HAMMER in %v", res.PatternsFound)
	}
	if !contains(res.BullishPatterns, "HAMMER") {
		t.Fatalf("HAMMER should classify bullish, got %v", res.BullishPatterns)
	}
}

func TestThreeWhiteSoldiers(t *testing.T) {
	s := mustSeries(t, []models.Candle{
		{Timestamp: 1, Open: 10, High: 12.5, Low: 9.8, Close: 12},
		{Timestamp: 2, Open: 11, High: 13.4, Low: 10.8, Close: 13},
		{Timestamp: 3, Open: 12, High: 14.5, Low: 11.8, Close: 14},
	})
	res := RecognizePatterns(s)

	if !contains(res.BullishPatterns, "THREE_WHITE_SOLDIERS") {
		t.Fatalf("expected THREE_WHITE_SOLDIERS bullish, got %v", res.BullishPatterns)
	}
}

func TestThreeBlackCrows(t *testing.T) {
	s := mustSeries(t, []models.Candle{
		{Timestamp: 1, Open: 14, High: 14.2, Low: 11.8, Close: 12},
		{Timestamp: 2, Open: 13, High: 13.2, Low: 10.8, Close: 11},
		{Timestamp: 3, Open: 12, High: 12.2, Low: 9.8, Close: 10},
	})
	res := RecognizePatterns(s)

	if !contains(res.BearishPatterns, "THREE_BLACK_CROWS") {
		t.Fatalf("expected THREE_BLACK_CROWS bearish, got %v", res.BearishPatterns)
	}
}

func TestMorningStar(t *testing.T) {
	s := mustSeries(t, []models.Candle{
		{Timestamp: 1, Open: 20, High: 20.2, Low: 13.8, Close: 14},
		{Timestamp: 2, Open: 13.5, High: 13.6, Low: 13, Close: 13.2},
		{Timestamp: 3, Open: 13.4, High: 18.2, Low: 13.3, Close: 18},
	})
	res := RecognizePatterns(s)

	if !contains(res.BullishPatterns, "MORNING_STAR") {
		t.Fatalf("expected MORNING_STAR bullish, got %v", res.BullishPatterns)
	}
}

func TestEveningStar(t *testing.T) {
	s := mustSeries(t, []models.Candle{
		{Timestamp: 1, Open: 14, High: 20.2, Low: 13.8, Close: 20},
		{Timestamp: 2, Open: 20.5, High: 21, Low: 20.4, Close: 20.8},
		{Timestamp: 3, Open: 20.6, High: 20.7, Low: 15.8, Close: 16},
	})
	res := RecognizePatterns(s)

	if !contains(res.BearishPatterns, "EVENING_STAR") {
		t.Fatalf("expected EVENING_STAR bearish, got %v", res.BearishPatterns)
	}
}

func TestNoPatternsWeakStrength(t *testing.T) {
	s := mustSeries(t, []models.Candle{
		{Timestamp: 1, Open: 10, High: 12, Low: 9, Close: 11, Volume: 100},
	})
	res := RecognizePatterns(s)

	if len(res.PatternsFound) != 0 {
		t.Fatalf("expected no patterns, got %v", res.PatternsFound)
	}
	if res.Strength != models.StrengthWeak {
		t.Fatalf("strength = %q, want weak", res.Strength)
	}
	if res.PatternsFound == nil || res.BullishPatterns == nil || res.BearishPatterns == nil {
		t.Fatalf("pattern lists must be empty, not nil")
	}
}

func TestStrengthStrong(t *testing.T) {
	// Dragonfly geometry after a down candle: precedes HAMMER, DOJI and
	// DRAGONFLY_DOJI all matching at once.
	s := mustSeries(t, []models.Candle{
		{Timestamp: 1, Open: 11, High: 11.2, Low: 10.4, Close: 10.5},
		{Timestamp: 2, Open: 10.1, High: 10.15, Low: 8, Close: 10.05},
	})
	res := RecognizePatterns(s)

	if len(res.PatternsFound) < 3 {
		t.Fatalf("expected at least 3 matches, got %v", res.PatternsFound)
	}
	if res.Strength != models.StrengthStrong {
		t.Fatalf("strength = %q, want strong", res.Strength)
	}
}
