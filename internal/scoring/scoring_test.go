package scoring

import (
	"math"
	"testing"
)

func intp(n int) *int { return &n }

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{48.8566, 2.3522},
		{-33.8688, 151.2093},
		{90, 0},
	}
	for _, p := range points {
		if d := DistanceKm(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("DistanceKm(%v, %v, same) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	// Paris <-> Sydney.
	ab := DistanceKm(48.8566, 2.3522, -33.8688, 151.2093)
	ba := DistanceKm(-33.8688, 151.2093, 48.8566, 2.3522)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", ab, ba)
	}
	// Sanity: Paris-Sydney is just under 17000 km.
	if ab < 16800 || ab > 17100 {
		t.Errorf("Paris-Sydney distance = %v km, want ~16960", ab)
	}
}

func TestDistanceKmKnownPair(t *testing.T) {
	// London <-> New York, great-circle distance ~5570 km.
	d := DistanceKm(51.5074, -0.1278, 40.7128, -74.0060)
	if d < 5550 || d > 5590 {
		t.Errorf("London-NY distance = %v km, want ~5570", d)
	}
}

func TestLocationScoreEndpoints(t *testing.T) {
	if got := LocationScore(0); got != 5000 {
		t.Errorf("LocationScore(0) = %d, want 5000", got)
	}
	if got := LocationScore(20000); got != 0 {
		t.Errorf("LocationScore(20000) = %d, want 0", got)
	}
	if got := LocationScore(25000); got != 0 {
		t.Errorf("LocationScore(25000) = %d, want 0", got)
	}
}

func TestLocationScoreBonusBoundary(t *testing.T) {
	// At exactly the bonus radius the bonus term is gone.
	at := LocationScore(1500)
	justInside := LocationScore(1499.999)
	if justInside < at {
		t.Errorf("score jumped up across bonus radius: %d -> %d", justInside, at)
	}
	want := int(math.Round(5000 * math.Pow(1-1500.0/20000, 3)))
	if at != want {
		t.Errorf("LocationScore(1500) = %d, want %d", at, want)
	}
}

func TestLocationScoreMonotonic(t *testing.T) {
	prev := LocationScore(0)
	for d := 1.0; d <= 21000; d += 7 {
		cur := LocationScore(d)
		if cur > prev {
			t.Fatalf("LocationScore increased at %v km: %d -> %d", d, prev, cur)
		}
		prev = cur
	}
}

func TestYearDifference(t *testing.T) {
	tests := []struct {
		name               string
		guess, actual      int
		yearStart, yearEnd *int
		want               int
	}{
		{"exact no range", 1650, 1650, nil, nil, 0},
		{"off no range", 1600, 1650, nil, nil, 50},
		{"inside range", 1510, 1511, intp(1503), intp(1519), 0},
		{"at range edge", 1503, 1511, intp(1503), intp(1519), 0},
		{"above range", 1600, 1511, intp(1503), intp(1519), 81},
		{"below range", 1400, 1511, intp(1503), intp(1519), 103},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YearDifference(tt.guess, tt.actual, tt.yearStart, tt.yearEnd)
			if got != tt.want {
				t.Errorf("YearDifference = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestYearScoreEndpoints(t *testing.T) {
	if got := YearScore(1650, 1650, nil, nil); got != 5000 {
		t.Errorf("exact guess = %d, want 5000", got)
	}
	if got := YearScore(1400, 1650, nil, nil); got != 0 {
		t.Errorf("250 years off = %d, want 0", got)
	}
	if got := YearScore(1000, 1650, nil, nil); got != 0 {
		t.Errorf("650 years off = %d, want 0 (never negative)", got)
	}
	// 249 off still goes through the quartic formula; the raw value is a
	// hair above zero and rounds down to 0.
	scoreAt100 := 5000 * math.Pow(1-100.0/250, 2)
	want := int(math.Round(scoreAt100 * math.Pow(1-149.0/150, 4)))
	if got := YearScore(1650-249, 1650, nil, nil); got != want || got < 0 {
		t.Errorf("249 years off = %d, want %d", got, want)
	}
}

func TestYearScoreWithinRangeAlwaysPerfect(t *testing.T) {
	start, end := 1503, 1519
	for y := start; y <= end; y++ {
		if got := YearScore(y, 1511, &start, &end); got != 5000 {
			t.Errorf("YearScore(%d) inside range = %d, want 5000", y, got)
		}
	}
}

func TestYearScoreContinuousAtPhaseBoundary(t *testing.T) {
	// The quartic phase must start exactly where the quadratic ends.
	quadAt100 := 5000 * math.Pow(1-100.0/250, 2)
	got := YearScore(1550, 1650, nil, nil) // 100 off
	if got != int(math.Round(quadAt100)) {
		t.Errorf("score at 100 = %d, want %d", got, int(math.Round(quadAt100)))
	}
	at100 := YearScore(1550, 1650, nil, nil)
	at101 := YearScore(1549, 1650, nil, nil)
	if at101 > at100 {
		t.Errorf("score increased across boundary: %d -> %d", at100, at101)
	}
	if at100-at101 > 200 {
		t.Errorf("discontinuity at boundary: %d -> %d", at100, at101)
	}
}

func TestYearScoreRangeEdgeDecay(t *testing.T) {
	// Guess 1600 against range [1503, 1519]: 81 years from the near edge.
	start, end := 1503, 1519
	want := int(math.Round(5000 * math.Pow(1-81.0/250, 2)))
	if got := YearScore(1600, 1511, &start, &end); got != want {
		t.Errorf("YearScore(1600) = %d, want %d", got, want)
	}
}

func TestYearScoreMonotonic(t *testing.T) {
	prev := YearScore(1650, 1650, nil, nil)
	for off := 1; off <= 260; off++ {
		cur := YearScore(1650-off, 1650, nil, nil)
		if cur > prev {
			t.Fatalf("YearScore increased at %d years off: %d -> %d", off, prev, cur)
		}
		prev = cur
	}
}
