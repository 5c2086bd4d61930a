package daily

import (
	"testing"
	"time"
)

func TestDateStringUsesReferenceZone(t *testing.T) {
	// 04:59 UTC is still the previous day at UTC-5; 05:00 UTC is the new day.
	before := time.Date(2024, 1, 15, 4, 59, 0, 0, time.UTC)
	after := time.Date(2024, 1, 15, 5, 0, 0, 0, time.UTC)

	if got := DateString(before); got != "2024-01-14" {
		t.Errorf("DateString(04:59 UTC) = %q, want 2024-01-14", got)
	}
	if got := DateString(after); got != "2024-01-15" {
		t.Errorf("DateString(05:00 UTC) = %q, want 2024-01-15", got)
	}
}

func TestSeedGoldenValues(t *testing.T) {
	// Golden values from the reference string hash of "YYYY-MM-DD_v2".
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2024, 1, 15, 12, 0, 0, 0, refZone), 1268544040},
		{time.Date(2024, 1, 16, 12, 0, 0, 0, refZone), 1268514249},
		{time.Date(2026, 8, 31, 12, 0, 0, 0, refZone), 257715299},
	}
	for _, tt := range tests {
		if got := Seed(tt.date); got != tt.want {
			t.Errorf("Seed(%s) = %d, want %d", DateString(tt.date), got, tt.want)
		}
	}
}

func TestSeedStableWithinDay(t *testing.T) {
	morning := time.Date(2024, 6, 1, 0, 0, 1, 0, refZone)
	night := time.Date(2024, 6, 1, 23, 59, 59, 0, refZone)
	if Seed(morning) != Seed(night) {
		t.Errorf("seed changed within one reference day: %d vs %d", Seed(morning), Seed(night))
	}
}

func TestSeedChangesAcrossDays(t *testing.T) {
	prev := Seed(time.Date(2024, 1, 1, 12, 0, 0, 0, refZone))
	for day := 2; day <= 60; day++ {
		cur := Seed(time.Date(2024, 1, 1, 12, 0, 0, 0, refZone).AddDate(0, 0, day-1))
		if cur == prev {
			t.Errorf("consecutive days share seed %d", cur)
		}
		prev = cur
	}
}

func TestSeedNonNegative(t *testing.T) {
	for day := 0; day < 366; day++ {
		d := time.Date(2025, 1, 1, 12, 0, 0, 0, refZone).AddDate(0, 0, day)
		if s := Seed(d); s < 0 {
			t.Errorf("Seed(%s) = %d, want >= 0", DateString(d), s)
		}
	}
}

func TestSeedPanicsOnZeroTime(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero time")
		}
	}()
	Seed(time.Time{})
}

func TestUntilNextReset(t *testing.T) {
	// One second past 23:00 reference time: 59m59s left.
	now := time.Date(2024, 3, 10, 23, 0, 1, 0, refZone)
	h, m, s := UntilNextReset(now)
	if h != 0 || m != 59 || s != 59 {
		t.Errorf("UntilNextReset = %d:%d:%d, want 0:59:59", h, m, s)
	}

	// Exactly midnight: a full day remains.
	h, m, s = UntilNextReset(time.Date(2024, 3, 10, 0, 0, 0, 0, refZone))
	if h != 24 || m != 0 || s != 0 {
		t.Errorf("UntilNextReset at midnight = %d:%d:%d, want 24:0:0", h, m, s)
	}
}
