package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/paintingguessr/api/internal/daily"
	"github.com/paintingguessr/api/internal/paintings"
	"github.com/paintingguessr/api/internal/seeded"
)

// dailyRoundCount is the fixed size of the shared daily set.
const dailyRoundCount = 5

type DailyResponse struct {
	Date      string               `json:"date"`
	Seed      int                  `json:"seed"`
	Paintings []paintings.Painting `json:"paintings"`
}

// handleDaily serves today's shared painting set. The selection is
// seeded by the date, so every player gets the same five paintings; a
// catalog outage or shortfall is topped up deterministically from the
// curated fallback with the same seed and never surfaces as an error.
func handleDaily(logger *slog.Logger, src *paintings.Sampler, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := now()
		dateStr := daily.DateString(t)
		seed := daily.Seed(t)

		set, err := src.FetchRandom(r.Context(), dailyRoundCount, seeded.New(uint32(seed)))
		if err != nil {
			logger.Warn("daily catalog fetch failed, serving curated fallback",
				"date", dateStr, "error", err)
		}

		if len(set) < dailyRoundCount {
			fill := paintings.Fallback(dailyRoundCount-len(set), seeded.New(uint32(seed)))
			set = append(set, fill...)
		}

		writeJSON(w, http.StatusOK, DailyResponse{
			Date:      dateStr,
			Seed:      seed,
			Paintings: set,
		})
	}
}

type DailyClockResponse struct {
	Date    string `json:"date"`
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
}

// handleDailyClock reports the time remaining until the next daily reset.
func handleDailyClock(now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := now()
		h, m, s := daily.UntilNextReset(t)
		writeJSON(w, http.StatusOK, DailyClockResponse{
			Date:    daily.DateString(t),
			Hours:   h,
			Minutes: m,
			Seconds: s,
		})
	}
}
