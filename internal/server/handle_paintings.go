package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/paintingguessr/api/internal/paintings"
	"github.com/paintingguessr/api/internal/seeded"
)

const (
	defaultPaintingCount = 5
	maxPaintingCount     = 20
)

type PaintingsResponse struct {
	Paintings []paintings.Painting `json:"paintings"`
}

// handlePaintings serves a random painting set for standard (non-daily)
// games. Pass source=fallback to skip the catalog entirely.
func handlePaintings(logger *slog.Logger, src *paintings.Sampler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := defaultPaintingCount
		if raw := r.URL.Query().Get("count"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "count must be an integer")
				return
			}
			count = n
		}
		if count < 1 {
			count = 1
		}
		if count > maxPaintingCount {
			count = maxPaintingCount
		}

		rng := seeded.NewRandom()

		if r.URL.Query().Get("source") == "fallback" {
			writeJSON(w, http.StatusOK, PaintingsResponse{Paintings: paintings.Fallback(count, rng)})
			return
		}

		set, err := src.FetchRandom(r.Context(), count, rng)
		if err != nil {
			logger.Warn("catalog fetch failed, serving curated fallback", "error", err)
		}
		if len(set) < count {
			set = append(set, paintings.Fallback(count-len(set), rng)...)
		}

		writeJSON(w, http.StatusOK, PaintingsResponse{Paintings: set})
	}
}
