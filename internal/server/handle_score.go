package server

import (
	"net/http"

	"github.com/paintingguessr/api/internal/game"
	"github.com/paintingguessr/api/internal/scoring"
)

type ScoreRequest struct {
	Painting struct {
		Year      int          `json:"year"`
		YearStart *int         `json:"yearStart"`
		YearEnd   *int         `json:"yearEnd"`
		Location  *game.LatLng `json:"location"`
	} `json:"painting"`
	Guess    game.Guess `json:"guess"`
	YearOnly bool       `json:"yearOnly"`
}

type ScoreResponse struct {
	DistanceKm     float64 `json:"distanceKm"`
	YearDifference int     `json:"yearDifference"`
	LocationScore  int     `json:"locationScore"`
	YearScore      int     `json:"yearScore"`
	TotalScore     int     `json:"totalScore"`
}

// handleScore computes a round score without any session state, so
// clients can re-score historical guesses or verify share cards.
func handleScore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScoreRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Guess.Year == nil {
			writeError(w, http.StatusBadRequest, "guess.year is required")
			return
		}

		var resp ScoreResponse
		if !req.YearOnly {
			if req.Guess.Location == nil {
				writeError(w, http.StatusBadRequest, "guess.location is required unless yearOnly")
				return
			}
			if req.Painting.Location == nil {
				writeError(w, http.StatusBadRequest, "painting.location is required unless yearOnly")
				return
			}
			resp.DistanceKm = scoring.DistanceKm(
				req.Guess.Location.Lat, req.Guess.Location.Lng,
				req.Painting.Location.Lat, req.Painting.Location.Lng,
			)
			resp.LocationScore = scoring.LocationScore(resp.DistanceKm)
		}

		resp.YearDifference = scoring.YearDifference(
			*req.Guess.Year, req.Painting.Year,
			req.Painting.YearStart, req.Painting.YearEnd,
		)
		resp.YearScore = scoring.YearScore(
			*req.Guess.Year, req.Painting.Year,
			req.Painting.YearStart, req.Painting.YearEnd,
		)
		resp.TotalScore = resp.LocationScore + resp.YearScore

		writeJSON(w, http.StatusOK, resp)
	}
}
