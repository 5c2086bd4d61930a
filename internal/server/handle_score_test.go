package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/paintingguessr/api/internal/game"
)

func postScore(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := testRouter(t, &testCatalog{ids: manyIDs(60)})
	req := httptest.NewRequest(http.MethodPost, "/api/score", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestScorePerfectGuess(t *testing.T) {
	req := ScoreRequest{
		Guess: game.Guess{
			Location: &game.LatLng{Lat: 48.8606, Lng: 2.3376},
			Year:     intPtr(1875),
		},
	}
	req.Painting.Year = 1875
	req.Painting.Location = &game.LatLng{Lat: 48.8606, Lng: 2.3376}
	body, _ := json.Marshal(req)

	w := postScore(t, string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ScoreResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.TotalScore != 10000 {
		t.Fatalf("total = %d, want 10000", resp.TotalScore)
	}
	if resp.DistanceKm != 0 || resp.YearDifference != 0 {
		t.Fatalf("distance = %f, yearDiff = %d, want zeros", resp.DistanceKm, resp.YearDifference)
	}
}

func TestScoreYearOnly(t *testing.T) {
	req := ScoreRequest{
		Guess:    game.Guess{Year: intPtr(1900)},
		YearOnly: true,
	}
	req.Painting.Year = 1850
	body, _ := json.Marshal(req)

	w := postScore(t, string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ScoreResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.LocationScore != 0 {
		t.Fatalf("locationScore = %d, want 0", resp.LocationScore)
	}
	if resp.YearDifference != 50 {
		t.Fatalf("yearDiff = %d, want 50", resp.YearDifference)
	}
	if resp.YearScore != 3200 {
		// 5000 * (1 - 50/250)^2
		t.Fatalf("yearScore = %d, want 3200", resp.YearScore)
	}
	if resp.TotalScore != resp.YearScore {
		t.Fatalf("total = %d, want %d", resp.TotalScore, resp.YearScore)
	}
}

func TestScoreWithinRangeIsFull(t *testing.T) {
	req := ScoreRequest{
		Guess:    game.Guess{Year: intPtr(1510)},
		YearOnly: true,
	}
	req.Painting.Year = 1511
	req.Painting.YearStart = intPtr(1503)
	req.Painting.YearEnd = intPtr(1519)
	body, _ := json.Marshal(req)

	w := postScore(t, string(body))
	var resp ScoreResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.YearScore != 5000 {
		t.Fatalf("yearScore = %d, want 5000", resp.YearScore)
	}
}

func TestScoreOutsideRangeDecaysFromEdge(t *testing.T) {
	req := ScoreRequest{
		Guess:    game.Guess{Year: intPtr(1600)},
		YearOnly: true,
	}
	req.Painting.Year = 1511
	req.Painting.YearStart = intPtr(1503)
	req.Painting.YearEnd = intPtr(1519)
	body, _ := json.Marshal(req)

	w := postScore(t, string(body))
	var resp ScoreResponse
	json.NewDecoder(w.Body).Decode(&resp)

	// 81 years past the range edge, not 89 past the point estimate.
	if resp.YearDifference != 81 {
		t.Fatalf("yearDiff = %d, want 81", resp.YearDifference)
	}
	if resp.YearScore != 2285 {
		// 5000 * (1 - 81/250)^2
		t.Fatalf("yearScore = %d, want 2285", resp.YearScore)
	}
}

func TestScoreMissingYear(t *testing.T) {
	w := postScore(t, `{"painting":{"year":1875},"guess":{}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestScoreMissingLocation(t *testing.T) {
	w := postScore(t, `{"painting":{"year":1875},"guess":{"year":1875}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestScoreBadBody(t *testing.T) {
	w := postScore(t, "{not json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func intPtr(v int) *int { return &v }
