package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/paintingguessr/api/internal/daily"
	"github.com/paintingguessr/api/internal/game"
)

type SessionResponse struct {
	Date     string        `json:"date"`
	Snapshot game.Snapshot `json:"snapshot"`
}

// handleLoadDailySession returns the stored daily progress for a player,
// or 404 when nothing has been saved for today.
func handleLoadDailySession(store SnapshotStore, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.URL.Query().Get("player")
		if player == "" {
			writeError(w, http.StatusBadRequest, "player is required")
			return
		}

		date := daily.DateString(now())
		snap, err := store.Load(r.Context(), date, player)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "no session for today")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load session")
			return
		}

		writeJSON(w, http.StatusOK, SessionResponse{Date: date, Snapshot: snap})
	}
}

// handleSaveDailySession upserts a player's daily progress. The snapshot
// is stored as-is under today's date, so a stale client writing after
// midnight starts a fresh row instead of clobbering the new day.
func handleSaveDailySession(logger *slog.Logger, store SnapshotStore, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.URL.Query().Get("player")
		if player == "" {
			writeError(w, http.StatusBadRequest, "player is required")
			return
		}

		var snap game.Snapshot
		if err := readJSON(r, &snap); err != nil {
			writeError(w, http.StatusBadRequest, "invalid snapshot body")
			return
		}

		date := daily.DateString(now())
		if err := store.Save(r.Context(), date, player, snap); err != nil {
			logger.Error("failed to save daily session", "date", date, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save session")
			return
		}

		writeJSON(w, http.StatusOK, SessionResponse{Date: date, Snapshot: snap})
	}
}
