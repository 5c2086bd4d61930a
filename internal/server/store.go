package server

import (
	"context"
	"errors"

	"github.com/paintingguessr/api/internal/game"
)

var ErrNotFound = errors.New("not found")

// SnapshotStore persists resumable daily sessions, keyed by the
// reference-timezone date and a client-chosen player key. The round
// engine itself never touches persistence; handlers go through this
// narrow interface.
type SnapshotStore interface {
	Load(ctx context.Context, date, playerKey string) (game.Snapshot, error)
	Save(ctx context.Context, date, playerKey string, snap game.Snapshot) error
}
