package server

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/paintingguessr/api/internal/database"
	"github.com/paintingguessr/api/internal/migrations"
	"github.com/paintingguessr/api/internal/paintings"
)

// testCatalog serves deterministic records so handler tests never touch
// the network. A nil ids slice simulates a catalog outage.
type testCatalog struct {
	ids       []int
	searchErr error
}

func (c *testCatalog) SearchObjectIDs(ctx context.Context) ([]int, error) {
	if c.searchErr != nil {
		return nil, c.searchErr
	}
	return c.ids, nil
}

func (c *testCatalog) GetObject(ctx context.Context, objectID int) (*paintings.Record, error) {
	return &paintings.Record{
		Title:             fmt.Sprintf("Test Painting %d", objectID),
		ArtistDisplayName: "Claude Monet",
		ArtistNationality: "French",
		ObjectDate:        "1875",
		ObjectBeginDate:   1875,
		ObjectEndDate:     1875,
		PrimaryImage:      fmt.Sprintf("https://example.org/%d.jpg", objectID),
		Medium:            "Oil on canvas",
		Classification:    "Paintings",
	}, nil
}

func testNow() time.Time {
	return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
}

func testRouter(t *testing.T, catalog paintings.Catalog) *chi.Mux {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.Run(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	resolver, err := paintings.DefaultResolver()
	if err != nil {
		t.Fatalf("load resolver: %v", err)
	}

	r := chi.NewRouter()
	addRoutes(r, Deps{
		Logger:    slog.Default(),
		DB:        db,
		Sampler:   paintings.NewSampler(catalog, resolver, testNow),
		Snapshots: NewSQLiteSnapshotStore(db),
		Now:       testNow,
	})
	return r
}

func manyIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = 1000 + i
	}
	return ids
}
