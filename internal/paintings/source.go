package paintings

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/paintingguessr/api/internal/seeded"
)

// Catalog is the external painting catalog. *MetClient implements it;
// tests substitute a stub.
type Catalog interface {
	SearchObjectIDs(ctx context.Context) ([]int, error)
	GetObject(ctx context.Context, objectID int) (*Record, error)
}

const (
	// idCacheTTL is how long the candidate id list is reused before a
	// refresh. Staleness tolerance is generous: the catalog barely moves.
	idCacheTTL = 24 * time.Hour

	// maxSampleRounds bounds the sampling loop; each round oversamples by
	// oversampleFactor times the remaining need to absorb the rejection
	// rate of the eligibility filter.
	maxSampleRounds  = 5
	oversampleFactor = 3

	// fetchConcurrency caps parallel candidate fetches within a round.
	fetchConcurrency = 8

	// candidateTimeout bounds one candidate fetch so a hung request
	// cannot stall the whole batch.
	candidateTimeout = 10 * time.Second
)

// Sampler samples valid paintings from a catalog. The candidate-id cache
// is shared process-wide; concurrent refreshes are harmless idempotent
// overwrites.
type Sampler struct {
	catalog  Catalog
	resolver *Resolver
	now      func() time.Time

	mu        sync.RWMutex
	cachedIDs []int
	fetchedAt time.Time
}

// NewSampler wires a Sampler. now is injectable so tests can control cache
// expiry; pass time.Now in production.
func NewSampler(catalog Catalog, resolver *Resolver, now func() time.Time) *Sampler {
	return &Sampler{catalog: catalog, resolver: resolver, now: now}
}

// objectIDs returns the cached candidate list, refreshing it when older
// than idCacheTTL.
func (s *Sampler) objectIDs(ctx context.Context) ([]int, error) {
	s.mu.RLock()
	ids, fetchedAt := s.cachedIDs, s.fetchedAt
	s.mu.RUnlock()

	if len(ids) > 0 && s.now().Sub(fetchedAt) < idCacheTTL {
		return ids, nil
	}

	fresh, err := s.catalog.SearchObjectIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("refreshing object ids: %w", err)
	}
	if len(fresh) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	s.cachedIDs, s.fetchedAt = fresh, s.now()
	s.mu.Unlock()
	return fresh, nil
}

// FetchRandom samples up to count valid paintings, drawing candidate ids
// with rng so a seeded caller gets a reproducible set. Individual fetch
// or validation failures just drop that candidate; the result may be
// shorter than count when the catalog is exhausted or unreachable, and
// the caller tops up from the curated fallback.
func (s *Sampler) FetchRandom(ctx context.Context, count int, rng *seeded.Source) ([]Painting, error) {
	ids, err := s.objectIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	collected := make([]Painting, 0, count)
	tried := make(map[int]bool)

	for round := 0; round < maxSampleRounds && len(collected) < count; round++ {
		if err := ctx.Err(); err != nil {
			return collected, err
		}

		batchSize := (count - len(collected)) * oversampleFactor
		batch := make([]int, 0, batchSize)
		for i := 0; i < batchSize; i++ {
			objectID := ids[rng.IntN(len(ids))]
			if !tried[objectID] {
				tried[objectID] = true
				batch = append(batch, objectID)
			}
		}

		// Fetch the whole batch in parallel, then merge: a join, not a
		// race. Failed candidates leave a nil slot.
		results := make([]*Painting, len(batch))
		g := new(errgroup.Group)
		g.SetLimit(fetchConcurrency)
		for i, objectID := range batch {
			g.Go(func() error {
				results[i] = s.fetchOne(ctx, objectID)
				return nil
			})
		}
		_ = g.Wait()

		for _, p := range results {
			if p != nil && len(collected) < count {
				collected = append(collected, *p)
			}
		}
	}

	return collected, nil
}

// fetchOne retrieves and validates one candidate. Any failure yields
// nil: per-record errors are expected and never abort a batch.
func (s *Sampler) fetchOne(ctx context.Context, objectID int) *Painting {
	ctx, cancel := context.WithTimeout(ctx, candidateTimeout)
	defer cancel()

	rec, err := s.catalog.GetObject(ctx, objectID)
	if err != nil {
		return nil
	}
	if !Eligible(*rec) {
		return nil
	}

	parsed := ParseYear(rec.ObjectDate, rec.ObjectBeginDate, rec.ObjectEndDate)
	if parsed == nil {
		return nil
	}

	loc := s.resolver.Resolve(rec.ArtistDisplayName, rec.ArtistNationality, rec.Culture, rec.Country)
	p := newCatalogPainting(objectID, *rec, *parsed, loc)
	return &p
}

func newCatalogPainting(objectID int, rec Record, parsed ParsedYear, loc Location) Painting {
	title := rec.Title
	if title == "" {
		title = "Untitled"
	}
	artist := rec.ArtistDisplayName
	if artist == "" {
		artist = "Unknown Artist"
	}

	imageURL := rec.PrimaryImage
	if imageURL == "" {
		imageURL = rec.PrimaryImageSmall
	}

	nationality := rec.ArtistNationality
	if nationality == "" {
		nationality = rec.Culture
	}
	if nationality == "" {
		nationality = "Unknown"
	}

	return Painting{
		ID:          fmt.Sprintf("met_%d", objectID),
		Title:       title,
		Artist:      artist,
		Year:        parsed.Year,
		YearStart:   parsed.YearStart,
		YearEnd:     parsed.YearEnd,
		YearDisplay: yearDisplay(rec.ObjectDate, parsed),
		Location:    loc,
		ImageURL:    imageURL,
		Description: describe(title, artist, rec.Medium, rec.Dimensions),
		Nationality: nationality,
		Medium:      rec.Medium,
		Source:      SourceMet,
	}
}

func yearDisplay(objectDate string, parsed ParsedYear) string {
	if objectDate != "" {
		return objectDate
	}
	if parsed.YearStart != nil && parsed.YearEnd != nil && *parsed.YearStart != *parsed.YearEnd {
		return fmt.Sprintf("%d–%d", *parsed.YearStart, *parsed.YearEnd)
	}
	return strconv.Itoa(parsed.Year)
}

func describe(title, artist, medium, dimensions string) string {
	desc := fmt.Sprintf("%s by %s.", title, artist)
	if medium != "" {
		desc += " " + medium
	}
	if dimensions != "" {
		desc += " (" + dimensions + ")"
	}
	return desc
}
