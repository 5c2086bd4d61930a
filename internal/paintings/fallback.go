package paintings

import (
	"embed"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/paintingguessr/api/internal/seeded"
)

//go:embed data/fallback-paintings.json
var fallbackData embed.FS

type fallbackRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Artist      string   `json:"artist"`
	Year        int      `json:"year"`
	Location    Location `json:"location"`
	ImageURL    string   `json:"imageUrl"`
	Description string   `json:"description"`
	Nationality string   `json:"nationality"`
	Medium      string   `json:"medium"`
}

// loadFallback parses the embedded curated dataset once. The entries are
// pre-vetted, so unlike catalog records they skip live validation.
var loadFallback = sync.OnceValue(func() []Painting {
	data, err := fallbackData.ReadFile("data/fallback-paintings.json")
	if err != nil {
		panic("paintings: embedded fallback dataset missing: " + err.Error())
	}
	var raw []fallbackRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		panic("paintings: embedded fallback dataset malformed: " + err.Error())
	}

	out := make([]Painting, len(raw))
	for i, r := range raw {
		out[i] = Painting{
			ID:          r.ID,
			Title:       r.Title,
			Artist:      r.Artist,
			Year:        r.Year,
			YearDisplay: strconv.Itoa(r.Year),
			Location:    r.Location,
			ImageURL:    r.ImageURL,
			Description: r.Description,
			Nationality: r.Nationality,
			Medium:      r.Medium,
			Source:      SourceFallback,
		}
	}
	return out
})

// Fallback returns count paintings from the curated dataset, shuffled by
// rng. With a seeded rng the selection is deterministic, which is how
// the daily challenge stays identical for everyone even when the live
// catalog is down. Zero network dependency.
func Fallback(count int, rng *seeded.Source) []Painting {
	all := loadFallback()
	shuffled := make([]Painting, len(all))
	copy(shuffled, all)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

// AllFallback returns a copy of the full curated dataset.
func AllFallback() []Painting {
	all := loadFallback()
	out := make([]Painting, len(all))
	copy(out, all)
	return out
}
