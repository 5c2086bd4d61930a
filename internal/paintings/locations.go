package paintings

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed data/artist-locations.json data/nationality-map.json
var referenceData embed.FS

// unknownLocation is the last-resort coordinate. It sits in the Sahara
// on purpose: a no-information painting must not silently reward guesses
// parked on a common European default.
var unknownLocation = Location{Lat: 30, Lng: 10, Name: "Unknown"}

// cultureToNationality translates historical and political names from
// catalog culture/country fields into the nationality adjectives the
// coordinate table is keyed by.
var cultureToNationality = map[string]string{
	"China":          "Chinese",
	"Japan":          "Japanese",
	"Korea":          "Korean",
	"India":          "Indian",
	"Thailand":       "Thai",
	"Vietnam":        "Vietnamese",
	"Indonesia":      "Indonesian",
	"Malaysia":       "Malaysian",
	"Nepal":          "Nepali",
	"Iran":           "Iranian",
	"Persia":         "Persian",
	"Turkey":         "Turkish",
	"Egypt":          "Egyptian",
	"Mexico":         "Mexican",
	"Brazil":         "Brazilian",
	"Argentina":      "Argentine",
	"Russia":         "Russian",
	"France":         "French",
	"Germany":        "German",
	"Italy":          "Italian",
	"Spain":          "Spanish",
	"Portugal":       "Portuguese",
	"Netherlands":    "Dutch",
	"Belgium":        "Belgian",
	"Britain":        "British",
	"England":        "British",
	"Scotland":       "British",
	"Ireland":        "Irish",
	"Austria":        "Austrian",
	"Switzerland":    "Swiss",
	"Sweden":         "Swedish",
	"Norway":         "Norwegian",
	"Denmark":        "Danish",
	"Finland":        "Finnish",
	"Poland":         "Polish",
	"Czech Republic": "Czech",
	"Bohemia":        "Czech",
	"Hungary":        "Hungarian",
	"Greece":         "Greek",
	"Romania":        "Romanian",
	"Serbia":         "Serbian",
	"Croatia":        "Croatian",
	"Bulgaria":       "Bulgarian",
	"Ukraine":        "Ukrainian",
	"Georgia":        "Georgian",
	"Armenia":        "Armenian",
	"Tibet":          "Tibetan",
	"Mongolia":       "Mongolian",
	"Burma":          "Burmese",
	"Myanmar":        "Burmese",
	"Cambodia":       "Cambodian",
	"Philippines":    "Filipino",
	"Pakistan":       "Pakistani",
	"Sri Lanka":      "Sri Lankan",
	"Iraq":           "Iraqi",
	"Syria":          "Syrian",
	"Morocco":        "Moroccan",
	"Algeria":        "Algerian",
	"Tunisia":        "Tunisian",
	"Nigeria":        "Nigerian",
	"Ethiopia":       "Ethiopian",
	"South Africa":   "South African",
	"Cuba":           "Cuban",
	"Colombia":       "Colombian",
	"Peru":           "Peruvian",
	"Chile":          "Chilean",
	"Canada":         "Canadian",
	"Australia":      "Australian",
}

// ArtistEntry is a curated artist working location.
type ArtistEntry struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Location string  `json:"location"`
}

// NationalityEntry is a representative coordinate for a nationality.
type NationalityEntry struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	City string  `json:"city"`
}

// Resolver maps artist and nationality metadata to an approximate
// coordinate through tiered fallback. Tables are read-only after
// construction, so a single Resolver serves all requests.
type Resolver struct {
	artists       map[string]ArtistEntry
	nationalities map[string]NationalityEntry

	// Nationality keys in sorted order for the deterministic substring pass.
	natKeys []string
}

// NewResolver builds a Resolver from explicit tables. Tests inject small
// fixture tables; production uses DefaultResolver.
func NewResolver(artists map[string]ArtistEntry, nationalities map[string]NationalityEntry) *Resolver {
	keys := make([]string, 0, len(nationalities))
	for k := range nationalities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Resolver{artists: artists, nationalities: nationalities, natKeys: keys}
}

// DefaultResolver loads the embedded reference tables.
func DefaultResolver() (*Resolver, error) {
	var artists map[string]ArtistEntry
	if err := loadJSON("data/artist-locations.json", &artists); err != nil {
		return nil, err
	}
	var nationalities map[string]NationalityEntry
	if err := loadJSON("data/nationality-map.json", &nationalities); err != nil {
		return nil, err
	}
	return NewResolver(artists, nationalities), nil
}

func loadJSON(name string, v any) error {
	data, err := referenceData.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// Resolve finds an approximate creation location. Tiers, first hit wins:
// exact artist match; exact nationality/culture/country in the
// nationality table; historical-name translation then retry; substring
// match of any candidate against all nationality keys ("possibly
// Chinese" still lands on Chinese); the fixed Unknown coordinate.
func (r *Resolver) Resolve(artistName, nationality, culture, country string) Location {
	if artistName != "" {
		if e, ok := r.artists[artistName]; ok {
			return Location{Lat: e.Lat, Lng: e.Lng, Name: e.Location}
		}
	}

	var candidates []string
	for _, c := range []string{nationality, culture, country} {
		if c != "" {
			candidates = append(candidates, c)
		}
	}

	for _, c := range candidates {
		if e, ok := r.nationalities[c]; ok {
			return Location{Lat: e.Lat, Lng: e.Lng, Name: e.City}
		}
	}

	for _, c := range candidates {
		if mapped, ok := cultureToNationality[c]; ok {
			if e, ok := r.nationalities[mapped]; ok {
				return Location{Lat: e.Lat, Lng: e.Lng, Name: e.City}
			}
		}
	}

	allText := strings.ToLower(strings.Join(candidates, " "))
	for _, key := range r.natKeys {
		if strings.Contains(allText, strings.ToLower(key)) {
			e := r.nationalities[key]
			return Location{Lat: e.Lat, Lng: e.Lng, Name: e.City}
		}
	}

	return unknownLocation
}
