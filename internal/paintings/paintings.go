// Package paintings turns the noisy Met museum catalog into a bounded,
// fair set of guessable paintings: fetching, eligibility filtering,
// year parsing, artist-location resolution and the curated fallback
// dataset all live here.
package paintings

// Location is where a painting was (approximately) created.
type Location struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`
}

// Source tags where a painting record came from.
type Source string

const (
	SourceMet      Source = "met_api"
	SourceFallback Source = "fallback"
)

// Painting is one guessable work. Immutable once constructed.
//
// Year is the single best-estimate creation year. When the exact date is
// uncertain, YearStart/YearEnd bound the plausible range and any guess
// inside it scores as exact; both are set or both are nil.
type Painting struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Artist      string   `json:"artist"`
	Year        int      `json:"year"`
	YearStart   *int     `json:"yearStart,omitempty"`
	YearEnd     *int     `json:"yearEnd,omitempty"`
	YearDisplay string   `json:"yearDisplay"`
	Location    Location `json:"location"`
	ImageURL    string   `json:"imageUrl"`
	Description string   `json:"description"`
	Nationality string   `json:"nationality"`
	Medium      string   `json:"medium,omitempty"`
	Source      Source   `json:"source"`
}

// Record is a raw Met catalog object, reduced to the fields the
// eligibility filter and painting construction care about. Zero begin/end
// dates mean "absent" (the catalog uses 0 for unknown).
type Record struct {
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	ArtistNationality string `json:"artistNationality"`
	Culture           string `json:"culture"`
	Country           string `json:"country"`
	ObjectDate        string `json:"objectDate"`
	ObjectBeginDate   int    `json:"objectBeginDate"`
	ObjectEndDate     int    `json:"objectEndDate"`
	PrimaryImage      string `json:"primaryImage"`
	PrimaryImageSmall string `json:"primaryImageSmall"`
	Medium            string `json:"medium"`
	Classification    string `json:"classification"`
	Dimensions        string `json:"dimensions"`
}
