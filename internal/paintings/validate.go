package paintings

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	// minYear/maxYear bound the playable era for live catalog entries.
	minYear = 1300
	maxYear = 2000

	// maxYearSpan caps accepted date ranges. Wider ranges are too
	// ambiguous to score fairly. Tunable heuristic, not a derived value.
	maxYearSpan = 50
)

// Works on 2D paintings only; anything matching these medium or
// classification terms is excluded.
var excludeTerms = []string{"sculpture", "textile", "ceramic", "photograph", "print", "woodwork"}

var (
	fourDigitRe = regexp.MustCompile(`\b(\d{4})\b`)
	centuryRe   = regexp.MustCompile(`(?i)(\d{1,2})(?:st|nd|rd|th)\s+century`)
)

// ParsedYear is the normalized date metadata for a candidate painting.
type ParsedYear struct {
	Year      int
	YearStart *int
	YearEnd   *int
}

// ParseYear extracts a best-estimate year from catalog date metadata.
// Numeric begin/end bounds win (zero means absent): both present gives
// the rounded midpoint plus the range, one present is taken as-is.
// Otherwise the free-text date is tried for a literal 4-digit year, then
// an "Nth century" phrase, which synthesizes a 100-year range with a
// mid-century point estimate. Returns nil when nothing is parseable.
func ParseYear(dateText string, beginYear, endYear int) *ParsedYear {
	if beginYear != 0 && endYear != 0 {
		start, end := beginYear, endYear
		return &ParsedYear{
			Year:      int(math.Round(float64(beginYear+endYear) / 2)),
			YearStart: &start,
			YearEnd:   &end,
		}
	}
	if beginYear != 0 {
		return &ParsedYear{Year: beginYear}
	}
	if endYear != 0 {
		return &ParsedYear{Year: endYear}
	}

	if dateText == "" {
		return nil
	}

	if m := fourDigitRe.FindStringSubmatch(dateText); m != nil {
		y, _ := strconv.Atoi(m[1])
		return &ParsedYear{Year: y}
	}

	if m := centuryRe.FindStringSubmatch(dateText); m != nil {
		century, _ := strconv.Atoi(m[1])
		start, end := (century-1)*100, century*100
		return &ParsedYear{
			Year:      century*100 - 50,
			YearStart: &start,
			YearEnd:   &end,
		}
	}

	return nil
}

// Eligible reports whether a raw catalog record can appear in the game.
// Rejections are expected and frequent; most of the catalog is not a
// scoreable painting.
func Eligible(rec Record) bool {
	if rec.PrimaryImage == "" {
		return false
	}

	parsed := ParseYear(rec.ObjectDate, rec.ObjectBeginDate, rec.ObjectEndDate)
	if parsed == nil || parsed.Year < minYear || parsed.Year > maxYear {
		return false
	}
	if parsed.YearStart != nil && parsed.YearEnd != nil &&
		*parsed.YearEnd-*parsed.YearStart > maxYearSpan {
		return false
	}

	// Scoring needs some location signal.
	if rec.ArtistNationality == "" && rec.Culture == "" && rec.Country == "" {
		return false
	}

	medium := strings.ToLower(rec.Medium)
	classification := strings.ToLower(rec.Classification)
	for _, term := range excludeTerms {
		if strings.Contains(medium, term) || strings.Contains(classification, term) {
			return false
		}
	}

	return true
}
