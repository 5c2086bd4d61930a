package game

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/paintingguessr/api/internal/scoring"
)

const siteLink = "paintingguessr.com"

var scorePrinter = message.NewPrinter(language.English)

// Rating maps a final total to a player title.
func Rating(totalScore int) (title, emoji string) {
	switch {
	case totalScore >= 45000:
		return "Art Historian", "🏛️"
	case totalScore >= 35000:
		return "Gallery Curator", "🎨"
	case totalScore >= 25000:
		return "Art Student", "📚"
	case totalScore >= 15000:
		return "Museum Tourist", "🗺️"
	default:
		return "Finger Painter", "🖌️"
	}
}

// scoreBlocks renders a coarse three-block indicator for score/max.
func scoreBlocks(score, max int) string {
	ratio := float64(score) / float64(max)
	switch {
	case ratio >= 0.8:
		return "🟩🟩🟩"
	case ratio >= 0.6:
		return "🟩🟩🟨"
	case ratio >= 0.4:
		return "🟩🟨⬛️"
	case ratio > 0:
		return "🟨⬛️⬛️"
	default:
		return "⬛️⬛️⬛️"
	}
}

// ShareText renders the fixed-format result block for a completed
// session: a header line with the date and total, one line per round
// with coarse location and year indicators, and the site link.
func ShareText(date string, rounds []RoundResult, totalScore int) string {
	maxTotal := len(rounds) * 2 * scoring.MaxScore

	var b strings.Builder
	b.WriteString(scorePrinter.Sprintf("PaintingGuessr %s %d/%d", date, totalScore, maxTotal))
	b.WriteByte('\n')
	for _, r := range rounds {
		b.WriteString("🌎" + scoreBlocks(r.LocationScore, scoring.MaxScore))
		b.WriteString(" 📅" + scoreBlocks(r.YearScore, scoring.MaxScore))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(siteLink)
	return b.String()
}
