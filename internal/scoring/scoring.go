// Package scoring holds the pure score math for a round: great-circle
// distance and the location/year score curves. Everything here is
// deterministic and side-effect free.
package scoring

import "math"

const (
	// MaxScore is the ceiling for each of the two per-round scores.
	MaxScore = 5000

	// maxDistanceKm is roughly half the Earth's circumference; a guess
	// this far off (the antipode) scores zero.
	maxDistanceKm = 20000

	// countryRadiusKm bounds the proximity bonus: guesses inside it get
	// up to 500 extra points, rewarding "right country" placements.
	countryRadiusKm = 1500

	// maxYearsOff is where the year curve bottoms out at zero.
	maxYearsOff = 250

	// gentleYearsOff is the boundary between the forgiving quadratic
	// phase and the steep quartic phase of the year curve.
	gentleYearsOff = 100

	earthRadiusKm = 6371
)

// DistanceKm returns the haversine great-circle distance in kilometres
// between two points given in degrees.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Pow(math.Sin(dLng/2), 2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// LocationScore maps a distance in kilometres to a score in [0, MaxScore].
// Cubic base curve, generous near zero, plus a small bonus inside
// countryRadiusKm. Monotonically non-increasing in distance.
func LocationScore(distanceKm float64) int {
	base := MaxScore * math.Pow(math.Max(0, 1-distanceKm/maxDistanceKm), 3)

	bonus := 0.0
	if distanceKm < countryRadiusKm {
		bonus = 500 * math.Pow(1-distanceKm/countryRadiusKm, 2)
	}

	return int(math.Round(math.Min(MaxScore, base+bonus)))
}

// YearDifference reports how many years the guess is off. When both
// range bounds are present a guess inside [yearStart, yearEnd] counts as
// exact; outside the range the difference is the distance to the nearest
// edge. With no range it is simply |guess - actual|.
func YearDifference(guessYear, actualYear int, yearStart, yearEnd *int) int {
	if yearStart != nil && yearEnd != nil {
		if guessYear >= *yearStart && guessYear <= *yearEnd {
			return 0
		}
		return min(abs(guessYear-*yearStart), abs(guessYear-*yearEnd))
	}
	return abs(guessYear - actualYear)
}

// YearScore maps a year guess to a score in [0, MaxScore]. A guess inside
// the painting's date range is a perfect 5000. Outside, the score decays
// quadratically up to gentleYearsOff years, then continues from that
// value with a quartic drop reaching zero at maxYearsOff. The two phases
// meet without a jump at the boundary.
func YearScore(guessYear, actualYear int, yearStart, yearEnd *int) int {
	if yearStart != nil && yearEnd != nil && guessYear >= *yearStart && guessYear <= *yearEnd {
		return MaxScore
	}

	yearsOff := YearDifference(guessYear, actualYear, yearStart, yearEnd)
	if yearsOff >= maxYearsOff {
		return 0
	}

	var score float64
	if yearsOff <= gentleYearsOff {
		score = MaxScore * math.Pow(1-float64(yearsOff)/maxYearsOff, 2)
	} else {
		scoreAtBoundary := MaxScore * math.Pow(1-float64(gentleYearsOff)/maxYearsOff, 2)
		score = scoreAtBoundary * math.Pow(1-float64(yearsOff-gentleYearsOff)/(maxYearsOff-gentleYearsOff), 4)
	}
	return int(math.Round(score))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
