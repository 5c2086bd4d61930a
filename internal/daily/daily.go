// Package daily derives the shared daily-challenge seed from the
// calendar date. All daily challenges roll over at midnight in a fixed
// UTC-5 reference zone, deliberately ignoring daylight saving: the
// offset is part of the seed contract, and making it DST-aware would
// silently change which paintings are "today's" for some players.
package daily

import "time"

// seedVersion is appended to the hashed date string. Bump it to
// invalidate previously served daily sets when the selection algorithm
// changes.
const seedVersion = "_v2"

// refZone is the fixed reference timezone for the daily rollover.
var refZone = time.FixedZone("EST", -5*60*60)

// DateString returns the reference-timezone calendar date as YYYY-MM-DD.
func DateString(t time.Time) string {
	return t.In(refZone).Format("2006-01-02")
}

// Seed derives the daily seed for the instant t. Two instants on the
// same reference-timezone calendar day always produce the same seed.
// The hash is the classic JavaScript string hash over the versioned
// date string, truncated to signed 32 bits, absolute value; keeping it
// bit-for-bit lets web clients derive the same seed independently.
func Seed(t time.Time) int {
	if t.IsZero() {
		panic("daily: seed requested for zero time")
	}

	str := DateString(t) + seedVersion
	var hash int32
	for i := 0; i < len(str); i++ {
		hash = (hash << 5) - hash + int32(str[i])
	}
	if hash < 0 {
		return -int(hash)
	}
	return int(hash)
}

// UntilNextReset reports the time remaining until the next midnight in
// the reference timezone, broken into hours, minutes and seconds.
func UntilNextReset(now time.Time) (hours, minutes, seconds int) {
	local := now.In(refZone)
	next := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, refZone)
	d := next.Sub(local)

	hours = int(d / time.Hour)
	minutes = int(d % time.Hour / time.Minute)
	seconds = int(d % time.Minute / time.Second)
	return hours, minutes, seconds
}
