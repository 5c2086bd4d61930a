// Package game drives one guessing session: round progression, guess
// capture, scoring and running totals. A Session is owned by exactly one
// player context; nothing here is safe for concurrent mutation.
package game

import (
	"github.com/google/uuid"

	"github.com/paintingguessr/api/internal/paintings"
	"github.com/paintingguessr/api/internal/scoring"
)

// State is the session's position in the round cycle.
type State string

const (
	StateIdle        State = "idle"
	StatePlaying     State = "playing"
	StateRoundResult State = "roundResult"
	StateFinal       State = "final"
)

// Mode distinguishes freshly sampled sessions from the shared daily set.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModeDaily    Mode = "daily"
)

// Difficulty tunes what a complete guess requires. Easy is year-only:
// the location pin is optional and scores zero when omitted.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// LatLng is a bare map-pin coordinate.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Guess is the per-round scratch value. Nil fields mean "not set yet".
type Guess struct {
	Location *LatLng `json:"location"`
	Year     *int    `json:"year"`
}

// RoundResult snapshots one scored round. Immutable once produced.
type RoundResult struct {
	Painting       paintings.Painting `json:"painting"`
	Guess          Guess              `json:"guess"`
	DistanceKm     float64            `json:"distanceKm"`
	YearDifference int                `json:"yearDifference"`
	LocationScore  int                `json:"locationScore"`
	YearScore      int                `json:"yearScore"`
	TotalScore     int                `json:"totalScore"`
}

// Session owns the ordered paintings for one game and the results
// accumulated so far.
type Session struct {
	id         string
	mode       Mode
	difficulty Difficulty
	paintings  []paintings.Painting
	state      State
	current    int
	rounds     []RoundResult
	total      int
	guess      Guess
}

// NewSession creates an idle session over the given paintings. Call
// Start to begin the first round.
func NewSession(ps []paintings.Painting, mode Mode, difficulty Difficulty) *Session {
	return &Session{
		id:         uuid.NewString(),
		mode:       mode,
		difficulty: difficulty,
		paintings:  ps,
		state:      StateIdle,
	}
}

func (s *Session) ID() string        { return s.id }
func (s *Session) Mode() Mode        { return s.mode }
func (s *Session) State() State      { return s.state }
func (s *Session) CurrentRound() int { return s.current }
func (s *Session) TotalScore() int   { return s.total }
func (s *Session) RoundCount() int   { return len(s.paintings) }

// Rounds returns the results recorded so far, oldest first.
func (s *Session) Rounds() []RoundResult {
	out := make([]RoundResult, len(s.rounds))
	copy(out, s.rounds)
	return out
}

// CurrentPainting returns the painting being guessed, or nil outside an
// active round.
func (s *Session) CurrentPainting() *paintings.Painting {
	if s.current >= len(s.paintings) {
		return nil
	}
	p := s.paintings[s.current]
	return &p
}

// Start moves an idle session into its first round.
func (s *Session) Start() {
	if s.state != StateIdle {
		return
	}
	if len(s.paintings) == 0 {
		s.state = StateFinal
		return
	}
	s.state = StatePlaying
	s.guess = Guess{}
}

// SetGuessLocation records the map pin for the current round.
func (s *Session) SetGuessLocation(lat, lng float64) {
	if s.state != StatePlaying {
		return
	}
	s.guess.Location = &LatLng{Lat: lat, Lng: lng}
}

// SetGuessYear records the year-slider value for the current round.
func (s *Session) SetGuessYear(year int) {
	if s.state != StatePlaying {
		return
	}
	s.guess.Year = &year
}

// SubmitGuess scores the current round and transitions to roundResult.
// An incomplete guess (missing year, or missing location outside easy
// mode) is a caller contract violation: the engine refuses to score and
// returns nil, staying in playing.
func (s *Session) SubmitGuess() *RoundResult {
	if s.state != StatePlaying {
		return nil
	}
	if s.guess.Year == nil {
		return nil
	}
	if s.difficulty != DifficultyEasy && s.guess.Location == nil {
		return nil
	}

	p := s.paintings[s.current]

	var distanceKm float64
	locationScore := 0
	if s.guess.Location != nil {
		distanceKm = scoring.DistanceKm(s.guess.Location.Lat, s.guess.Location.Lng, p.Location.Lat, p.Location.Lng)
		locationScore = scoring.LocationScore(distanceKm)
	}
	yearDifference := scoring.YearDifference(*s.guess.Year, p.Year, p.YearStart, p.YearEnd)
	yearScore := scoring.YearScore(*s.guess.Year, p.Year, p.YearStart, p.YearEnd)

	result := RoundResult{
		Painting:       p,
		Guess:          s.guess,
		DistanceKm:     distanceKm,
		YearDifference: yearDifference,
		LocationScore:  locationScore,
		YearScore:      yearScore,
		TotalScore:     locationScore + yearScore,
	}

	s.rounds = append(s.rounds, result)
	s.total += result.TotalScore
	s.state = StateRoundResult
	return &result
}

// Advance moves from a round result to the next round, or to final after
// the last one. The transition is caller-driven, never automatic.
func (s *Session) Advance() {
	if s.state != StateRoundResult {
		return
	}
	if s.current+1 >= len(s.paintings) {
		s.state = StateFinal
		return
	}
	s.current++
	s.guess = Guess{}
	s.state = StatePlaying
}

// Reset discards all session state and returns to idle.
func (s *Session) Reset() {
	s.state = StateIdle
	s.current = 0
	s.rounds = nil
	s.total = 0
	s.guess = Guess{}
}

// Snapshot is the client-resumable daily-session shape, persisted keyed
// by the reference-timezone calendar day.
type Snapshot struct {
	Completed    bool                 `json:"completed"`
	InProgress   bool                 `json:"inProgress"`
	Score        int                  `json:"score"`
	CurrentRound int                  `json:"currentRound"`
	Rounds       []RoundResult        `json:"rounds"`
	Paintings    []paintings.Painting `json:"paintings"`
}

// Snapshot captures the session for daily resumption.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Completed:    s.state == StateFinal,
		InProgress:   s.state != StateFinal && len(s.rounds) > 0,
		Score:        s.total,
		CurrentRound: s.current,
		Rounds:       s.Rounds(),
		Paintings:    append([]paintings.Painting(nil), s.paintings...),
	}
}

// ResumeDaily rebuilds an in-progress daily session from a snapshot,
// positioned at the start of the recorded current round.
func ResumeDaily(snap Snapshot) *Session {
	s := NewSession(snap.Paintings, ModeDaily, DifficultyNormal)
	s.rounds = append([]RoundResult(nil), snap.Rounds...)
	s.total = snap.Score
	s.current = snap.CurrentRound
	if snap.Completed || s.current >= len(s.paintings) {
		s.state = StateFinal
	} else {
		s.state = StatePlaying
	}
	return s
}
