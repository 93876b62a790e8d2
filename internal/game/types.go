// internal/game/types.go
//
// Core type definitions for the station-guessing game.
// Defines:
//   - Phase: round lifecycle state (not_started/in_progress/finished).
//   - Mode:  answer selection policy (daily/practice).
//   - Round: state for a single in-progress or finished round.

package game

import "github.com/austinblanke891/metrodupe/internal/catalog"

// Phase represents the round lifecycle.
// Possible values:
//   - "not_started": no answer drawn yet.
//   - "in_progress": answer drawn, guesses being accepted.
//   - "finished":    won, or out of guesses.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseInProgress Phase = "in_progress"
	PhaseFinished   Phase = "finished"
)

// Mode selects how the secret answer is drawn.
// "daily" is deterministically seeded from the calendar date so all players
// share one answer per day; "practice" is a fresh random draw per round.
type Mode string

const (
	ModeDaily    Mode = "daily"
	ModePractice Mode = "practice"
)

// Round holds the state of a single game round.
type Round struct {
	ID        string          // Unique round identifier (random hex string).
	Mode      Mode            // Selection policy used for the answer.
	Answer    catalog.Station // The secret station; immutable for the round.
	Guesses   []string        // Raw guess strings in submission order.
	Remaining int             // Guesses left; never below 0.
	Won       bool            // True only if a guess hit the answer.
	Feedback  string          // Last hint message, replaced on each guess.
	Phase     Phase           // Current lifecycle state.
}
