// internal/game/round.go
//
// Round state machine for a single guessing session.
// Responsibilities:
//   - Start rounds with a daily-deterministic or per-round random answer.
//   - Apply guesses: every submission consumes one guess, resolved or not.
//   - Produce player-facing feedback (same-line hint) and the win/loss
//     transition.
//
// Notes:
//   - The answer is drawn from the catalog's sorted name list, so the daily
//     index is stable for a given catalog regardless of load order.
//   - Unresolvable guess text is not an error: it is a guaranteed-wrong
//     guess. Only submitting to a round that is not in progress fails, as
//     that is a caller bug rather than a player action.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/austinblanke891/metrodupe/internal/catalog"
	"github.com/austinblanke891/metrodupe/internal/daily"
)

// MaxGuesses is the fixed per-round guess budget.
const MaxGuesses = 6

var (
	// ErrEmptyCatalog means no stations are available to draw an answer from.
	ErrEmptyCatalog = errors.New("no stations in catalog")
	// ErrRoundFinished means a guess was submitted outside in_progress.
	ErrRoundFinished = errors.New("round not in progress")
)

// Start draws an answer and returns a fresh in-progress round.
// now and salt only matter for ModeDaily, where the pick is
// HMAC(salt, date) over the sorted name list; ModePractice draws uniformly
// at random. Restarting after a finished round is just another Start.
func Start(cat *catalog.Catalog, mode Mode, now time.Time, salt string) (*Round, error) {
	if cat == nil || cat.Empty() {
		return nil, ErrEmptyCatalog
	}
	names := cat.Names()
	var idx int
	if mode == ModeDaily {
		idx = daily.StationIndex(now, salt, len(names))
	} else {
		idx = randomIndex(len(names))
	}
	answer, ok := cat.Lookup(catalog.Normalize(names[idx]))
	if !ok {
		// Names always come from the catalog itself.
		return nil, ErrEmptyCatalog
	}
	return &Round{
		ID:        randomID(),
		Mode:      mode,
		Answer:    answer,
		Guesses:   []string{},
		Remaining: MaxGuesses,
		Phase:     PhaseInProgress,
	}, nil
}

// SubmitGuess applies one guess, mutating the round state.
//
// Transitions:
//   - Resolved guess equals the answer → Won, finished, feedback cleared.
//   - Otherwise feedback is set ("wrong station", with the shared lines
//     when the guess sits on one of the answer's lines), and running out
//     of guesses finishes the round as a loss.
//
// Every call consumes a guess, including text that resolves to no station
// at all; the state machine cannot tell a typo from a bad theory.
func (r *Round) SubmitGuess(raw string, cat *catalog.Catalog) error {
	if r.Phase != PhaseInProgress {
		return ErrRoundFinished
	}
	r.Guesses = append(r.Guesses, raw)
	r.Remaining--

	picked, ok := cat.Resolve(raw)
	if ok && picked.Key() == r.Answer.Key() {
		r.Won = true
		r.Phase = PhaseFinished
		r.Feedback = ""
		return nil
	}

	if ok && catalog.SameLine(picked, r.Answer) {
		lines := strings.Join(catalog.OverlappingLines(picked, r.Answer), ", ")
		if lines == "" {
			lines = "right line"
		}
		r.Feedback = "Wrong station, but correct line (" + lines + ")."
	} else {
		r.Feedback = "Wrong station."
	}

	if r.Remaining <= 0 {
		r.Remaining = 0
		r.Won = false
		r.Phase = PhaseFinished
	}
	return nil
}

// LastGuess returns the most recent raw guess, or "" before any guess.
func (r *Round) LastGuess() string {
	if len(r.Guesses) == 0 {
		return ""
	}
	return r.Guesses[len(r.Guesses)-1]
}

// randomIndex returns a cryptographically random index in [0, n).
func randomIndex(n int) int {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(nBig.Int64())
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
