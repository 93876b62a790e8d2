// internal/httpserver/server.go
//
// HTTP server wiring for the Metrodupe backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/stations".
//   - Round endpoints: POST /round/new, POST /round/guess, GET /round/state.
//   - Autocomplete endpoint: GET /suggest.
//   - Anonymous session cookie so each browser owns exactly one round.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so the session cookie
//     works from the web client).
//   - All game state is in the session store; the catalog is shared
//     read-only across every session.
//   - Responses carry the render descriptor; the client draws it and holds
//     no game logic of its own. The answer name is only revealed once the
//     round is finished.

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/austinblanke891/metrodupe/internal/catalog"
	"github.com/austinblanke891/metrodupe/internal/game"
	"github.com/austinblanke891/metrodupe/internal/store"
)

const suggestionLimit = 5

// Server bundles router, session store, catalog, and render tuning.
type Server struct {
	r      *chi.Mux
	store  store.Store
	cat    *catalog.Catalog
	render game.RenderConfig
	salt   string
	origin string
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, cat *catalog.Catalog, render game.RenderConfig, dailySalt, clientOrigin string) *Server {
	s := &Server{r: chi.NewRouter(), store: st, cat: cat, render: render, salt: dailySalt, origin: clientOrigin}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFor(s.origin))               // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"metrodupe","endpoints":["/health","POST /round/new","POST /round/guess","GET /round/state","GET /suggest"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Game endpoints
	s.r.Post("/round/new", s.handleNewRound)
	s.r.Post("/round/guess", s.handleGuess)
	s.r.Get("/round/state", s.handleState)
	s.r.Get("/suggest", s.handleSuggest)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	// Debug: catalog counts
	s.r.Get("/debug/stations", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"stations": s.cat.Len()})
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFor enables credentialed CORS for a single origin.
func corsFor(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ ROUNDS -------------------------------------

// newRoundReq is the payload for POST /round/new.
type newRoundReq struct {
	Mode string `json:"mode"` // "daily" | "practice" (default daily)
}

// guessReq is the payload for POST /round/guess.
type guessReq struct {
	Guess string `json:"guess"`
}

// roundRes is the shared response shape for all round endpoints.
type roundRes struct {
	RoundID    string          `json:"roundId"`
	Mode       game.Mode       `json:"mode"`
	Phase      game.Phase      `json:"phase"`
	Remaining  int             `json:"remaining"`
	Won        bool            `json:"won"`
	Feedback   string          `json:"feedback,omitempty"`
	Guesses    []string        `json:"guesses"`
	Answer     string          `json:"answer,omitempty"` // only once finished
	Descriptor game.Descriptor `json:"descriptor"`
}

// handleNewRound starts (or restarts) the session's round. Restarting an
// in-progress round is allowed and simply abandons it, matching the
// original's "Play again" behavior.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	mode := game.ModeDaily
	if req.Mode == string(game.ModePractice) {
		mode = game.ModePractice
	}

	rd, err := game.Start(s.cat, mode, time.Now(), s.salt)
	if err != nil {
		if errors.Is(err, game.ErrEmptyCatalog) {
			http.Error(w, `{"error":"no_stations"}`, http.StatusServiceUnavailable)
			return
		}
		log.Error().Err(err).Msg("start round")
		http.Error(w, `{"error":"start_failed"}`, http.StatusInternalServerError)
		return
	}

	sid := s.ensureSessionID(w, r)
	if err := s.store.Save(r.Context(), sid, rd); err != nil {
		log.Error().Err(err).Msg("save round")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	s.writeRound(w, rd)
}

// handleGuess applies one guess to the session's round.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	sid := s.ensureSessionID(w, r)
	rd, err := s.store.Get(r.Context(), sid)
	if err != nil {
		http.Error(w, `{"error":"no_round"}`, http.StatusNotFound)
		return
	}
	if err := rd.SubmitGuess(req.Guess, s.cat); err != nil {
		// Guessing on a finished round is a client bug, not a player move.
		http.Error(w, `{"error":"round_finished"}`, http.StatusConflict)
		return
	}
	if err := s.store.Save(r.Context(), sid, rd); err != nil {
		log.Error().Err(err).Msg("save round")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	s.writeRound(w, rd)
}

// handleState returns the session's current round, if any.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sid := s.ensureSessionID(w, r)
	rd, err := s.store.Get(r.Context(), sid)
	if err != nil {
		http.Error(w, `{"error":"no_round"}`, http.StatusNotFound)
		return
	}
	s.writeRound(w, rd)
}

// writeRound encodes the round plus its freshly derived descriptor.
func (s *Server) writeRound(w http.ResponseWriter, rd *game.Round) {
	res := roundRes{
		RoundID:    rd.ID,
		Mode:       rd.Mode,
		Phase:      rd.Phase,
		Remaining:  rd.Remaining,
		Won:        rd.Won,
		Feedback:   rd.Feedback,
		Guesses:    rd.Guesses,
		Descriptor: game.BuildDescriptor(rd, s.cat, s.render),
	}
	if rd.Phase == game.PhaseFinished {
		res.Answer = rd.Answer.Name
	}
	_ = json.NewEncoder(w).Encode(res)
}

// ---------------------------- AUTOCOMPLETE ---------------------------------

// suggestRes is returned by GET /suggest.
type suggestRes struct {
	Suggestions []string `json:"suggestions"`
}

// handleSuggest returns prefix matches for the typed text.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	sugg := catalog.PrefixSuggestions(q, s.cat.Names(), suggestionLimit)
	if sugg == nil {
		sugg = []string{}
	}
	_ = json.NewEncoder(w).Encode(suggestRes{Suggestions: sugg})
}

// ------------------------------ SESSIONS -----------------------------------

const sessionCookieName = "metrodupe_session"

// ensureSessionID returns an existing session cookie or sets a new one.
// The cookie only identifies the browser; there are no accounts.
func (s *Server) ensureSessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := genID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   os.Getenv("NODE_ENV") == "production",
		SameSite: func() http.SameSite {
			if os.Getenv("NODE_ENV") == "production" {
				return http.SameSiteNoneMode
			}
			return http.SameSiteLaxMode
		}(),
		Expires: time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
