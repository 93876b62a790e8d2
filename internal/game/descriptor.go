// internal/game/descriptor.go
//
// Render descriptor assembly. This is the entire handoff to whatever draws
// the map: a crop center, zoom, grayscale flag, ring color, and projected
// markers for past wrong guesses. No widget or DOM concepts cross this
// boundary.
//
// Markers are re-derived from scratch on every call as a pure function of
// (round, catalog, geometry). Every guess in history is projected relative
// to the ANSWER's center, never relative to an earlier guess, so markers
// stay put while the player keeps looking at the same crop.

package game

import (
	"github.com/austinblanke891/metrodupe/internal/catalog"
	"github.com/austinblanke891/metrodupe/internal/projection"
)

// Ring/marker colors, shared with the original board styling.
const (
	ColorGreen = "#22c55e"
	ColorAmber = "#eab308"
	ColorRed   = "#ef4444"
)

// RenderConfig carries the fixed visual tuning for a session. These are
// design parameters, not negotiated at runtime.
type RenderConfig struct {
	Map        projection.MapSize
	Viewport   projection.Viewport
	Zoom       float64
	RingPx     float64 // minimum ring radius in pixels
	RingStroke float64
	MarkerPx   float64 // marker radius in pixels
}

// DefaultRenderConfig mirrors the original game's tuning block. The base
// map size is a placeholder until the real image dimensions are known.
func DefaultRenderConfig(m projection.MapSize) RenderConfig {
	return RenderConfig{
		Map:        m,
		Viewport:   projection.Viewport{W: 980, H: 620},
		Zoom:       3.0,
		RingPx:     28,
		RingStroke: 6,
		MarkerPx:   10,
	}
}

// Marker is one projected past-guess indicator.
type Marker struct {
	Name   string           `json:"name"`
	Pos    projection.Point `json:"pos"`
	Color  string           `json:"color"`
	Radius float64          `json:"radius"`
}

// Descriptor describes one frame of the board.
type Descriptor struct {
	CenterFX   float64  `json:"centerFx"`
	CenterFY   float64  `json:"centerFy"`
	Zoom       float64  `json:"zoom"`
	Colorize   bool     `json:"colorize"` // false → draw the map desaturated
	RingColor  string   `json:"ringColor"`
	RingRadius float64  `json:"ringRadius"`
	RingStroke float64  `json:"ringStroke"`
	Markers    []Marker `json:"markers"`
}

// BuildDescriptor derives the current frame from round state.
//
// Colorize reflects only the LAST guess: the map regains color when the
// latest attempt shares a line with the answer. The ring is green by
// default and on a win, amber only mid-game after a same-line miss.
// Markers cover every resolved, non-answer guess in history that projects
// inside the viewport (boundaries included); the answer itself never gets
// a marker.
func BuildDescriptor(r *Round, cat *catalog.Catalog, cfg RenderConfig) Descriptor {
	ans := r.Answer

	colorize := false
	if last, ok := cat.Resolve(r.LastGuess()); ok && catalog.SameLine(last, ans) {
		colorize = true
	}

	ring := ColorGreen
	if colorize && !(r.Phase == PhaseFinished && r.Won) {
		ring = ColorAmber
	}

	d := Descriptor{
		CenterFX:   ans.FX,
		CenterFY:   ans.FY,
		Zoom:       cfg.Zoom,
		Colorize:   colorize,
		RingColor:  ring,
		RingRadius: ringRadius(cfg),
		RingStroke: cfg.RingStroke,
		Markers:    []Marker{},
	}

	for _, raw := range r.Guesses {
		s, ok := cat.Resolve(raw)
		if !ok || s.Key() == ans.Key() {
			continue
		}
		p := projection.Project(cfg.Map, cfg.Viewport, ans.FX, ans.FY, cfg.Zoom, s.FX, s.FY)
		if !projection.InView(cfg.Viewport, p) {
			continue
		}
		color := ColorRed
		if catalog.SameLine(s, ans) {
			color = ColorAmber
		}
		d.Markers = append(d.Markers, Marker{Name: s.Name, Pos: p, Color: color, Radius: cfg.MarkerPx})
	}
	return d
}

// ringRadius scales the center ring with the map so it reads the same at
// any base image size, with RingPx as the floor.
func ringRadius(cfg RenderConfig) float64 {
	r := 0.010 * min(cfg.Map.BaseW, cfg.Map.BaseH) * cfg.Zoom
	if r < cfg.RingPx {
		return cfg.RingPx
	}
	return r
}
