package game

import (
	"testing"

	"github.com/austinblanke891/metrodupe/internal/catalog"
	"github.com/austinblanke891/metrodupe/internal/projection"
)

func testRenderConfig() RenderConfig {
	return DefaultRenderConfig(projection.MapSize{BaseW: 3200, BaseH: 2100})
}

func TestDescriptorCenterIsAnswer(t *testing.T) {
	cat := abcCatalog(t)
	r := roundWithAnswer(t, cat, "Alpha")

	d := BuildDescriptor(r, cat, testRenderConfig())
	if d.CenterFX != 0.5 || d.CenterFY != 0.5 {
		t.Errorf("center = (%v, %v), want (0.5, 0.5)", d.CenterFX, d.CenterFY)
	}
	if d.Zoom != 3.0 {
		t.Errorf("zoom = %v, want 3.0", d.Zoom)
	}
	if d.Colorize {
		t.Error("colorize should be false before any guess")
	}
	if d.RingColor != ColorGreen {
		t.Errorf("ring = %q, want green default", d.RingColor)
	}
	if len(d.Markers) != 0 {
		t.Errorf("markers = %v, want none", d.Markers)
	}
}

func TestDescriptorColorizeTracksLastGuessOnly(t *testing.T) {
	cat := abcCatalog(t)
	r := roundWithAnswer(t, cat, "Alpha")
	cfg := testRenderConfig()

	// Same-line miss: colorize on, amber ring.
	_ = r.SubmitGuess("Beta", cat)
	d := BuildDescriptor(r, cat, cfg)
	if !d.Colorize {
		t.Error("colorize should be true after a same-line miss")
	}
	if d.RingColor != ColorAmber {
		t.Errorf("ring = %q, want amber mid-game after same-line miss", d.RingColor)
	}

	// The next guess is off-line: colorize reflects only the latest attempt.
	_ = r.SubmitGuess("Gamma", cat)
	d = BuildDescriptor(r, cat, cfg)
	if d.Colorize {
		t.Error("colorize must track the LAST guess, not the whole history")
	}
	if d.RingColor != ColorGreen {
		t.Errorf("ring = %q, want green after off-line miss", d.RingColor)
	}
}

func TestDescriptorWinRingGreen(t *testing.T) {
	cat := abcCatalog(t)
	r := roundWithAnswer(t, cat, "Alpha")

	_ = r.SubmitGuess("Alpha", cat)
	d := BuildDescriptor(r, cat, testRenderConfig())
	if d.RingColor != ColorGreen {
		t.Errorf("ring = %q, want green on win", d.RingColor)
	}
	if len(d.Markers) != 0 {
		t.Error("the answer must never produce a marker")
	}
}

func TestDescriptorMarkerColors(t *testing.T) {
	cat := abcCatalog(t)
	r := roundWithAnswer(t, cat, "Alpha")
	cfg := testRenderConfig()
	// Widen the viewport so every station projects inside it.
	cfg.Viewport = projection.Viewport{W: 100000, H: 100000}

	_ = r.SubmitGuess("Beta", cat)
	_ = r.SubmitGuess("Gamma", cat)
	_ = r.SubmitGuess("no such place", cat) // never a marker

	d := BuildDescriptor(r, cat, cfg)
	if len(d.Markers) != 2 {
		t.Fatalf("markers = %d, want 2", len(d.Markers))
	}
	byName := map[string]Marker{}
	for _, m := range d.Markers {
		byName[m.Name] = m
	}
	if byName["Beta"].Color != ColorAmber {
		t.Errorf("Beta marker = %q, want amber (same line)", byName["Beta"].Color)
	}
	if byName["Gamma"].Color != ColorRed {
		t.Errorf("Gamma marker = %q, want red", byName["Gamma"].Color)
	}
	if byName["Beta"].Radius != cfg.MarkerPx {
		t.Errorf("marker radius = %v, want %v", byName["Beta"].Radius, cfg.MarkerPx)
	}
}

func TestDescriptorMarkerVisibility(t *testing.T) {
	// Answer at the center; one guess close enough to stay inside the
	// default viewport, one far corner guess that projects outside it.
	cat := catalog.Load([]catalog.Row{
		{Name: "Center", FX: "0.5", FY: "0.5", Lines: "red"},
		{Name: "Near", FX: "0.51", FY: "0.51", Lines: "red"},
		{Name: "Far", FX: "0.99", FY: "0.99", Lines: "red"},
	})
	r := roundWithAnswer(t, cat, "Center")
	cfg := testRenderConfig()

	_ = r.SubmitGuess("Near", cat)
	_ = r.SubmitGuess("Far", cat)

	d := BuildDescriptor(r, cat, cfg)
	if len(d.Markers) != 1 {
		t.Fatalf("markers = %d, want only the near guess", len(d.Markers))
	}
	if d.Markers[0].Name != "Near" {
		t.Errorf("marker = %q, want Near", d.Markers[0].Name)
	}
	p := d.Markers[0].Pos
	if !projection.InView(cfg.Viewport, p) {
		t.Errorf("near marker projected outside viewport: %v", p)
	}
}

func TestDescriptorMarkersRelativeToAnswer(t *testing.T) {
	// Markers are projected against the answer's center, never against an
	// earlier guess, so re-rendering always lands them in the same spot.
	cat := abcCatalog(t)
	r := roundWithAnswer(t, cat, "Alpha")
	cfg := testRenderConfig()
	cfg.Viewport = projection.Viewport{W: 100000, H: 100000}

	_ = r.SubmitGuess("Beta", cat)
	first := BuildDescriptor(r, cat, cfg).Markers[0].Pos

	_ = r.SubmitGuess("Gamma", cat)
	d := BuildDescriptor(r, cat, cfg)
	for _, m := range d.Markers {
		if m.Name == "Beta" && m.Pos != first {
			t.Errorf("Beta marker moved from %v to %v across renders", first, m.Pos)
		}
	}

	beta, _ := cat.Resolve("Beta")
	want := projection.Project(cfg.Map, cfg.Viewport, 0.5, 0.5, cfg.Zoom, beta.FX, beta.FY)
	if first != want {
		t.Errorf("Beta marker = %v, want answer-centered projection %v", first, want)
	}
}

func TestRingRadiusFloor(t *testing.T) {
	cfg := testRenderConfig()
	d := BuildDescriptor(roundWithAnswer(t, abcCatalog(t), "Alpha"), abcCatalog(t), cfg)
	// 0.010 * min(3200, 2100) * 3 = 63, above the 28px floor.
	if d.RingRadius != 63 {
		t.Errorf("ring radius = %v, want 63", d.RingRadius)
	}

	small := DefaultRenderConfig(projection.MapSize{BaseW: 400, BaseH: 300})
	d = BuildDescriptor(roundWithAnswer(t, abcCatalog(t), "Alpha"), abcCatalog(t), small)
	if d.RingRadius != small.RingPx {
		t.Errorf("ring radius = %v, want floor %v", d.RingRadius, small.RingPx)
	}
}
