// internal/projection/projection.go
//
// Pure viewport geometry for the zoomed map crop.
//
// The map image has fixed base pixel dimensions. A render centers the
// viewport on one station: the image is scaled by the zoom factor and then
// translated so the chosen point lands exactly at the viewport's visual
// center. The same transform projects any other map point into viewport
// pixel space, which is how overlay markers for past guesses are placed.
//
// Invariant: Project of the center point itself is exactly (W/2, H/2) for
// every zoom, because tx/ty are derived from that very point. Everything
// else slides underneath the fixed center ring.
//
// Transforms are cheap and must be recomputed from the current answer
// center on every render; caching one keyed on anything else places old
// markers relative to the wrong crop.

package projection

// MapSize is the base pixel size of the full, unscaled map image.
type MapSize struct {
	BaseW float64
	BaseH float64
}

// Viewport is the fixed-size visible window in pixels.
type Viewport struct {
	W float64
	H float64
}

// Point is a position in viewport pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Transform is the translation applied after scaling the map by zoom.
type Transform struct {
	TX float64
	TY float64
}

// ComputeTransform returns the translation that puts the normalized map
// point (fx, fy), scaled by zoom, at the viewport center.
func ComputeTransform(m MapSize, vp Viewport, fx, fy, zoom float64) Transform {
	cx := fx * m.BaseW
	cy := fy * m.BaseH
	return Transform{
		TX: vp.W/2 - cx*zoom,
		TY: vp.H/2 - cy*zoom,
	}
}

// Project maps the normalized target point (tx, ty) into viewport pixels
// under the crop centered on (fx, fy) at the given zoom.
//
// Written as an offset from the viewport center rather than target*zoom
// plus the transform: algebraically identical, but the offset form keeps
// the center invariant exact in floating point (a zero offset cannot
// round).
func Project(m MapSize, vp Viewport, fx, fy, zoom, tx, ty float64) Point {
	return Point{
		X: (tx-fx)*m.BaseW*zoom + vp.W/2,
		Y: (ty-fy)*m.BaseH*zoom + vp.H/2,
	}
}

// InView reports whether p falls inside the viewport, boundaries included.
// Points outside are simply not drawn; there is no clamping or edge hint.
func InView(vp Viewport, p Point) bool {
	return p.X >= 0 && p.X <= vp.W && p.Y >= 0 && p.Y <= vp.H
}
