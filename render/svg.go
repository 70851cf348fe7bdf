// Package render: painter's-algorithm SVG emission via svgo.
package render

import (
	"fmt"
	"io"
	"math"
	"sort"

	svg "github.com/ajstarks/svgo"
)

// Fixed drawing parameters, matching the reference figure.
const (
	arrowHeadPx   = 12   // arrowhead length in pixels
	arrowHeadWing = 0.45 // arrowhead half-angle in radians (~26°)
	labelFontPx   = 11   // arrow label font size
	badgeFontPx   = 10   // angle badge font size
	badgeCharPx   = 7    // crude per-character width for the badge box
	badgePadPx    = 4    // badge box padding
)

// errWriter records the first write failure so WriteSVG can report it;
// svgo itself discards fmt.Fprintf errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}

	return n, err
}

// painter maps projected view coordinates onto SVG pixel space.
type painter struct {
	canvas *svg.SVG
	scale  float64 // pixels per world unit
	cx, cy float64 // pixel center
}

// px converts a projected point to integer pixel coordinates. The vertical
// axis flips: view y grows upward, SVG y grows downward.
func (p *painter) px(v viewPoint) (int, int) {
	return int(math.Round(p.cx + v.x*p.scale)), int(math.Round(p.cy - v.y*p.scale))
}

// WriteSVG emits the scene to w as a width×height SVG document.
//
// Stage 1 (Validate): viewport positive, scene non-empty.
// Stage 2 (Execute): stable-sort primitives by (layer, depth ascending) so
// surface geometry paints back-to-front and annotations overlay it, then
// draw through svgo onto a white background.
// Stage 3 (Finalize): report the writer's first error, unmodified cause.
//
// Output is deterministic: identical scenes yield byte-identical documents.
// Complexity: O(p log p) in the primitive count p.
func (s *Scene) WriteSVG(w io.Writer, width, height int) error {
	// Validate viewport and content
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadViewport, width, height)
	}
	if len(s.prims) == 0 {
		return ErrEmptyScene
	}

	// Back-to-front order; stable keeps insertion order for depth ties.
	ordered := make([]primitive, len(s.prims))
	copy(ordered, s.prims)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].layer() != ordered[j].layer() {
			return ordered[i].layer() < ordered[j].layer()
		}

		return ordered[i].depth() < ordered[j].depth()
	})

	// Emit
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	half := math.Min(float64(width), float64(height)) / 2
	p := &painter{
		canvas: canvas,
		scale:  half / s.cam.Limit,
		cx:     float64(width) / 2,
		cy:     float64(height) / 2,
	}
	for _, prim := range ordered {
		prim.draw(p)
	}
	canvas.End()

	return ew.err
}

// quadPrim is one translucent surface cell.
type quadPrim struct {
	corners [4]viewPoint
	fill    string
	stroke  string
}

func (q *quadPrim) layer() drawLayer { return layerSurface }

func (q *quadPrim) depth() float64 {
	return (q.corners[0].depth + q.corners[1].depth + q.corners[2].depth + q.corners[3].depth) / 4
}

func (q *quadPrim) draw(p *painter) {
	xs := make([]int, 4)
	ys := make([]int, 4)
	for i, c := range q.corners {
		xs[i], ys[i] = p.px(c)
	}
	style := fmt.Sprintf("fill:%s;fill-opacity:0.3;stroke:%s;stroke-width:0.5", q.fill, q.stroke)
	p.canvas.Polygon(xs, ys, style)
}

// pathPrim is a stroked polyline (the circumference guide).
type pathPrim struct {
	pts     []viewPoint
	color   string
	width   float64
	opacity float64
	dashed  bool
}

func (l *pathPrim) layer() drawLayer { return layerSurface }

func (l *pathPrim) depth() float64 {
	sum := 0.0
	for _, pt := range l.pts {
		sum += pt.depth
	}

	return sum / float64(len(l.pts))
}

func (l *pathPrim) draw(p *painter) {
	xs := make([]int, len(l.pts))
	ys := make([]int, len(l.pts))
	for i, pt := range l.pts {
		xs[i], ys[i] = p.px(pt)
	}
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g;stroke-opacity:%g", l.color, l.width, l.opacity)
	if l.dashed {
		style += ";stroke-dasharray:6,6"
	}
	p.canvas.Polyline(xs, ys, style)
}

// arrowPrim is a directed arrow with an optional bold label past the tip.
type arrowPrim struct {
	base, tip viewPoint
	labelAt   viewPoint
	color     string
	label     string
	width     float64
	opacity   float64
}

func (a *arrowPrim) layer() drawLayer { return layerOverlay }

// depth uses the closer endpoint so an arrow pointing at the viewer sorts
// in front of one pointing away.
func (a *arrowPrim) depth() float64 { return math.Max(a.base.depth, a.tip.depth) }

func (a *arrowPrim) draw(p *painter) {
	x1, y1 := p.px(a.base)
	x2, y2 := p.px(a.tip)

	stroke := fmt.Sprintf("stroke:%s;stroke-width:%g;stroke-opacity:%g", a.color, a.width, a.opacity)
	p.canvas.Line(x1, y1, x2, y2, stroke)

	// Arrowhead: two wings back from the tip along the shaft direction.
	ang := math.Atan2(float64(y2-y1), float64(x2-x1))
	if x1 != x2 || y1 != y2 { // degenerate arrows keep the bare shaft point
		for _, wing := range []float64{ang + math.Pi - arrowHeadWing, ang + math.Pi + arrowHeadWing} {
			wx := x2 + int(math.Round(arrowHeadPx*math.Cos(wing)))
			wy := y2 + int(math.Round(arrowHeadPx*math.Sin(wing)))
			p.canvas.Line(x2, y2, wx, wy, stroke)
		}
	}

	if a.label != "" {
		lx, ly := p.px(a.labelAt)
		style := fmt.Sprintf("fill:%s;font-size:%dpx;font-weight:bold;font-family:sans-serif", a.color, labelFontPx)
		p.canvas.Text(lx, ly, a.label, style)
	}
}

// markerPrim is a filled dot of fixed pixel radius.
type markerPrim struct {
	at       viewPoint
	radiusPx int
	fill     string
	stroke   string
}

func (m *markerPrim) layer() drawLayer { return layerOverlay }
func (m *markerPrim) depth() float64   { return m.at.depth }

func (m *markerPrim) draw(p *painter) {
	x, y := p.px(m.at)
	style := fmt.Sprintf("fill:%s;fill-opacity:0.8;stroke:%s;stroke-width:2", m.fill, m.stroke)
	p.canvas.Circle(x, y, m.radiusPx, style)
}

// textPrim is a standalone annotation, optionally on a badge box.
type textPrim struct {
	at    viewPoint
	text  string
	color string
	badge bool
}

func (t *textPrim) layer() drawLayer { return layerOverlay }
func (t *textPrim) depth() float64   { return t.at.depth }

func (t *textPrim) draw(p *painter) {
	x, y := p.px(t.at)
	if t.badge {
		// SVG has no text measurement; the box is sized from a fixed
		// per-character width.
		bw := badgeCharPx*len([]rune(t.text)) + 2*badgePadPx
		bh := badgeFontPx + 2*badgePadPx
		p.canvas.Roundrect(x-badgePadPx, y-badgeFontPx-badgePadPx, bw, bh, 3, 3,
			"fill:yellow;fill-opacity:0.7;stroke:none")
	}
	style := fmt.Sprintf("fill:%s;font-size:%dpx;font-weight:bold;font-family:sans-serif", t.color, badgeFontPx)
	p.canvas.Text(x, y, t.text, style)
}
