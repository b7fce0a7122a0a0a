package client

import (
	"github.com/tomz197/roids/internal/draw"
	"github.com/tomz197/roids/internal/object"
	"github.com/tomz197/roids/internal/physics"
)

// canvasRenderer draws sprites onto the half-block canvas. Gameplay space is
// Y-up; the canvas is Y-down, so every point is flipped. Text is collected and
// written over the canvas after it has been rendered.
type canvasRenderer struct {
	canvas *draw.Canvas
	area   physics.Rect
	labels []object.Label
	shape  []physics.Vector
}

func newCanvasRenderer(canvas *draw.Canvas, area physics.Rect) *canvasRenderer {
	return &canvasRenderer{canvas: canvas, area: area}
}

func (r *canvasRenderer) aspect() float64 {
	return r.area.W / r.area.H
}

// toCanvas maps a gameplay point to canvas logical coordinates.
func (r *canvasRenderer) toCanvas(p physics.Vector) draw.Point {
	return draw.Point{X: p.X - r.area.X, Y: r.area.H - (p.Y - r.area.Y)}
}

// DrawSprite implements object.Renderer.
func (r *canvasRenderer) DrawSprite(s object.Sprite) {
	switch s.Kind {
	case object.KindPlayer, object.KindAsteroid:
		r.shape = object.Outline(r.shape[:0], s)
		points := r.canvas.BorrowPoints(len(r.shape))
		for i, v := range r.shape {
			points[i] = r.toCanvas(v)
		}
		r.canvas.DrawPolygon(points)
	case object.KindBullet:
		p := r.toCanvas(physics.Vec(s.Bounds.X, s.Bounds.Y+s.Bounds.H))
		r.canvas.FillRect(p.X, p.Y, s.Bounds.W, s.Bounds.H)
	case object.KindDebris:
		if s.Fade > 0 {
			p := r.toCanvas(s.Bounds.Center())
			r.canvas.SetFloat(p.X, p.Y)
		}
	}
}

// DrawText implements object.Renderer.
func (r *canvasRenderer) DrawText(l object.Label) {
	r.labels = append(r.labels, l)
}

// flushText writes the collected labels over the rendered canvas and marks
// their cells so the canvas repaints them next frame.
func (r *canvasRenderer) flushText(cw *draw.ChunkWriter) {
	termWidth := r.canvas.TerminalWidth()
	termHeight := r.canvas.TerminalHeight()

	for _, l := range r.labels {
		p := r.toCanvas(l.Pos)
		col, row := r.canvas.LogicalToTerminal(p.X, p.Y)
		if row < 1 || row > termHeight {
			continue
		}
		text := l.Value
		if len(text) > termWidth {
			text = text[:termWidth]
		}
		if col+len(text)-1 > termWidth {
			col = termWidth - len(text) + 1
		}
		col = max(col, 1)

		cw.WriteAt(col, row, text)
		r.canvas.MarkTextDirty(col, row, len(text))
	}
	clear(r.labels)
	r.labels = r.labels[:0]
}
