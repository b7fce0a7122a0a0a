package object

import "github.com/tomz197/roids/internal/physics"

// Label is positioned text in gameplay space (Y up, anchor at the baseline's
// left end).
type Label struct {
	Body
	Value string
	Size  int // Font size hint in points; renderers may ignore it
}

// NewLabel creates a visible label.
func NewLabel(value string, size int, pos physics.Vector) *Label {
	return &Label{Body: Body{Pos: pos}, Value: value, Size: size}
}

// Draw hands the label to the renderer.
func (l *Label) Draw(r Renderer) {
	if l.Hidden || l.Value == "" {
		return
	}
	r.DrawText(*l)
}

// Update is a no-op for static text.
func (l *Label) Update(UpdateContext) {}

// Bounds is a unit box at the anchor; labels never collide.
func (l *Label) Bounds() physics.Rect {
	return physics.RectAt(l.Pos, 1, 1)
}
