package physics

// Rect is an axis-aligned bounding box. X/Y is the corner with the smallest
// coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAt builds a rect with its minimum corner at pos.
func RectAt(pos Vector, w, h float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: w, H: h}
}

// RectCentered builds a rect centred on pos.
func RectCentered(pos Vector, w, h float64) Rect {
	return Rect{X: pos.X - w/2, Y: pos.Y - h/2, W: w, H: h}
}

// Overlaps reports whether r and o intersect. Touching edges do not overlap.
// The test is symmetric: r.Overlaps(o) == o.Overlaps(r).
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Center returns the centre point of the rect.
func (r Rect) Center() Vector {
	return Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Min returns the corner with the smallest coordinates.
func (r Rect) Min() Vector {
	return Vector{X: r.X, Y: r.Y}
}

// Wrap applies the screen-wrap rule to p: a coordinate beyond the far edge
// resets to the near edge, and a coordinate before the near edge resets to
// the far edge. Afterwards p lies inside [X, X+W] × [Y, Y+H].
func (r Rect) Wrap(p Vector) Vector {
	if p.X > r.X+r.W {
		p.X = r.X
	}
	if p.Y > r.Y+r.H {
		p.Y = r.Y
	}
	if p.X < r.X {
		p.X = r.X + r.W
	}
	if p.Y < r.Y {
		p.Y = r.Y + r.H
	}
	return p
}
