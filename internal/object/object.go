package object

import (
	"time"

	"github.com/tomz197/roids/internal/input"
	"github.com/tomz197/roids/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta time.Duration
	Input Input
	Area  physics.Rect // Gameplay area used for wrapping and culling
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object by one frame.
	Update(ctx UpdateContext)

	// Draw hands the object's current sprite to the renderer. Must not mutate state.
	Draw(r Renderer)

	// Bounds returns the axis-aligned bounding box at the current position.
	Bounds() physics.Rect

	// Position returns the object's anchor position.
	Position() physics.Vector

	// Visible reports whether the object should be drawn this frame.
	Visible() bool
}

// Body is the only state shared by all objects: where they are and whether
// they are drawn.
type Body struct {
	Pos    physics.Vector
	Hidden bool
}

// Position returns the anchor position.
func (b *Body) Position() physics.Vector {
	return b.Pos
}

// Visible reports whether the object should be drawn.
func (b *Body) Visible() bool {
	return !b.Hidden
}

// SetVisible shows or hides the object.
func (b *Body) SetVisible(v bool) {
	b.Hidden = !v
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}
