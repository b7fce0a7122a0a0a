package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/roids/internal/object"
	"github.com/tomz197/roids/internal/physics"
)

var (
	colorShip     = color.RGBA{0x80, 0xe0, 0xff, 0xff}
	colorAsteroid = color.RGBA{0xc8, 0xc0, 0xb0, 0xff}
	colorBullet   = color.RGBA{0xff, 0xf0, 0x60, 0xff}
	colorDebris   = color.RGBA{0xff, 0x90, 0x30, 0xff}
	colorText     = color.White
	colorHealth   = color.RGBA{0xff, 0x40, 0x40, 0xff}
)

const (
	lineWidth    = 2
	baseFontSize = 13 // basicfont.Face7x13 cap height in pixels
	heartSize    = 10
	heartGap     = 6
)

// vectorRenderer draws sprites as vector outlines. Gameplay space is Y-up;
// ebiten images are Y-down, so every point is flipped.
type vectorRenderer struct {
	screen *ebiten.Image
	area   physics.Rect
	face   *text.GoXFace
	shape  []physics.Vector
}

func newVectorRenderer(area physics.Rect) *vectorRenderer {
	return &vectorRenderer{
		area: area,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

func (r *vectorRenderer) begin(screen *ebiten.Image) {
	r.screen = screen
}

// toScreen maps a gameplay point to screen pixels.
func (r *vectorRenderer) toScreen(p physics.Vector) (float32, float32) {
	return float32(p.X - r.area.X), float32(r.area.H - (p.Y - r.area.Y))
}

// DrawSprite implements object.Renderer.
func (r *vectorRenderer) DrawSprite(s object.Sprite) {
	switch s.Kind {
	case object.KindPlayer:
		r.strokeOutline(s, colorShip)
	case object.KindAsteroid:
		r.strokeOutline(s, colorAsteroid)
	case object.KindBullet:
		x, y := r.toScreen(physics.Vec(s.Bounds.X, s.Bounds.Y+s.Bounds.H))
		vector.DrawFilledRect(r.screen, x, y, float32(s.Bounds.W), float32(s.Bounds.H), colorBullet, true)
	case object.KindDebris:
		if s.Fade <= 0 {
			return
		}
		x, y := r.toScreen(s.Bounds.Center())
		vector.DrawFilledCircle(r.screen, x, y, float32(s.Bounds.W/2+1), fade(colorDebris, s.Fade), true)
	}
}

func (r *vectorRenderer) strokeOutline(s object.Sprite, clr color.Color) {
	r.shape = object.Outline(r.shape[:0], s)
	for i, v := range r.shape {
		next := r.shape[(i+1)%len(r.shape)]
		x0, y0 := r.toScreen(v)
		x1, y1 := r.toScreen(next)
		vector.StrokeLine(r.screen, x0, y0, x1, y1, lineWidth, clr, true)
	}
}

// DrawText implements object.Renderer. The label anchor is the baseline's
// left end; the font is scaled from its native size to the label's size hint.
func (r *vectorRenderer) DrawText(l object.Label) {
	scale := 1.0
	if l.Size > 0 {
		scale = float64(l.Size) / baseFontSize
	}
	x, y := r.toScreen(l.Pos)

	op := &text.DrawOptions{}
	op.GeoM.Translate(0, -r.face.Metrics().HAscent)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(r.screen, l.Value, r.face, op)
}

// drawHealth draws one square per remaining hit point in the top-right corner.
func (r *vectorRenderer) drawHealth(health int) {
	width := r.screen.Bounds().Dx()
	for i := 0; i < health; i++ {
		x := float32(width - (i+1)*(heartSize+heartGap))
		vector.DrawFilledRect(r.screen, x, heartGap, heartSize, heartSize, colorHealth, true)
	}
}

// fade scales the alpha of a straight-alpha colour.
func fade(c color.RGBA, f float64) color.RGBA {
	f = min(max(f, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

