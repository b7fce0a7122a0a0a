package loop

import (
	"fmt"

	"github.com/tomz197/roids/internal/object"
	"github.com/tomz197/roids/internal/physics"
)

// HUD layout in gameplay units, measured from the top-left corner.
const (
	hudMargin     = 10.0
	hudLineHeight = 30.0
	hudFontSize   = 24
	bannerSize    = 48
)

func (s *Session) initLabels() {
	top := s.area.H - hudMargin
	s.scoreLabel = object.NewLabel("", hudFontSize, physics.Vec(hudMargin, top))
	s.highScoreLabel = object.NewLabel("", hudFontSize, physics.Vec(hudMargin, top-hudLineHeight))

	center := s.area.Center()
	s.gameOverLabel = object.NewLabel("You lost!", bannerSize, physics.Vec(center.X-100, center.Y+hudLineHeight))
	s.restartLabel = object.NewLabel("Press R or Enter to restart", hudFontSize, physics.Vec(center.X-150, center.Y-hudLineHeight))
}

func (s *Session) updateScoreLabels() {
	s.scoreLabel.Value = fmt.Sprintf("Score: %d", s.score)
	s.highScoreLabel.Value = fmt.Sprintf("High score: %d", s.highScore)
}

// Draw hands every visible entity and the HUD labels to r. It does not
// modify the session.
func (s *Session) Draw(r object.Renderer) {
	for _, a := range s.asteroids {
		a.Draw(r)
	}
	for _, b := range s.bullets {
		b.Draw(r)
	}
	for _, p := range s.debris {
		p.Draw(r)
	}
	s.player.Draw(r)

	s.scoreLabel.Draw(r)
	s.highScoreLabel.Draw(r)
	if s.dead {
		s.gameOverLabel.Draw(r)
		s.restartLabel.Draw(r)
	}
}
