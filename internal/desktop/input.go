package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/roids/internal/input"
)

var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	thrustKeys  = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	shootKeys   = []ebiten.Key{ebiten.KeySpace}
	spawnKeys   = []ebiten.Key{ebiten.KeyJ}
	restartKeys = []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readInput samples the keyboard for the current tick. Held state comes from
// the live key map; actions fire once on the tick a key goes down.
func readInput() input.Input {
	pressed := input.Actions{
		Shoot:   anyJustPressed(shootKeys),
		Spawn:   anyJustPressed(spawnKeys),
		Restart: anyJustPressed(restartKeys),
		Quit:    anyJustPressed(quitKeys),
	}

	return input.Input{
		Left:    anyPressed(leftKeys),
		Right:   anyPressed(rightKeys),
		Thrust:  anyPressed(thrustKeys),
		Shoot:   anyPressed(shootKeys),
		Spawn:   anyPressed(spawnKeys),
		Restart: anyPressed(restartKeys),
		Quit:    pressed.Quit,
		Pressed: pressed,
	}
}
