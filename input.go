package getaway

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"getaway/world"
)

// readInput merges the arrow keys with a held touch or left mouse button,
// which steers the player toward the pointer.
func readInput(p world.Player) world.Input {
	in := world.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyRight),
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		in = mergeInput(in, touchInput(p, float64(x), float64(y)))
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in = mergeInput(in, touchInput(p, float64(x), float64(y)))
	}
	return in
}

// touchInput maps a pointer at (x, y) to the directions that move the
// player's centre toward it. Within a quarter of the player's size on an
// axis, that axis is left alone so the player doesn't jitter in place.
func touchInput(p world.Player, x, y float64) world.Input {
	dead := p.Size / 4
	cx, cy := p.X+p.Size/2, p.Y+p.Size/2
	return world.Input{
		Up:    y < cy-dead,
		Down:  y > cy+dead,
		Left:  x < cx-dead,
		Right: x > cx+dead,
	}
}

func mergeInput(a, b world.Input) world.Input {
	return world.Input{
		Up:    a.Up || b.Up,
		Down:  a.Down || b.Down,
		Left:  a.Left || b.Left,
		Right: a.Right || b.Right,
	}
}

// anyJustPressed reports a fresh key press, click or tap this frame.
func anyJustPressed() bool {
	if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// restartPressed reports one of the restart gestures.
func restartPressed() bool {
	for _, k := range []ebiten.Key{ebiten.KeyEnter, ebiten.KeyR, ebiten.KeySpace} {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}
