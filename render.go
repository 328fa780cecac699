package getaway

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"getaway/scoreboard"
	"getaway/world"
)

var (
	roadColor  = color.RGBA{52, 56, 64, 255}
	laneColor  = color.RGBA{200, 200, 180, 255}
	panelColor = color.RGBA{0, 0, 0, 180}
	bannerRed  = color.RGBA{255, 0, 0, 255}
	highlight  = color.RGBA{255, 220, 0, 255}
)

// scene draws a world.State onto the screen it was pointed at for this frame.
type scene struct {
	screen  *ebiten.Image
	res     *ResourceManager
	fonts   Fonts
	board   *scoreboard.Board
	rank    int // board position of the last run, -1 if it didn't place
	showFPS bool
}

func (sc *scene) Render(s *world.State) {
	screen := sc.screen
	t := s.Tuning()

	screen.Fill(roadColor)
	sc.drawLanes(t)

	p := s.Player
	sc.drawSprite(PlayerFrame(s.PlayerFrame), p.X, p.Y, p.Size, p.Size)
	police := PoliceFrame(s.PursuerFrame)
	for _, e := range s.Pursuers {
		sc.drawSprite(police, e.X, e.Y, e.Size, e.Size)
	}
	for _, v := range s.Vehicles {
		sc.drawSprite(ResourceCar, v.X, v.Y, v.Width, v.Height)
	}
	for _, w := range s.Projectiles {
		sc.drawSprite(ResourceWater, w.X, w.Y, w.Width, w.Height)
	}

	sc.drawHUD(s)
	if showGameOver(s) {
		sc.drawGameOver(s)
	}
	if sc.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, int(t.Height)-18)
	}
}

// showGameOver reports whether the game-over overlay belongs on screen.
func showGameOver(s *world.State) bool {
	return s.Phase == world.PhaseEnded
}

func (sc *scene) drawLanes(t world.Tuning) {
	for _, y := range []float64{t.Height / 3, 2 * t.Height / 3} {
		for x := 0.0; x < t.Width; x += 60 {
			vector.DrawFilledRect(sc.screen, float32(x), float32(y)-2, 30, 4, laneColor, false)
		}
	}
}

// drawSprite scales the named image to fill the w×h box at (x, y).
func (sc *scene) drawSprite(r ResourceType, x, y, w, h float64) {
	img := sc.res.GetResource(r)
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	sc.screen.DrawImage(img, op)
}

func (sc *scene) drawHUD(s *world.State) {
	t := s.Tuning()
	drawText(sc.screen, sc.fonts.HUD, fmt.Sprintf("Score: %d", s.Score), 10, 8, color.White)
	if sc.board != nil {
		best := max(sc.board.Best(), s.Score)
		drawText(sc.screen, sc.fonts.HUD, fmt.Sprintf("Best: %d", best), int(t.Width)-110, 8, color.White)
	}
}

func (sc *scene) drawGameOver(s *world.State) {
	t := s.Tuning()
	w, h := int(t.Width), int(t.Height)
	drawText(sc.screen, sc.fonts.Banner, "GAME OVER", w/2-150, h/2-50, bannerRed)

	px, py := float32(w/2-110), float32(h/2+10)
	vector.DrawFilledRect(sc.screen, px, py, 220, 130, panelColor, false)
	drawText(sc.screen, sc.fonts.HUD, fmt.Sprintf("Your Score: %d", s.Score), int(px)+12, int(py)+8, color.White)

	if sc.board != nil {
		for i, e := range sc.board.Entries() {
			clr := color.Color(color.Gray{200})
			if i == sc.rank {
				clr = highlight
			}
			drawText(sc.screen, sc.fonts.HUD, fmt.Sprintf("%d. %6d", i+1, e.Score), int(px)+12, int(py)+28+i*hudLine, clr)
		}
	}
	drawText(sc.screen, sc.fonts.HUD, "Press Enter or tap to run again", w/2-125, h-24, color.Gray{160})
}
