// Package getaway is the ebiten front end: it feeds keyboard and touch input
// to a world.Driver, draws its state and turns its events into sound.
package getaway

import (
	"io/fs"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"getaway/config"
	"getaway/scoreboard"
	"getaway/sound"
	"getaway/world"
)

// restartDelay is how many frames the game-over screen ignores input for, so
// a key held at the moment of the crash doesn't skip it.
const restartDelay = 30

// Game implements ebiten.Game.
type Game struct {
	driver  *world.Driver
	scene   *scene
	speaker Speaker
	board   *scoreboard.Board

	audioStarted bool
	endedFor     int
	exit         bool
}

// NewGame builds a game from cfg. seed drives every random spawn position.
func NewGame(cfg config.Config, seed int64) (*Game, error) {
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}

	res := NewResourceManager(assetFS(cfg.Assets.Dir))
	res.PreloadResources()

	board, err := scoreboard.Open(scoreboard.NewStorage(cfg.Scores.File), cfg.Scores.Size)
	if err != nil {
		log.Printf("warning: high scores unavailable: %v", err)
	}

	g := &Game{
		driver:  world.NewDriver(cfg.Tuning(), world.SystemClock{}, rand.New(rand.NewSource(seed))),
		speaker: NewSpeaker(cfg.Audio.Mute, cfg.Audio.Volume),
		board:   board,
	}
	g.scene = &scene{res: res, fonts: fonts, board: board, rank: -1}
	g.driver.Listener = g.onEvent
	log.Printf("Game started with seed %d", seed)
	return g, nil
}

func assetFS(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); err != nil {
		log.Printf("warning: assets dir %s: %v", dir, err)
		return nil
	}
	return os.DirFS(dir)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if canQuit() {
			return ebiten.Termination
		}
		g.exit = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.scene.showFPS = !g.scene.showFPS
	}
	if !g.audioStarted && anyJustPressed() {
		g.audioStarted = true
		g.speaker.Play(sound.CueAmbient)
	}

	state := g.driver.State()
	if state.Running() {
		g.endedFor = 0
		g.driver.Update(readInput(state.Player))
		return nil
	}

	g.endedFor++
	if g.endedFor > restartDelay && restartPressed() {
		g.driver.Restart()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.screen = screen
	g.driver.Render(g.scene)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	t := g.driver.State().Tuning()
	return int(t.Width), int(t.Height)
}

func (g *Game) onEvent(e world.Event) {
	switch e {
	case world.EventShot:
		g.speaker.Play(sound.CueShoot)
	case world.EventHit:
		g.speaker.Play(sound.CueHit)
	case world.EventGameOver:
		g.speaker.Pause(sound.CueAmbient)
		g.speaker.Play(sound.CueGameOver)
		g.recordScore(g.driver.State().Score)
	case world.EventRestart:
		g.scene.rank = -1
		g.speaker.Pause(sound.CueGameOver)
		g.speaker.Rewind(sound.CueAmbient)
		if g.audioStarted {
			g.speaker.Play(sound.CueAmbient)
		}
	}
}

func (g *Game) recordScore(score int) {
	log.Printf("Game over: score %d", score)
	if g.board == nil {
		return
	}
	rank, err := g.board.Record(score, time.Now())
	if err != nil {
		log.Printf("warning: failed to save high scores: %v", err)
	}
	g.scene.rank = rank
	if rank >= 0 {
		log.Printf("New high score #%d: %d", rank+1, score)
	}
}

// ReloadScores rereads the high score table, for hosts that only learn
// where it lives after the game is built.
func (g *Game) ReloadScores() {
	if g.board == nil {
		return
	}
	if err := g.board.Reload(); err != nil {
		log.Printf("warning: high scores unavailable: %v", err)
	}
}

// ShouldExit reports whether the player asked to leave on a platform where
// only the host app can close the game.
func (g *Game) ShouldExit() bool { return g.exit }

// SetExitFlag sets or clears the exit request.
func (g *Game) SetExitFlag(exit bool) { g.exit = exit }

// canQuit reports whether the platform lets the game close itself.
func canQuit() bool {
	return runtime.GOOS != "js" && runtime.GOOS != "android" && runtime.GOOS != "ios"
}
