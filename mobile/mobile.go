package mobile

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"getaway"
	"getaway/config"
	"getaway/scoreboard"
)

var game *getaway.Game

func init() {
	cfg := config.Default()
	cfg.Assets.Dir = ""

	var err error
	game, err = getaway.NewGame(cfg, time.Now().UnixNano())
	if err != nil {
		log.Fatal(err)
	}
	mobile.SetGame(game)
}

// SetFilesDir tells the game where the app may write its high scores.
// Call it from the host activity before the game view starts.
//
//export SetFilesDir
func SetFilesDir(dir string) {
	scoreboard.SetDir(dir)
	game.ReloadScores()
}

// ShouldExit lets the host activity poll whether the player asked to quit.
//
//export ShouldExit
func ShouldExit() bool {
	return game.ShouldExit()
}

// SetExitFlag sets or clears the quit request, e.g. after the host handled it.
//
//export SetExitFlag
func SetExitFlag(exit bool) {
	game.SetExitFlag(exit)
}

// Dummy is a dummy exported function.
//
// gomobile doesn't compile a package that doesn't include any exported function.
// Dummy forces gomobile to compile this package.
func Dummy() {}
