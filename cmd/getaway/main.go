package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"

	"getaway"
	"getaway/config"
	"getaway/world"
)

const frameInterval = time.Second / 60

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("warning: .env: %v", err)
	}

	configPath := flag.String("config", config.GetEnv(config.EnvConfig, ""), "path to a TOML config file")
	headless := flag.Bool("headless", false, "simulate without a window and print the result")
	ticks := flag.Int("ticks", 3600, "frames to simulate in headless mode")
	seed := flag.Int64("seed", config.Seed(time.Now().UnixNano()), "random seed for spawn positions")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if *headless {
		if err := runHeadless(cfg, *seed, *ticks); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal(err)
		}
		return
	}

	game, err := getaway.NewGame(cfg, *seed)
	if err != nil {
		log.Fatal(err)
	}

	t := cfg.Tuning()
	ebiten.SetWindowSize(int(t.Width*cfg.Window.Scale), int(t.Height*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// runHeadless plays a session with no input at 60 frames per second of
// simulated time and reports how it went.
func runHeadless(cfg config.Config, seed int64, ticks int) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	clock := world.NewManualClock(time.Unix(0, 0))
	driver := world.NewDriver(cfg.Tuning(), clock, rand.New(rand.NewSource(seed)))

	frame, endedAt, shots := 0, -1, 0
	driver.Listener = func(e world.Event) {
		switch e {
		case world.EventShot:
			shots++
		case world.EventGameOver:
			endedAt = frame
		}
	}
	counter := world.RendererFunc(func(*world.State) { frame++ })

	err := driver.Run(ctx, world.Frames(ctx, clock.Now(), ticks, frameInterval), nil, counter)

	s := driver.State()
	fmt.Printf("seed %d: %d frames, score %d, speed %.1f, %d bursts\n", seed, frame, s.Score, s.Speed, shots)
	if endedAt >= 0 {
		fmt.Printf("caught on frame %d\n", endedAt+1)
	} else {
		fmt.Printf("still running with %d pursuers, %d vehicles, %d projectiles on screen\n",
			len(s.Pursuers), len(s.Vehicles), len(s.Projectiles))
	}
	return err
}
