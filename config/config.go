// Package config loads game settings from a TOML file layered over defaults,
// with a few environment overrides.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"getaway/world"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window Window `toml:"window"`
	Game   Game   `toml:"game"`
	Audio  Audio  `toml:"audio"`
	Assets Assets `toml:"assets"`
	Scores Scores `toml:"scores"`
}

type Window struct {
	Title string  `toml:"title"`
	Scale float64 `toml:"scale"`
}

// Game mirrors the tunable part of world.Tuning.
type Game struct {
	Width             float64 `toml:"width"`
	Height            float64 `toml:"height"`
	PlayerSize        float64 `toml:"player_size"`
	PlayerStep        float64 `toml:"player_step"`
	PursuerIntervalMS int     `toml:"pursuer_interval_ms"`
	VehicleIntervalMS int     `toml:"vehicle_interval_ms"`
	FireCooldown      int     `toml:"fire_cooldown"`
	StartSpeed        float64 `toml:"start_speed"`
	SpeedStep         float64 `toml:"speed_step"`
	SpeedEvery        int     `toml:"speed_every"`
	MaxSpread         float64 `toml:"max_spread"`
	ShrinkFactor      float64 `toml:"shrink_factor"`
}

type Audio struct {
	Mute   bool    `toml:"mute"`
	Volume float64 `toml:"volume"`
}

type Assets struct {
	Dir string `toml:"dir"`
}

type Scores struct {
	File string `toml:"file"`
	Size int    `toml:"size"`
}

// Default returns the built-in settings.
func Default() Config {
	t := world.DefaultTuning()
	return Config{
		Window: Window{
			Title: "Getaway",
			Scale: 1,
		},
		Game: Game{
			Width:             t.Width,
			Height:            t.Height,
			PlayerSize:        t.PlayerSize,
			PlayerStep:        t.PlayerStep,
			PursuerIntervalMS: int(t.PursuerInterval / time.Millisecond),
			VehicleIntervalMS: int(t.VehicleInterval / time.Millisecond),
			FireCooldown:      t.FireCooldown,
			StartSpeed:        t.StartSpeed,
			SpeedStep:         t.SpeedStep,
			SpeedEvery:        t.SpeedEvery,
			MaxSpread:         t.MaxSpread,
			ShrinkFactor:      t.ShrinkFactor,
		},
		Audio: Audio{
			Volume: 0.5,
		},
		Assets: Assets{
			Dir: "assets",
		},
		Scores: Scores{
			File: "highscores.json",
			Size: 5,
		},
	}
}

// Load decodes the TOML file at path over Default. An empty path returns
// the defaults. Unknown keys are logged, not rejected.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, &c)
		if err != nil {
			return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			log.Printf("warning: unknown config keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}
	ApplyEnv(&c)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the settings the game cannot run without.
func (c Config) Validate() error {
	g := c.Game
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %vx%v", ErrInvalid, g.Width, g.Height)
	case g.PlayerSize <= 0 || g.PlayerSize > g.Width || g.PlayerSize > g.Height:
		return fmt.Errorf("%w: player_size %v does not fit the canvas", ErrInvalid, g.PlayerSize)
	case g.PursuerIntervalMS <= 0 || g.VehicleIntervalMS <= 0:
		return fmt.Errorf("%w: spawn intervals must be positive", ErrInvalid)
	case g.PlayerStep <= 0:
		return fmt.Errorf("%w: player_step must be positive", ErrInvalid)
	case g.StartSpeed <= 0:
		return fmt.Errorf("%w: start_speed must be positive", ErrInvalid)
	case g.MaxSpread < 0:
		return fmt.Errorf("%w: max_spread must not be negative", ErrInvalid)
	case g.FireCooldown <= 0:
		return fmt.Errorf("%w: fire_cooldown must be positive", ErrInvalid)
	case g.SpeedEvery <= 0:
		return fmt.Errorf("%w: speed_every must be positive", ErrInvalid)
	case g.SpeedStep < 0:
		return fmt.Errorf("%w: speed_step must not be negative", ErrInvalid)
	case g.ShrinkFactor <= 0 || g.ShrinkFactor > 1:
		return fmt.Errorf("%w: shrink_factor must be in (0,1], got %v", ErrInvalid, g.ShrinkFactor)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume must be in [0,1], got %v", ErrInvalid, c.Audio.Volume)
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window scale must be positive", ErrInvalid)
	case c.Scores.Size <= 0:
		return fmt.Errorf("%w: scores size must be positive", ErrInvalid)
	}
	return nil
}

// Tuning converts the game section into simulation constants. Anything not
// exposed in the file keeps its default.
func (c Config) Tuning() world.Tuning {
	t := world.DefaultTuning()
	g := c.Game
	t.Width = g.Width
	t.Height = g.Height
	t.PlayerSize = g.PlayerSize
	t.PlayerStep = g.PlayerStep
	t.PursuerInterval = time.Duration(g.PursuerIntervalMS) * time.Millisecond
	t.VehicleInterval = time.Duration(g.VehicleIntervalMS) * time.Millisecond
	t.FireCooldown = g.FireCooldown
	t.StartSpeed = g.StartSpeed
	t.SpeedStep = g.SpeedStep
	t.SpeedEvery = g.SpeedEvery
	t.MaxSpread = g.MaxSpread
	t.ShrinkFactor = g.ShrinkFactor
	return t
}
