package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"getaway/world"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaultMatchesWorldTuning(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Tuning() != world.DefaultTuning() {
		t.Fatalf("Default().Tuning() = %+v, want world.DefaultTuning()", c.Tuning())
	}
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if c.Game != Default().Game {
		t.Fatalf("Load(\"\") game = %+v, want defaults", c.Game)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, "getaway.toml", `
[window]
title = "Chase"
scale = 2.0

[game]
width = 640
height = 360
pursuer_interval_ms = 1500
speed_every = 200

[audio]
mute = true

[scores]
size = 3
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Window.Title != "Chase" || c.Window.Scale != 2 {
		t.Fatalf("window = %+v", c.Window)
	}
	if !c.Audio.Mute || c.Audio.Volume != 0.5 {
		t.Fatalf("audio = %+v", c.Audio)
	}
	if c.Scores.Size != 3 || c.Scores.File != "highscores.json" {
		t.Fatalf("scores = %+v", c.Scores)
	}

	tn := c.Tuning()
	if tn.Width != 640 || tn.Height != 360 {
		t.Fatalf("canvas = %vx%v, want 640x360", tn.Width, tn.Height)
	}
	if tn.PursuerInterval != 1500*time.Millisecond || tn.VehicleInterval != 5*time.Second {
		t.Fatalf("intervals = %v/%v", tn.PursuerInterval, tn.VehicleInterval)
	}
	if tn.SpeedEvery != 200 || tn.PlayerSize != 70 {
		t.Fatalf("tuning = %+v", tn)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", "[game]\nwidth = 0\n"},
		{"negative interval", "[game]\nvehicle_interval_ms = -1\n"},
		{"shrink above one", "[game]\nshrink_factor = 1.5\n"},
		{"loud", "[audio]\nvolume = 2.0\n"},
		{"huge player", "[game]\nplayer_size = 1000\n"},
		{"no scores", "[scores]\nsize = 0\n"},
		{"stalled enemies", "[game]\nstart_speed = 0\n"},
		{"reversed enemies", "[game]\nstart_speed = -1\n"},
		{"frozen player", "[game]\nplayer_step = 0\n"},
		{"negative spread", "[game]\nmax_spread = -0.1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "bad.toml", tt.body))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Load error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadDecodeErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("missing file did not fail")
	}
	_, err := Load(writeFile(t, "broken.toml", "[game\nwidth = "))
	if err == nil || errors.Is(err, ErrInvalid) {
		t.Fatalf("broken toml error = %v, want a decode error", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvScores, "/tmp/scores.json")
	t.Setenv(EnvAssets, "/srv/assets")
	t.Setenv(EnvMute, "true")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Scores.File != "/tmp/scores.json" || c.Assets.Dir != "/srv/assets" || !c.Audio.Mute {
		t.Fatalf("env overrides not applied: %+v", c)
	}
}

func TestSeed(t *testing.T) {
	t.Setenv(EnvSeed, "42")
	if got := Seed(7); got != 42 {
		t.Fatalf("Seed = %d, want 42", got)
	}
	t.Setenv(EnvSeed, "not a number")
	if got := Seed(7); got != 7 {
		t.Fatalf("Seed = %d, want fallback 7", got)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := writeFile(t, ".env", "GETAWAY_TEST_VALUE=from-file\n")
	t.Setenv("GETAWAY_TEST_VALUE", "")
	os.Unsetenv("GETAWAY_TEST_VALUE")

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if got := GetEnv("GETAWAY_TEST_VALUE", "fallback"); got != "from-file" {
		t.Fatalf("GetEnv = %q, want from-file", got)
	}
	if err := LoadEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Fatalf("missing env file should be ignored: %v", err)
	}
}
