package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read at startup.
const (
	EnvConfig = "GETAWAY_CONFIG"
	EnvSeed   = "GETAWAY_SEED"
	EnvScores = "GETAWAY_SCORES"
	EnvAssets = "GETAWAY_ASSETS"
	EnvMute   = "GETAWAY_MUTE"
)

// LoadEnv reads .env style files into the process environment. Missing
// files are ignored; variables already set win.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ApplyEnv overrides file settings with GETAWAY_* variables.
func ApplyEnv(c *Config) {
	c.Scores.File = GetEnv(EnvScores, c.Scores.File)
	c.Assets.Dir = GetEnv(EnvAssets, c.Assets.Dir)
	if v, ok := os.LookupEnv(EnvMute); ok {
		if mute, err := strconv.ParseBool(v); err == nil {
			c.Audio.Mute = mute
		}
	}
}

// Seed returns GETAWAY_SEED, or fallback when unset or not a number.
func Seed(fallback int64) int64 {
	v, ok := os.LookupEnv(EnvSeed)
	if !ok {
		return fallback
	}
	seed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return seed
}
