// Package sound synthesises the game's four audio cues as 16-bit stereo PCM
// so the front end can play them without shipping audio files.
package sound

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every cue is rendered at.
const SampleRate = 48000

// BytesPerFrame is one stereo frame of signed 16-bit little-endian samples.
const BytesPerFrame = 4

// Cue names one of the sounds the game plays.
type Cue int

const (
	CueAmbient Cue = iota
	CueHit
	CueShoot
	CueGameOver
)

// Cues lists every cue in a stable order.
var Cues = []Cue{CueAmbient, CueHit, CueShoot, CueGameOver}

func (c Cue) String() string {
	switch c {
	case CueAmbient:
		return "ambient"
	case CueHit:
		return "hit"
	case CueShoot:
		return "shoot"
	case CueGameOver:
		return "gameover"
	default:
		return fmt.Sprintf("cue(%d)", int(c))
	}
}

// Loops reports whether the cue is meant to repeat until paused.
func (c Cue) Loops() bool { return c == CueAmbient }

// Duration is the rendered length of the cue.
func (c Cue) Duration() time.Duration {
	switch c {
	case CueAmbient:
		return time.Duration(len(ambientNotes)) * ambientNote
	case CueHit:
		return 180 * time.Millisecond
	case CueShoot:
		return 140 * time.Millisecond
	case CueGameOver:
		return time.Duration(len(gameOverNotes)) * gameOverNote
	default:
		return 0
	}
}

const (
	ambientNote  = 250 * time.Millisecond
	gameOverNote = 320 * time.Millisecond
)

// A minor bass walk for the chase loop.
var ambientNotes = []float64{110.00, 110.00, 130.81, 110.00, 146.83, 130.81, 123.47, 98.00,
	110.00, 110.00, 130.81, 110.00, 164.81, 146.83, 130.81, 123.47}

var gameOverNotes = []float64{392.00, 311.13, 261.63, 196.00}

// Streamer builds the beep streamer for a cue at the given volume in [0,1].
func Streamer(c Cue, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	var (
		s   beep.Streamer
		err error
	)
	switch c {
	case CueAmbient:
		s, err = ambient(rate)
	case CueHit:
		s, err = hit(rate)
	case CueShoot:
		s, err = shoot(rate)
	case CueGameOver:
		s, err = gameOver(rate)
	default:
		return nil, fmt.Errorf("unknown cue %d", int(c))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build %s cue: %w", c, err)
	}
	return newVolume(s, volume), nil
}

// PCM renders a cue to signed 16-bit little-endian stereo at rate.
func PCM(c Cue, rate int, volume float64) ([]byte, error) {
	sr := beep.SampleRate(rate)
	s, err := Streamer(c, sr, volume)
	if err != nil {
		return nil, err
	}
	return Render(s, sr.N(c.Duration())), nil
}

// Render drains up to frames samples from s. If s ends early the rest is
// silence, so the result is always frames*BytesPerFrame bytes.
func Render(s beep.Streamer, frames int) []byte {
	samples := make([][2]float64, frames)
	filled := 0
	for filled < frames {
		n, ok := s.Stream(samples[filled:])
		filled += n
		if !ok {
			break
		}
	}

	out := make([]byte, frames*BytesPerFrame)
	for i, frame := range samples {
		binary.LittleEndian.PutUint16(out[i*BytesPerFrame:], uint16(toInt16(frame[0])))
		binary.LittleEndian.PutUint16(out[i*BytesPerFrame+2:], uint16(toInt16(frame[1])))
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// math.Log2(0) is -Inf, so zero volume is a silent stream.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(gen func(beep.SampleRate, float64) (beep.Streamer, error), rate beep.SampleRate, freq float64, d, attack, release time.Duration) (beep.Streamer, error) {
	osc, err := gen(rate, freq)
	if err != nil {
		return nil, err
	}
	return newEnvelope(beep.Take(rate.N(d), osc), d, attack, release, rate), nil
}

func ambient(rate beep.SampleRate) (beep.Streamer, error) {
	bass := make([]beep.Streamer, 0, len(ambientNotes))
	for _, freq := range ambientNotes {
		n, err := tone(generators.TriangleTone, rate, freq, ambientNote, 10*time.Millisecond, 120*time.Millisecond)
		if err != nil {
			return nil, err
		}
		bass = append(bass, n)
	}

	pad, err := generators.SineTone(rate, 220)
	if err != nil {
		return nil, err
	}
	loop := CueAmbient.Duration()
	return beep.Mix(
		newVolume(beep.Seq(bass...), 0.7),
		newVolume(beep.Take(rate.N(loop), pad), 0.08),
	), nil
}

func hit(rate beep.SampleRate) (beep.Streamer, error) {
	d := CueHit.Duration()
	thud, err := tone(generators.SquareTone, rate, 140, d, 2*time.Millisecond, 150*time.Millisecond)
	if err != nil {
		return nil, err
	}
	crash := newEnvelope(newNoise(rate.N(d), 7), d, time.Millisecond, 170*time.Millisecond, rate)
	return beep.Mix(newVolume(thud, 0.6), newVolume(crash, 0.4)), nil
}

func shoot(rate beep.SampleRate) (beep.Streamer, error) {
	d := CueShoot.Duration()
	spray := newEnvelope(newNoise(rate.N(d), 11), d, 5*time.Millisecond, 110*time.Millisecond, rate)
	half := d / 2
	hiss1, err := tone(generators.SineTone, rate, 1320, half, time.Millisecond, 40*time.Millisecond)
	if err != nil {
		return nil, err
	}
	hiss2, err := tone(generators.SineTone, rate, 990, half, time.Millisecond, 60*time.Millisecond)
	if err != nil {
		return nil, err
	}
	return beep.Mix(newVolume(spray, 0.35), newVolume(beep.Seq(hiss1, hiss2), 0.25)), nil
}

func gameOver(rate beep.SampleRate) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(gameOverNotes))
	for _, freq := range gameOverNotes {
		n, err := tone(generators.SineTone, rate, freq, gameOverNote, 15*time.Millisecond, 200*time.Millisecond)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return newVolume(beep.Seq(notes...), 0.8), nil
}
