package sound

import (
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// noise is white noise with a fixed seed so renders are reproducible.
type noise struct {
	rng       *rand.Rand
	remaining int
}

func newNoise(samples int, seed int64) beep.Streamer {
	return &noise{rng: rand.New(rand.NewSource(seed)), remaining: samples}
}

func (s *noise) Stream(samples [][2]float64) (n int, ok bool) {
	if s.remaining <= 0 {
		return 0, false
	}
	for i := range samples {
		if s.remaining == 0 {
			return i, true
		}
		v := s.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
		s.remaining--
	}
	return len(samples), true
}

func (s *noise) Err() error { return nil }
