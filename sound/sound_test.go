package sound

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

func TestPCMLength(t *testing.T) {
	for _, c := range Cues {
		t.Run(c.String(), func(t *testing.T) {
			pcm, err := PCM(c, SampleRate, 1)
			if err != nil {
				t.Fatalf("PCM(%s): %v", c, err)
			}
			want := beep.SampleRate(SampleRate).N(c.Duration()) * BytesPerFrame
			if len(pcm) != want {
				t.Fatalf("len = %d, want %d", len(pcm), want)
			}
			if silent(pcm) {
				t.Fatalf("%s rendered silence", c)
			}
		})
	}
}

func TestPCMMutedIsSilent(t *testing.T) {
	pcm, err := PCM(CueHit, SampleRate, 0)
	if err != nil {
		t.Fatalf("PCM: %v", err)
	}
	if !silent(pcm) {
		t.Fatalf("zero volume produced sound")
	}
}

func TestPCMIsReproducible(t *testing.T) {
	a, err := PCM(CueShoot, SampleRate, 0.5)
	if err != nil {
		t.Fatalf("PCM: %v", err)
	}
	b, err := PCM(CueShoot, SampleRate, 0.5)
	if err != nil {
		t.Fatalf("PCM: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("two renders of the same cue differ")
	}
}

func TestStreamerErrors(t *testing.T) {
	if _, err := Streamer(Cue(99), SampleRate, 1); err == nil {
		t.Fatalf("unknown cue did not fail")
	}
	// 1320 Hz can't be produced at a 2 kHz sample rate.
	if _, err := PCM(CueShoot, 2000, 1); err == nil {
		t.Fatalf("shoot cue at 2 kHz did not fail")
	}
}

func TestRenderPadsWithSilence(t *testing.T) {
	sine, err := generators.SineTone(SampleRate, 440)
	if err != nil {
		t.Fatalf("SineTone: %v", err)
	}
	pcm := Render(beep.Take(100, sine), 200)
	if len(pcm) != 200*BytesPerFrame {
		t.Fatalf("len = %d, want %d", len(pcm), 200*BytesPerFrame)
	}
	if silent(pcm[:100*BytesPerFrame]) {
		t.Fatalf("tone part is silent")
	}
	if !silent(pcm[100*BytesPerFrame:]) {
		t.Fatalf("padding is not silent")
	}
}

func TestCueLoops(t *testing.T) {
	for _, c := range Cues {
		if got, want := c.Loops(), c == CueAmbient; got != want {
			t.Errorf("%s.Loops() = %v, want %v", c, got, want)
		}
	}
	if CueAmbient.Duration() != 4*time.Second {
		t.Errorf("ambient duration = %v, want 4s", CueAmbient.Duration())
	}
}

func silent(pcm []byte) bool {
	for i := 0; i+1 < len(pcm); i += 2 {
		if int16(binary.LittleEndian.Uint16(pcm[i:])) != 0 {
			return false
		}
	}
	return true
}
