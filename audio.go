package getaway

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"getaway/sound"
)

// Speaker plays the game's cues.
type Speaker interface {
	Play(c sound.Cue)
	Pause(c sound.Cue)
	Rewind(c sound.Cue)
}

// Silent is a Speaker that does nothing. It stands in when audio is muted or
// the device has no output.
type Silent struct{}

func (Silent) Play(sound.Cue) {}
func (Silent) Pause(sound.Cue) {}
func (Silent) Rewind(sound.Cue) {}

// Jukebox renders every cue once and keeps a player per cue.
type Jukebox struct {
	players map[sound.Cue]*audio.Player
}

// NewJukebox builds players for every cue on the shared audio context.
func NewJukebox(volume float64) (*Jukebox, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sound.SampleRate)
	}
	j := &Jukebox{players: make(map[sound.Cue]*audio.Player, len(sound.Cues))}
	for _, c := range sound.Cues {
		pcm, err := sound.PCM(c, sound.SampleRate, volume)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", c, err)
		}
		if !c.Loops() {
			j.players[c] = ctx.NewPlayerFromBytes(pcm)
			continue
		}
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		p, err := ctx.NewPlayer(loop)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", c, err)
		}
		j.players[c] = p
	}
	return j, nil
}

// Play starts a cue. One-shot cues restart from the beginning so rapid
// repeats are all heard.
func (j *Jukebox) Play(c sound.Cue) {
	p := j.players[c]
	if p == nil {
		return
	}
	if !c.Loops() {
		if err := p.Rewind(); err != nil {
			log.Printf("warning: rewind %s: %v", c, err)
		}
	}
	p.Play()
}

func (j *Jukebox) Pause(c sound.Cue) {
	if p := j.players[c]; p != nil {
		p.Pause()
	}
}

func (j *Jukebox) Rewind(c sound.Cue) {
	if p := j.players[c]; p != nil {
		if err := p.Rewind(); err != nil {
			log.Printf("warning: rewind %s: %v", c, err)
		}
	}
}

// NewSpeaker returns a Jukebox, or Silent when muted or when the cues could
// not be prepared.
func NewSpeaker(mute bool, volume float64) Speaker {
	if mute {
		return Silent{}
	}
	j, err := NewJukebox(volume)
	if err != nil {
		log.Printf("warning: audio disabled: %v", err)
		return Silent{}
	}
	return j
}
