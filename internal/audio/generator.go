// internal/audio/generator.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Ноты в герцах.
const (
	noteG3  = 196.00
	noteC4  = 261.63
	noteEb4 = 311.13
	noteE4  = 329.63
	noteG4  = 392.00
	noteA4  = 440.00
	noteC5  = 523.25
	noteE5  = 659.25
)

var (
	// Мелодия фоновой музыки, повторяется бесконечно
	MusicNotes   = []float64{noteC4, noteE4, noteG4, noteE4, noteA4, noteG4, noteE4, noteC4}
	FanfareNotes = []float64{noteC4, noteE4, noteG4, noteC5, noteE5}
	DirgeNotes   = []float64{noteG4, noteEb4, noteC4, noteG3}
)

// toneGenerator играет ноты по очереди, каждая с короткой атакой и затуханием.
type toneGenerator struct {
	sr         beep.SampleRate
	notes      []float64
	noteLength int
	pos        int
	phase      float64
	loop       bool
}

// NewMusicGenerator — бесконечный генератор фоновой мелодии.
func NewMusicGenerator(sr beep.SampleRate) beep.Streamer {
	return &toneGenerator{
		sr:         sr,
		notes:      MusicNotes,
		noteLength: sr.N(250 * time.Millisecond),
		loop:       true,
	}
}

// NewCueGenerator — конечная фраза из notes, каждая нота длиной noteDur.
func NewCueGenerator(sr beep.SampleRate, notes []float64, noteDur time.Duration) beep.Streamer {
	return &toneGenerator{
		sr:         sr,
		notes:      notes,
		noteLength: sr.N(noteDur),
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.noteLength * len(g.notes)
	if total == 0 {
		return 0, false
	}

	for i := range samples {
		if g.pos >= total {
			if !g.loop {
				return i, i > 0
			}
			g.pos = 0
		}

		note := g.notes[g.pos/g.noteLength]
		inNote := float64(g.pos%g.noteLength) / float64(g.noteLength)

		// Атака 10%, дальше линейное затухание
		amp := 1 - (inNote-0.1)/0.9
		if inNote < 0.1 {
			amp = inNote / 0.1
		}

		val := 0.5 * amp * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = val
		samples[i][1] = val

		g.phase += note / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }

// newVolume: громкость задаётся множителем, 0 — тишина.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
