package audio

import (
	"testing"
	"time"

	"corridor-defense/internal/event"

	"github.com/gopxl/beep"
)

// Без Initialize звук выключен, но вызовы не должны паниковать.
func TestSoundManagerWithoutInitialization(t *testing.T) {
	sm := NewSoundManager()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	if sm.ToggleMusic() {
		t.Error("got music on, want off without audio device")
	}
	if sm.IsMusicPlaying() {
		t.Error("got music playing, want not playing")
	}
	sm.OnEvent(event.Event{Type: event.Victory})
	sm.OnEvent(event.Event{Type: event.Defeat})
	sm.PlayVictory()
	sm.PlayDefeat()
	sm.Cleanup()
}

func TestGeneratorsStayInRange(t *testing.T) {
	sr := beep.SampleRate(44100)
	tests := []struct {
		name     string
		streamer beep.Streamer
	}{
		{"music", NewMusicGenerator(sr)},
		{"fanfare", NewCueGenerator(sr, FanfareNotes, 50*time.Millisecond)},
		{"dirge", NewCueGenerator(sr, DirgeNotes, 50*time.Millisecond)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := make([][2]float64, 512)
			n, ok := tt.streamer.Stream(samples)
			if !ok || n != len(samples) {
				t.Fatalf("got (%d, %v), want (%d, true)", n, ok, len(samples))
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Fatalf("sample %d out of range: %f", i, samples[i][0])
				}
			}
			if err := tt.streamer.Err(); err != nil {
				t.Errorf("got error %v, want nil", err)
			}
		})
	}
}

func TestCueGeneratorEnds(t *testing.T) {
	sr := beep.SampleRate(1000)
	cue := NewCueGenerator(sr, []float64{440, 880}, 100*time.Millisecond)

	samples := make([][2]float64, 64)
	total := 0
	for i := 0; i < 100; i++ {
		n, ok := cue.Stream(samples)
		total += n
		if !ok {
			break
		}
	}
	if total != 200 {
		t.Errorf("got %d samples, want 200", total)
	}
}

func TestMusicGeneratorLoops(t *testing.T) {
	sr := beep.SampleRate(1000)
	music := NewMusicGenerator(sr)

	samples := make([][2]float64, 1000)
	for i := 0; i < 5; i++ {
		if n, ok := music.Stream(samples); !ok || n != len(samples) {
			t.Fatalf("iteration %d: got (%d, %v), want endless stream", i, n, ok)
		}
	}
}
