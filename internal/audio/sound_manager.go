// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"corridor-defense/internal/event"
	"corridor-defense/pkg/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager manages all game audio: фоновая музыка и сигналы конца игры.
// Без Initialize все методы ничего не делают, игра работает без звука.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.music = nil
	sm.initialized = false
}

// ToggleMusic включает или выключает фоновую музыку и возвращает новое состояние.
func (sm *SoundManager) ToggleMusic() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.music == nil {
		sm.music = &beep.Ctrl{Streamer: newVolume(NewMusicGenerator(sampleRate), 0.25)}
		sm.mixer.Add(sm.music)
		return true
	}
	sm.music.Paused = !sm.music.Paused
	return !sm.music.Paused
}

// IsMusicPlaying сообщает, играет ли сейчас музыка.
func (sm *SoundManager) IsMusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !sm.music.Paused
}

// PlayVictory plays a short rising fanfare
func (sm *SoundManager) PlayVictory() {
	sm.playCue(NewCueGenerator(sampleRate, FanfareNotes, 180*time.Millisecond))
}

// PlayDefeat plays a slow falling phrase
func (sm *SoundManager) PlayDefeat() {
	sm.playCue(NewCueGenerator(sampleRate, DirgeNotes, 320*time.Millisecond))
}

func (sm *SoundManager) playCue(cue beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Add(newVolume(cue, 0.4))
}

// OnEvent реагирует на конец игры.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.Victory:
		logger.Log.Debug("Playing victory cue")
		sm.PlayVictory()
	case event.Defeat:
		logger.Log.Debug("Playing defeat cue")
		sm.PlayDefeat()
	}
}
