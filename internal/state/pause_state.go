// internal/state/pause_state.go
package state

import (
	"time"

	"corridor-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает сессию: тики не идут, поле рисуется под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	font          font.Face
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		font:          basicfont.Face7x13,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	// Кнопка паузы живёт в игровом состоянии, проверяем клик по ней здесь
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		gs := s.previousState
		if gs.pauseButton.Contains(x, y) && time.Since(gs.lastClickTime) >= config.ClickCooldown {
			gs.lastClickTime = time.Now()
			unpause = true
		}
	}

	if unpause {
		s.previousState.pauseButton.TogglePause()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.ModalShadeColor, false)

	pauseText := "PAUSED"
	bounds := font.MeasureString(s.font, pauseText).Ceil()
	text.Draw(screen, pauseText, s.font, (w-bounds)/2, h/2, config.TextLightColor)
	// Кнопку рисуем поверх затемнения, иначе её не найти
	s.previousState.pauseButton.Draw(screen)
}

func (s *PauseState) Exit() {}
