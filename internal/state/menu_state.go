// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"corridor-defense/internal/config"
	"corridor-defense/internal/defs"
	"corridor-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	startButtonWidth  = 160
	startButtonHeight = 40
)

// MenuState — стартовый экран. Space, Enter или кнопка начинают игру.
type MenuState struct {
	sm          *StateMachine
	opts        Options
	font        font.Face
	startButton *ui.Button
}

func NewMenuState(sm *StateMachine, opts Options) *MenuState {
	if opts.Catalog == nil {
		opts.Catalog = defs.MustDefault()
	}
	board := opts.Catalog.Board
	w := int(float64(board.Columns) * board.CellSize)
	h := int(float64(board.Rows) * board.CellSize)

	face := basicfont.Face7x13
	rect := image.Rect((w-startButtonWidth)/2, h/2+20, (w+startButtonWidth)/2, h/2+20+startButtonHeight)
	return &MenuState{
		sm:          sm,
		opts:        opts,
		font:        face,
		startButton: ui.NewButton(rect, "START", face, config.PanelColor, config.PanelTextColor),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if m.startButton.Contains(ebiten.CursorPosition()) {
			start = true
		}
	}
	if start {
		m.sm.SetState(NewGameState(m.sm, m.opts))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	c := m.opts.Catalog
	lines := []string{
		"CORRIDOR DEFENSE",
		fmt.Sprintf("%d waves, %d towers", len(c.Waves), len(c.Towers)),
		"Press Space to start",
	}
	for i, line := range lines {
		width := font.MeasureString(m.font, line).Ceil()
		text.Draw(screen, line, m.font, (w-width)/2, h/2-60+i*20, config.PanelTextColor)
	}
	m.startButton.Draw(screen)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
