// internal/ui/game_over_modal.go
package ui

import (
	"fmt"
	"image/color"

	"corridor-defense/internal/app"
	"corridor-defense/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	modalWidth  = 300
	modalHeight = 120
)

// GameOverModal — окно конца игры поверх поля.
type GameOverModal struct {
	screenWidth  int
	screenHeight int
	fontFace     font.Face
	shade        color.RGBA
	bgColor      color.RGBA
	textColor    color.RGBA
}

func NewGameOverModal(screenWidth, screenHeight int, face font.Face, shade, bg, fg color.RGBA) *GameOverModal {
	return &GameOverModal{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontFace:     face,
		shade:        shade,
		bgColor:      bg,
		textColor:    fg,
	}
}

// Title возвращает заголовок для статуса, пустая строка пока игра идёт.
func Title(status component.GameStatus) string {
	switch status {
	case component.StatusWon:
		return "VICTORY!"
	case component.StatusLost:
		return "DEFEAT"
	}
	return ""
}

func (m *GameOverModal) Draw(screen *ebiten.Image, s app.Snapshot) {
	title := Title(s.Status)
	if title == "" {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(m.screenWidth), float32(m.screenHeight), m.shade, false)

	x := float32(m.screenWidth-modalWidth) / 2
	y := float32(m.screenHeight-modalHeight) / 2
	vector.DrawFilledRect(screen, x, y, modalWidth, modalHeight, m.bgColor, false)
	vector.StrokeRect(screen, x, y, modalWidth, modalHeight, 2, m.textColor, false)

	cx := m.screenWidth / 2
	top := int(y)
	drawCenteredText(screen, title, m.fontFace, cx, top+30, m.textColor)
	drawCenteredText(screen, fmt.Sprintf("Waves: %d/%d   Gold: %d", s.Wave+1, s.TotalWaves, s.Gold), m.fontFace, cx, top+60, m.textColor)
	drawCenteredText(screen, "Press R to play again", m.fontFace, cx, top+90, m.textColor)
}
