// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"corridor-defense/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelPadding = 10
	lineHeight   = 20
)

// InfoPanel показывает здоровье, золото и номер волны.
type InfoPanel struct {
	Rect      image.Rectangle
	fontFace  font.Face
	bgColor   color.RGBA
	textColor color.RGBA
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(rect image.Rectangle, face font.Face, bg, fg color.RGBA) *InfoPanel {
	return &InfoPanel{
		Rect:      rect,
		fontFace:  face,
		bgColor:   bg,
		textColor: fg,
	}
}

// Lines возвращает строки панели для снимка.
func (p *InfoPanel) Lines(s app.Snapshot) []string {
	return []string{
		fmt.Sprintf("Health: %d", s.Health),
		fmt.Sprintf("Gold: %d", s.Gold),
		fmt.Sprintf("Wave: %d/%d", s.Wave+1, s.TotalWaves),
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, s app.Snapshot) {
	r := p.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), p.bgColor, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, p.textColor, false)

	for i, line := range p.Lines(s) {
		text.Draw(screen, line, p.fontFace, r.Min.X+panelPadding, r.Min.Y+panelPadding+lineHeight*i+12, p.textColor)
	}
}
