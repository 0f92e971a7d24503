// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную прямоугольную кнопку в UI.
type Button struct {
	Rect      image.Rectangle
	Text      string
	TextColor color.RGBA
	BgColor   color.RGBA
	Face      font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face, bg, fg color.RGBA) *Button {
	return &Button{
		Rect:      rect,
		Text:      label,
		TextColor: fg,
		BgColor:   bg,
		Face:      face,
	}
}

// Contains проверяет попадание курсора.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *Button) Draw(screen *ebiten.Image) {
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), b.BgColor, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, b.TextColor, false)
	drawCenteredText(screen, b.Text, b.Face, r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2, b.TextColor)
}

// drawCenteredText рисует строку с центром в (cx, cy).
func drawCenteredText(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := cx - bounds.Dx()/2
	y := cy + bounds.Dy()/2
	text.Draw(screen, s, face, x, y, clr)
}
