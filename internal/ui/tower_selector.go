// internal/ui/tower_selector.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"corridor-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TowerOption — строка выбора башни в панели.
type TowerOption struct {
	Kind defs.TowerKind
	Name string
	Cost int
	Rect image.Rectangle
}

// TowerSelector — панель, из которой башни перетаскиваются на поле.
type TowerSelector struct {
	Rect      image.Rectangle
	Options   []TowerOption
	fontFace  font.Face
	bgColor   color.RGBA
	textColor color.RGBA
	colors    map[string]color.RGBA
}

func NewTowerSelector(rect image.Rectangle, towers []defs.TowerDefinition, step int, face font.Face, bg, fg color.RGBA, colors map[string]color.RGBA) *TowerSelector {
	options := make([]TowerOption, 0, len(towers))
	top := rect.Min.Y + lineHeight
	for i, t := range towers {
		y := top + i*step
		options = append(options, TowerOption{
			Kind: t.Kind,
			Name: t.Name,
			Cost: t.Cost,
			Rect: image.Rect(rect.Min.X, y, rect.Max.X, y+step),
		})
	}
	return &TowerSelector{
		Rect:      rect,
		Options:   options,
		fontFace:  face,
		bgColor:   bg,
		textColor: fg,
		colors:    colors,
	}
}

// OptionAt возвращает башню под курсором.
func (s *TowerSelector) OptionAt(x, y int) (TowerOption, bool) {
	p := image.Pt(x, y)
	for _, o := range s.Options {
		if p.In(o.Rect) {
			return o, true
		}
	}
	return TowerOption{}, false
}

// Contains проверяет, что точка внутри панели.
func (s *TowerSelector) Contains(x, y int) bool {
	return image.Pt(x, y).In(s.Rect)
}

// Draw рисует панель; недоступные по золоту башни приглушены.
func (s *TowerSelector) Draw(screen *ebiten.Image, gold int) {
	r := s.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), s.bgColor, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, s.textColor, false)
	text.Draw(screen, "Towers", s.fontFace, r.Min.X+panelPadding, r.Min.Y+14, s.textColor)

	for _, o := range s.Options {
		fg := s.textColor
		swatch := s.colors[string(o.Kind)]
		if gold < o.Cost {
			fg = color.RGBA{160, 160, 160, 255}
			swatch = color.RGBA{200, 200, 200, 255}
		}
		cy := float32(o.Rect.Min.Y + o.Rect.Dy()/2)
		vector.DrawFilledCircle(screen, float32(o.Rect.Min.X+panelPadding+6), cy, 6, swatch, true)
		label := fmt.Sprintf("%s %dg", o.Name, o.Cost)
		text.Draw(screen, label, s.fontFace, o.Rect.Min.X+panelPadding+18, int(cy)+4, fg)
	}
}
