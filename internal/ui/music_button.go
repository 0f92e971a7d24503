// internal/ui/music_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MusicButton — круглая кнопка включения фоновой музыки.
type MusicButton struct {
	X, Y          float32 // левый верхний угол
	Size          float32
	Playing       bool
	LastClickTime time.Time
	OnColor       color.RGBA
	OffColor      color.RGBA
}

func NewMusicButton(x, y, size float32, on, off color.RGBA) *MusicButton {
	return &MusicButton{X: x, Y: y, Size: size, OnColor: on, OffColor: off}
}

func (b *MusicButton) center() (float32, float32) {
	return b.X + b.Size/2, b.Y + b.Size/2
}

func (b *MusicButton) Contains(x, y int) bool {
	cx, cy := b.center()
	dx, dy := float32(x)-cx, float32(y)-cy
	return dx*dx+dy*dy <= (b.Size/2)*(b.Size/2)
}

func (b *MusicButton) Draw(screen *ebiten.Image) {
	cx, cy := b.center()
	clr := b.OffColor
	if b.Playing {
		clr = b.OnColor
	}
	// Во время игры музыки кнопка медленно вращается
	angle := 0.0
	if b.Playing {
		angle = float64(time.Now().UnixMilli()%4000) / 4000 * 2 * math.Pi
	}

	r := b.Size / 2
	vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
	vector.StrokeCircle(screen, cx, cy, r, 1.5, color.RGBA{255, 255, 255, 255}, true)
	// нотка
	stemX := cx + float32(math.Cos(angle))*r/4
	stemY := cy + float32(math.Sin(angle))*r/4
	vector.DrawFilledCircle(screen, stemX-r/4, stemY+r/3, r/5, color.RGBA{255, 255, 255, 255}, true)
	vector.StrokeLine(screen, stemX-r/4+r/5, stemY+r/3, stemX-r/4+r/5, stemY-r/2, 2, color.RGBA{255, 255, 255, 255}, true)
	if !b.Playing {
		vector.StrokeLine(screen, cx-r*0.7, cy-r*0.7, cx+r*0.7, cy+r*0.7, 2, color.RGBA{200, 60, 60, 255}, true)
	}
}
