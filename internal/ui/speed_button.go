// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"corridor-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton — кнопка x1/x2/x4, цвет показывает текущую скорость
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState]
	white := color.RGBA{255, 255, 255, 255}

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	shapes := render.Shapes()
	// Левый треугольник
	shapes.DrawTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, clr, white)
	// Правый треугольник
	shapes.DrawTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, clr, white)
}

// Contains: круг для определения попадания, так как форма сложная
func (b *SpeedButton) Contains(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// SetMultiplier синхронизирует цвет с множителем скорости игры.
func (b *SpeedButton) SetMultiplier(m float64) {
	switch m {
	case 2:
		b.CurrentState = 1
	case 4:
		b.CurrentState = 2
	default:
		b.CurrentState = 0
	}
	if b.CurrentState >= len(b.StateColors) {
		b.CurrentState = 0
	}
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}
