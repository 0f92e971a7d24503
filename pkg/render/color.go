// pkg/render/color.go
package render

import "image/color"

// BoardColors holds all the color definitions needed to render the board and its entities.
type BoardColors struct {
	BackgroundColor color.RGBA
	GridLineColor   color.RGBA
	PathColor       color.RGBA
	HealthBarBack   color.RGBA
	HealthBarFill   color.RGBA
	SlowTintColor   color.RGBA
	StrokeColor     color.RGBA

	// Цвета сущностей по типу (NORMAL, ELITE, SLOW)
	MonsterColors    map[string]color.RGBA
	TowerColors      map[string]color.RGBA
	ProjectileColors map[string]color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha возвращает цвет с другой прозрачностью (для превью при перетаскивании).
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	// color.RGBA хранит premultiplied значения
	scale := float64(a) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: a,
	}
}

// lookup возвращает цвет из таблицы или запасной.
func lookup(colors map[string]color.RGBA, key string, fallback color.RGBA) color.RGBA {
	if c, ok := colors[key]; ok {
		return c
	}
	return fallback
}
