// pkg/render/shapes.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ShapeDrawer заливает произвольные многоугольники через DrawTriangles.
type ShapeDrawer struct {
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewShapeDrawer() *ShapeDrawer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &ShapeDrawer{
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, 16),
		is:      make([]uint16, 0, 16),
	}
}

// FillPolygon заливает замкнутый многоугольник по точкам (x0, y0, x1, y1, ...).
func (d *ShapeDrawer) FillPolygon(target *ebiten.Image, points []float32, clr color.RGBA) {
	if len(points) < 6 {
		return
	}
	path := vector.Path{}
	path.MoveTo(points[0], points[1])
	for i := 2; i+1 < len(points); i += 2 {
		path.LineTo(points[i], points[i+1])
	}
	path.Close()

	d.vs, d.is = path.AppendVerticesAndIndicesForFilling(d.vs[:0], d.is[:0])
	for i := range d.vs {
		d.vs[i].ColorR = float32(clr.R) / 255
		d.vs[i].ColorG = float32(clr.G) / 255
		d.vs[i].ColorB = float32(clr.B) / 255
		d.vs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(d.vs, d.is, d.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// DrawTriangle — треугольник с обводкой.
func (d *ShapeDrawer) DrawTriangle(target *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, fill, stroke color.RGBA) {
	d.FillPolygon(target, []float32{x1, y1, x2, y2, x3, y3}, fill)
	vector.StrokeLine(target, x1, y1, x2, y2, 1, stroke, true)
	vector.StrokeLine(target, x2, y2, x3, y3, 1, stroke, true)
	vector.StrokeLine(target, x3, y3, x1, y1, 1, stroke, true)
}

var defaultShapes *ShapeDrawer

// Shapes возвращает общий ShapeDrawer, создавая его при первом вызове (нужен запущенный ebiten).
func Shapes() *ShapeDrawer {
	if defaultShapes == nil {
		defaultShapes = NewShapeDrawer()
	}
	return defaultShapes
}
