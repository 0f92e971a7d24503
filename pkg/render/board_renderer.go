// pkg/render/board_renderer.go
package render

import (
	"image/color"
	"math"

	"corridor-defense/internal/app"
	"corridor-defense/internal/config"
	"corridor-defense/pkg/gridpath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardRenderer рисует поле, коридор и сущности из снимка состояния.
type BoardRenderer struct {
	columns    int
	rows       int
	cellSize   float64
	colors     *BoardColors
	shapes     *ShapeDrawer
	boardImage *ebiten.Image // Поле для предрендеренной карты
}

func NewBoardRenderer(columns, rows int, cellSize float64, colors *BoardColors) *BoardRenderer {
	width := int(float64(columns) * cellSize)
	height := int(float64(rows) * cellSize)
	return &BoardRenderer{
		columns:    columns,
		rows:       rows,
		cellSize:   cellSize,
		colors:     colors,
		shapes:     Shapes(),
		boardImage: ebiten.NewImage(width, height),
	}
}

// RenderBoardImage создаёт предрендеренное изображение задника: фон, коридор, сетка.
// Вызывается один раз на сессию, путь не меняется.
func (r *BoardRenderer) RenderBoardImage(path []gridpath.PathPoint) {
	r.boardImage.Clear()
	r.boardImage.Fill(r.colors.BackgroundColor)

	cs := float32(r.cellSize)
	for _, p := range path {
		x := float32(p.X) - cs/2
		y := float32(p.Y) - cs/2
		vector.DrawFilledRect(r.boardImage, x, y, cs, cs, r.colors.PathColor, false)
	}

	for c := 0; c <= r.columns; c++ {
		x := float32(c) * cs
		vector.StrokeLine(r.boardImage, x, 0, x, float32(r.rows)*cs, 1, r.colors.GridLineColor, false)
	}
	for row := 0; row <= r.rows; row++ {
		y := float32(row) * cs
		vector.StrokeLine(r.boardImage, 0, y, float32(r.columns)*cs, y, 1, r.colors.GridLineColor, false)
	}

	for i, p := range path {
		r.drawDirectionMark(r.boardImage, p, i == 0 || i == len(path)-1)
	}
}

// drawDirectionMark рисует маленький шеврон по направлению движения.
func (r *BoardRenderer) drawDirectionMark(target *ebiten.Image, p gridpath.PathPoint, endpoint bool) {
	x, y := float32(p.X), float32(p.Y)
	mark := DarkenColor(r.colors.PathColor)
	if endpoint {
		vector.StrokeCircle(target, x, y, float32(r.cellSize)/4, 2, mark, true)
		return
	}

	var angle float64
	switch p.Direction {
	case gridpath.Right:
		angle = 0
	case gridpath.Down:
		angle = math.Pi / 2
	case gridpath.Left:
		angle = math.Pi
	case gridpath.Up:
		angle = -math.Pi / 2
	}
	size := r.cellSize / 8
	tipX := x + float32(math.Cos(angle)*size)
	tipY := y + float32(math.Sin(angle)*size)
	for _, side := range []float64{angle + 2.5, angle - 2.5} {
		bx := x + float32(math.Cos(side)*size)
		by := y + float32(math.Sin(side)*size)
		vector.StrokeLine(target, bx, by, tipX, tipY, 2, mark, true)
	}
}

// Draw рисует задник и все сущности снимка.
func (r *BoardRenderer) Draw(screen *ebiten.Image, s app.Snapshot) {
	// Рисуем предрендеренную карту одним вызовом
	screen.DrawImage(r.boardImage, nil)

	for _, t := range s.Towers {
		r.DrawTower(screen, string(t.Kind), float32(t.X), float32(t.Y), 255)
	}
	for _, m := range s.Monsters {
		r.drawMonster(screen, m)
	}
	for _, p := range s.Projectiles {
		clr := lookup(r.colors.ProjectileColors, string(p.Kind), r.colors.StrokeColor)
		radius := p.Radius
		if radius <= 0 {
			radius = config.ProjectileRadius
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), radius, clr, true)
	}
}

// DrawTower рисует башню; alpha < 255 используется для превью.
func (r *BoardRenderer) DrawTower(screen *ebiten.Image, kind string, x, y float32, alpha uint8) {
	half := float32(r.cellSize * config.TowerRadiusFactor)
	fill := WithAlpha(lookup(r.colors.TowerColors, kind, r.colors.StrokeColor), alpha)
	stroke := WithAlpha(r.colors.StrokeColor, alpha)

	// Основание — ромб, сверху кружок
	r.shapes.FillPolygon(screen, []float32{x, y - half, x + half, y, x, y + half, x - half, y}, fill)
	vector.StrokeLine(screen, x, y-half, x+half, y, 1.5, stroke, true)
	vector.StrokeLine(screen, x+half, y, x, y+half, 1.5, stroke, true)
	vector.StrokeLine(screen, x, y+half, x-half, y, 1.5, stroke, true)
	vector.StrokeLine(screen, x-half, y, x, y-half, 1.5, stroke, true)
	vector.DrawFilledCircle(screen, x, y, half/2.5, stroke, true)
}

// DrawRange рисует радиус атаки башни.
func (r *BoardRenderer) DrawRange(screen *ebiten.Image, x, y, radius float32, clr color.RGBA) {
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)
	vector.StrokeCircle(screen, x, y, radius, 1, DarkenColor(clr), true)
}

func (r *BoardRenderer) drawMonster(screen *ebiten.Image, m app.MonsterView) {
	x, y := float32(m.X), float32(m.Y)
	radius := m.Radius
	if radius <= 0 {
		radius = float32(math.Min(m.Width, m.Height) * config.MonsterRadiusFactor)
	}
	body := lookup(r.colors.MonsterColors, string(m.Kind), r.colors.StrokeColor)

	vector.DrawFilledCircle(screen, x, y, radius, body, true)
	if m.Outlined {
		vector.StrokeCircle(screen, x, y, radius, 1.5, r.colors.StrokeColor, true)
	}
	if m.Slowed {
		vector.StrokeCircle(screen, x, y, radius+2, 2, r.colors.SlowTintColor, true)
	}

	if m.MaxHP <= 0 {
		return
	}
	barW := float32(m.Width) * 0.8
	barH := float32(4)
	barX := x - barW/2
	barY := y - radius - 8
	vector.DrawFilledRect(screen, barX, barY, barW, barH, r.colors.HealthBarBack, false)
	vector.DrawFilledRect(screen, barX, barY, barW*float32(m.HP)/float32(m.MaxHP), barH, r.colors.HealthBarFill, false)
}
