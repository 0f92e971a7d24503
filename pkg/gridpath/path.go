package gridpath

import (
	"errors"
	"fmt"
)

// Direction — направление отрезка, ведущего в точку пути.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// PathPoint — точка коридора в пикселях с направлением входящего отрезка.
type PathPoint struct {
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Direction Direction `json:"direction"`
}

// Pattern — упорядоченный список опорных клеток коридора.
type Pattern []Cell

// Validate проверяет, что из шаблона можно построить коридор на поле columns x rows.
func (p Pattern) Validate(columns, rows int) error {
	if len(p) < 2 {
		return fmt.Errorf("pattern needs at least 2 anchors, got %d", len(p))
	}
	var errs []error
	for i, anchor := range p {
		if !anchor.InBounds(columns, rows) {
			errs = append(errs, fmt.Errorf("anchor %d %v is outside the %dx%d board", i, anchor, columns, rows))
		}
		if i == 0 {
			continue
		}
		d := anchor.Subtract(p[i-1])
		if d.X != 0 && d.Y != 0 {
			errs = append(errs, fmt.Errorf("segment %d -> %d is not axis-aligned", i-1, i))
		}
		if d.X == 0 && d.Y == 0 {
			errs = append(errs, fmt.Errorf("anchor %d repeats anchor %d", i, i-1))
		}
	}
	return errors.Join(errs...)
}

// Path — неизменяемая последовательность точек коридора на одну сессию.
type Path struct {
	points   []PathPoint
	cells    map[Cell]struct{}
	cellSize float64
}

// Build интерполирует опорные клетки шаблона в плотную последовательность центров клеток.
// Шаблон должен пройти Validate; для шаблона короче двух точек возвращается пустой путь.
func Build(pattern Pattern, cellSize float64) *Path {
	var points []PathPoint
	for i := 0; i+1 < len(pattern); i++ {
		current := pattern[i]
		next := pattern[i+1]
		dx := next.X - current.X
		dy := next.Y - current.Y
		steps := max(abs(dx), abs(dy))

		var dir Direction
		switch {
		case dx > 0:
			dir = Right
		case dx < 0:
			dir = Left
		case dy > 0:
			dir = Down
		default:
			dir = Up
		}

		for step := 0; step <= steps; step++ {
			cell := current
			if steps > 0 {
				cell = Cell{
					X: current.X + roundDiv(dx*step, steps),
					Y: current.Y + roundDiv(dy*step, steps),
				}
			}
			x, y := cell.Center(cellSize)
			points = append(points, PathPoint{X: x, Y: y, Direction: dir})
		}
	}

	// Убираем подряд идущие одинаковые точки (стыки отрезков).
	unique := make([]PathPoint, 0, len(points))
	for i, p := range points {
		if i > 0 && p.X == points[i-1].X && p.Y == points[i-1].Y {
			continue
		}
		unique = append(unique, p)
	}

	cells := make(map[Cell]struct{}, len(unique))
	for _, p := range unique {
		cells[PixelToCell(p.X, p.Y, cellSize)] = struct{}{}
	}
	return &Path{points: unique, cells: cells, cellSize: cellSize}
}

// Intner — источник случайности для выбора шаблона.
type Intner interface {
	Intn(n int) int
}

// Generate выбирает случайный шаблон из каталога и строит по нему путь.
// Возвращает индекс выбранного шаблона.
func Generate(patterns []Pattern, rng Intner, cellSize float64) (*Path, int) {
	if len(patterns) == 0 {
		return &Path{cells: map[Cell]struct{}{}, cellSize: cellSize}, -1
	}
	idx := rng.Intn(len(patterns))
	return Build(patterns[idx], cellSize), idx
}

// Len возвращает количество точек пути.
func (p *Path) Len() int {
	return len(p.points)
}

// At возвращает i-ю точку пути.
func (p *Path) At(i int) PathPoint {
	return p.points[i]
}

// Start возвращает точку появления монстров.
func (p *Path) Start() PathPoint {
	return p.points[0]
}

// End возвращает конечную точку пути.
func (p *Path) End() PathPoint {
	return p.points[len(p.points)-1]
}

// LastIndex возвращает индекс конечной точки.
func (p *Path) LastIndex() int {
	return len(p.points) - 1
}

// Points возвращает копию точек, чтобы путь нельзя было изменить снаружи.
func (p *Path) Points() []PathPoint {
	out := make([]PathPoint, len(p.points))
	copy(out, p.points)
	return out
}

// Contains проверяет, проходит ли коридор через клетку.
func (p *Path) Contains(c Cell) bool {
	_, ok := p.cells[c]
	return ok
}

// CellSize возвращает размер клетки, с которым построен путь.
func (p *Path) CellSize() float64 {
	return p.cellSize
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// roundDiv — целочисленный аналог math.Round(a / b) для b > 0.
func roundDiv(a, b int) int {
	if a >= 0 {
		return (2*a + b) / (2 * b)
	}
	return -((-2*a + b) / (2 * b))
}
