package gridpath

import "math"

// Cell — координаты клетки квадратной сетки.
type Cell struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Subtract возвращает разность клеток.
func (c Cell) Subtract(other Cell) Cell {
	return Cell{c.X - other.X, c.Y - other.Y}
}

// Center возвращает пиксельные координаты центра клетки.
func (c Cell) Center(cellSize float64) (float64, float64) {
	return float64(c.X)*cellSize + cellSize/2, float64(c.Y)*cellSize + cellSize/2
}

// Origin возвращает левый верхний угол клетки.
func (c Cell) Origin(cellSize float64) (float64, float64) {
	return float64(c.X) * cellSize, float64(c.Y) * cellSize
}

// InBounds проверяет, лежит ли клетка внутри поля columns x rows.
func (c Cell) InBounds(columns, rows int) bool {
	return c.X >= 0 && c.X < columns && c.Y >= 0 && c.Y < rows
}

// PixelToCell переводит пиксельные координаты в клетку, которой они принадлежат.
func PixelToCell(x, y, cellSize float64) Cell {
	return Cell{X: int(math.Floor(x / cellSize)), Y: int(math.Floor(y / cellSize))}
}
