// internal/component/movement.go
package component

// Position — компонент позиции (пиксели, центр сущности)
type Position struct {
	X, Y float64
}

// Velocity — базовая скорость в пикселях за тик
type Velocity struct {
	Speed float64
}

// Path — прогресс монстра по коридору. Индекс только растёт.
type Path struct {
	CurrentIndex int
}
