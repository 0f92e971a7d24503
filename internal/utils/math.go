// internal/utils/math.go
package utils

import "math"

// Distance — евклидово расстояние между двумя точками.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Sign возвращает -1, 0 или 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// StepToward сдвигает from к to не больше чем на step и сообщает, достигнута ли цель.
func StepToward(from, to, step float64) (float64, bool) {
	d := to - from
	if math.Abs(d) <= step {
		return to, true
	}
	return from + Sign(d)*step, false
}
