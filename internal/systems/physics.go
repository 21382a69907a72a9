package systems

import (
	"gridworld/internal/domain"
)

// HasLineOfSight проверяет прямую видимость между двумя точками одного
// уровня по Брезенхэму (целочисленная арифметика). Начальная и конечная
// клетки препятствиями не считаются: стену, к которой стоишь вплотную,
// видно. Используется как перекрестная проверка shadowcasting-а и в
// отладочных выводах.
func HasLineOfSight(g *domain.Grid, p1, p2 domain.Position) bool {
	if p1.X == p2.X && p1.Y == p2.Y {
		return true
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := sign(x1 - x0)
	sy := sign(y1 - y0)

	err := dx - dy

	for {
		isEndpoint := (x0 == p1.X && y0 == p1.Y) || (x0 == p2.X && y0 == p2.Y)
		if !isEndpoint && isOpaque(g, x0, y0, p1.Z) {
			return false
		}

		if x0 == x1 && y0 == y1 {
			return true
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
