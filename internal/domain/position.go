package domain

import "math"

// Position - координаты клетки в трехмерной сетке.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Shift возвращает новую позицию со смещением
// (не меняя текущую, т.к. Go передает структуры по значению).
func (p Position) Shift(dx, dy, dz int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// Flat возвращает 2D-проекцию позиции (ключ staleness для FOV).
func (p Position) Flat() (int, int) {
	return p.X, p.Y
}

// DistanceTo возвращает евклидово расстояние до другой точки в плоскости XY.
func (p Position) DistanceTo(other Position) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней.
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}
