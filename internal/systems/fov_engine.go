package systems

import (
	"gridworld/internal/domain"
)

// FOVEngine - машина состояний видимости с двумя состояниями: stale и
// current. Ключ актуальности - 2D-позиция точки обзора: пересчет выполняется
// ровно один раз за ход и только если (x,y) изменились с прошлого хода.
// Z в ключ не входит: FOV считается в плоскости уровня наблюдателя.
type FOVEngine struct {
	grid       *domain.Grid
	radius     int
	lightWalls bool

	view         *View
	lastX, lastY int
	computed     bool
}

// NewFOVEngine создает движок видимости над сеткой.
// До первого Refresh ни одна клетка не видна.
func NewFOVEngine(g *domain.Grid, radius int, lightWalls bool) *FOVEngine {
	return &FOVEngine{
		grid:       g,
		radius:     radius,
		lightWalls: lightWalls,
	}
}

// Refresh пересчитывает FOV, если точка обзора сместилась в плоскости XY.
// Возвращает true, если пересчет состоялся. При неизменной точке обзора
// два последовательных множества IsInFov идентичны: View не трогается.
func (f *FOVEngine) Refresh(viewpoint domain.Position) bool {
	if f.computed && viewpoint.X == f.lastX && viewpoint.Y == f.lastY {
		return false
	}

	f.view = ComputeView(f.grid, viewpoint, f.radius, f.lightWalls)
	f.lastX, f.lastY = viewpoint.X, viewpoint.Y
	f.computed = true
	return true
}

// IsInFov валиден только относительно последнего пересчета.
// До первого пересчета всегда false.
func (f *FOVEngine) IsInFov(x, y int) bool {
	return f.view.IsInFov(x, y)
}

// View возвращает текущий результат (nil до первого пересчета).
func (f *FOVEngine) View() *View {
	return f.view
}
