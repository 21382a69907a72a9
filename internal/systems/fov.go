package systems

import (
	"gridworld/internal/domain"
	"gridworld/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// View - результат одного пересчета FOV: множество видимых клеток (x,y)
// на уровне точки обзора. Живет до следующего пересчета, никуда не
// сохраняется.
type View struct {
	width   int
	height  int
	visible map[int]bool
}

// IsInFov отвечает, видна ли клетка в последнем пересчете.
// До первого пересчета View равен nil - тогда не видно ничего (и не падаем).
// Клетка вне сетки не видна: без проверки границ плоский индекс
// переполнялся бы на соседнюю строку.
func (v *View) IsInFov(x, y int) bool {
	if v == nil {
		return false
	}
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		return false
	}
	return v.visible[y*v.width+x]
}

// Count возвращает число видимых клеток (для логов и отладки).
func (v *View) Count() int {
	if v == nil {
		return 0
	}
	return len(v.visible)
}

// ComputeView выполняет рекурсивный shadowcasting из точки обзора.
// Чистая функция над сеткой: прозрачность клетки определяет BlocksSight
// на уровне origin.Z, радиус ограничивает дальность по евклидовой метрике.
//
// lightWalls управляет политикой подсветки границы: true - непрозрачные
// клетки на краю видимости попадают в результат (их ближняя грань
// рисуется светлой), false - остаются темными.
func ComputeView(g *domain.Grid, origin domain.Position, radius int, lightWalls bool) *View {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov",
		"observer_pos": origin,
		"radius":       radius,
	})

	view := &View{
		width:   g.Width,
		height:  g.Height,
		visible: make(map[int]bool),
	}
	if radius <= 0 {
		fovLogger.Warn("FOV calculation skipped for blind observer (radius <= 0)")
		return view
	}

	// 1. Центр всегда виден
	view.visible[g.FlatIndex(origin.X, origin.Y)] = true

	// 2. Рекурсивный обход 8 октантов
	for i := 0; i < 8; i++ {
		castLight(g, origin.X, origin.Y, origin.Z, 1, 1.0, 0.0, radius, lightWalls,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], view.visible)
	}

	fovLogger.WithField("visible_tiles", len(view.visible)).Debug("FOV calculation complete")
	return view
}

func castLight(g *domain.Grid, cx, cy, cz, row int, start, end float64, radius int, lightWalls bool, xx, xy, yx, yy int, visible map[int]bool) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Наклоны левого и правого края клетки
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат октанта в глобальные
			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy

			inside := x >= 0 && y >= 0 && x < g.Width && y < g.Height
			opaque := isOpaque(g, x, y, cz)

			// Отметка видимости с учетом политики lightWalls
			if inside && float64(dx*dx+dy*dy) < radiusSq {
				if !opaque || lightWalls {
					visible[y*g.Width+x] = true
				}
			}

			// Логика теней
			if blocked {
				// Идем вдоль стены...
				if opaque {
					newStart = rSlope
					continue
				}
				// Стена кончилась, началась пустота
				blocked = false
				start = newStart
			} else {
				// Шли по пустоте и наткнулись на стену
				if opaque && j < radius {
					blocked = true
					// Рекурсивно сканируем следующий ряд в суженном секторе
					castLight(g, cx, cy, cz, j+1, start, lSlope, radius, lightWalls, xx, xy, yx, yy, visible)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}

// isOpaque проверяет, блокирует ли клетка взгляд.
// Выход за границы считается непрозрачным.
func isOpaque(g *domain.Grid, x, y, z int) bool {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return true
	}
	return g.TileAt(x, y, z).BlocksSight
}
