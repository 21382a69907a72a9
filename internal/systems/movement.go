package systems

import (
	"gridworld/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewX, NewY, NewZ int
	HasMoved         bool
	BlockedBy        *domain.Entity // Если уперлись в сущность
	IsWall           bool           // Если уперлись в стену или границу
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
// Движение в занятую клетку - штатный исход, а не ошибка: результат
// просто вернется с HasMoved=false, и вызывающий ничего не применит.
//
// Занятость проверяется тем же правилом, что и IsBlocked (terrain +
// блокирующие сущности), поэтому две стоячие сущности не могут оказаться
// в одной клетке. Лежачую сущность можно пройти насквозь.
func CalculateMove(e *domain.Entity, dx, dy, dz int, g *domain.Grid, entities []*domain.Entity) MovementResult {
	target := e.Pos.Shift(dx, dy, dz)
	res := MovementResult{NewX: target.X, NewY: target.Y, NewZ: target.Z}

	// 1. Границы
	if !g.InBounds(target.X, target.Y, target.Z) {
		res.IsWall = true
		return res
	}

	// 2. Стены
	if g.TileAt(target.X, target.Y, target.Z).Blocked {
		res.IsWall = true
		return res
	}

	// 3. Блокирующие сущности
	for _, other := range entities {
		if other.ID == e.ID {
			continue
		}
		if other.Blocks && other.Pos == target {
			res.BlockedBy = other
			return res
		}
	}

	res.HasMoved = true
	return res
}
