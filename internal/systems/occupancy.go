package systems

import (
	"gridworld/internal/domain"
)

// IsBlocked отвечает на вопрос "можно ли занять клетку (x,y,z)".
// Истина, если клетку блокирует terrain ИЛИ любая блокирующая сущность
// стоит ровно в этой клетке. Линейный скан по сущностям: их единицы,
// контракт важнее сложности.
func IsBlocked(x, y, z int, g *domain.Grid, entities []*domain.Entity) bool {
	// Выход за границы считаем занятым: туда ходить нельзя.
	if !g.InBounds(x, y, z) {
		return true
	}

	// 1. Terrain
	if g.TileAt(x, y, z).Blocked {
		return true
	}

	// 2. Блокирующие сущности (лежачие не блокируют)
	for _, e := range entities {
		if e.Blocks && e.Pos.X == x && e.Pos.Y == y && e.Pos.Z == z {
			return true
		}
	}
	return false
}
