package atlas

import "gridworld/internal/domain"

// Default возвращает встроенный чертеж: два тестовых столба на уровне 10
// и россыпь стен на нижних уровнях. Игрок появляется в центре экрана,
// рядом стоит один неходящий NPC (второй жилец для рендера и коллизий).
func Default() *Blueprint {
	wall := func(x, y, z int) domain.Placement {
		return domain.Placement{
			Pos:  domain.Position{X: x, Y: y, Z: z},
			Kind: domain.TileKindWall,
		}
	}

	return &Blueprint{
		Name:   "pillars",
		Width:  80,
		Height: 50,
		Depth:  20,
		Placements: []domain.Placement{
			wall(30, 22, 10),
			wall(10, 22, 10),
			wall(10, 12, 1),
			wall(0, 2, 0),
			wall(30, 29, 1),
			wall(23, 6, 0),
			wall(0, 0, 0),
			wall(6, 6, 1),
			wall(30, 25, 0),
		},
		Spawns: []Spawn{
			{
				Name:   "Player",
				Type:   domain.EntityTypePlayer,
				Symbol: "@",
				Color:  "#ffffff",
				Pos:    domain.Position{X: 45, Y: 30, Z: 10},
				Blocks: true,
			},
			{
				Name:   "Orc",
				Type:   domain.EntityTypeNPC,
				Symbol: "@",
				Color:  "#ffff00",
				Pos:    domain.Position{X: 40, Y: 30, Z: 10},
				Blocks: true,
			},
		},
	}
}
