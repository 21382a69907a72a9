// mapcheck - проверка YAML-чертежей карт перед тем, как скормить их серверу.
//
//	go run ./tools/mapcheck level.yaml
//
// Валидирует чертеж, собирает сетку и печатает сводку: размеры, число
// стен по уровням, спавны и очевидные конфликты (спавн внутри стены,
// два спавна на одной клетке).
package main

import (
	"flag"
	"fmt"
	"os"

	"gridworld/internal/domain"
	"gridworld/pkg/atlas"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: mapcheck <blueprint.yaml> [more.yaml ...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		if err := check(path); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func check(path string) error {
	bp, err := atlas.Load(path)
	if err != nil {
		return err
	}

	grid, err := bp.Build()
	if err != nil {
		return err
	}

	fmt.Printf("OK   %s: %q %dx%dx%d, %d placements, %d spawns\n",
		path, bp.Name, bp.Width, bp.Height, bp.Depth, len(bp.Placements), len(bp.Spawns))

	// Стены по уровням (пустые уровни не печатаем)
	for z := 0; z < grid.Depth; z++ {
		walls := 0
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				if grid.TileAt(x, y, z).Blocked {
					walls++
				}
			}
		}
		if walls > 0 {
			fmt.Printf("     layer %d: %d walls\n", z, walls)
		}
	}

	// Спавны и конфликты
	occupied := make(map[domain.Position]string)
	players := 0
	for _, sp := range bp.Spawns {
		fmt.Printf("     spawn %-12s %-6s %s at (%d,%d,%d)\n",
			sp.Name, sp.Type, sp.Symbol, sp.Pos.X, sp.Pos.Y, sp.Pos.Z)

		if sp.Type == domain.EntityTypePlayer {
			players++
		}
		if grid.TileAt(sp.Pos.X, sp.Pos.Y, sp.Pos.Z).Blocked {
			return fmt.Errorf("spawn %q is inside a wall at (%d,%d,%d)",
				sp.Name, sp.Pos.X, sp.Pos.Y, sp.Pos.Z)
		}
		if prev, ok := occupied[sp.Pos]; ok {
			return fmt.Errorf("spawns %q and %q share (%d,%d,%d)",
				prev, sp.Name, sp.Pos.X, sp.Pos.Y, sp.Pos.Z)
		}
		occupied[sp.Pos] = sp.Name
	}

	if players != 1 {
		return fmt.Errorf("expected exactly one %s spawn, got %d", domain.EntityTypePlayer, players)
	}
	return nil
}
