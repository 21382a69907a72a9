package atlas

import (
	"os"
	"path/filepath"
	"testing"

	"gridworld/internal/domain"
)

func TestDefault_BuildsAuthoredGrid(t *testing.T) {
	bp := Default()

	g, err := bp.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// 1. The two test pillars on layer 10
	if !g.TileAt(30, 22, 10).Blocked || !g.TileAt(10, 22, 10).Blocked {
		t.Error("Expected pillars at (30,22,10) and (10,22,10)")
	}

	// 2. Untouched cells stay empty
	if g.TileAt(45, 30, 10).Blocked {
		t.Error("Player spawn cell must be empty")
	}

	// 3. Spawns: exactly one player, all within bounds
	players := 0
	for _, s := range bp.Spawns {
		if s.Type == domain.EntityTypePlayer {
			players++
		}
	}
	if players != 1 {
		t.Errorf("Expected exactly one player spawn, got %d", players)
	}
}

func TestBlueprint_ValidateRejectsOutOfBounds(t *testing.T) {
	bp := &Blueprint{
		Name: "broken", Width: 10, Height: 10, Depth: 1,
		Placements: []domain.Placement{
			{Pos: domain.Position{X: 10, Y: 0, Z: 0}, Kind: domain.TileKindWall},
		},
	}
	if err := bp.Validate(); err == nil {
		t.Error("Expected out-of-bounds placement to be rejected")
	}

	bp = &Blueprint{
		Name: "broken-spawn", Width: 10, Height: 10, Depth: 1,
		Spawns: []Spawn{{Name: "Ghost", Pos: domain.Position{X: 0, Y: 0, Z: 5}}},
	}
	if err := bp.Validate(); err == nil {
		t.Error("Expected out-of-bounds spawn to be rejected")
	}

	bp = &Blueprint{Name: "flat", Width: 0, Height: 10, Depth: 1}
	if err := bp.Validate(); err == nil {
		t.Error("Expected non-positive dimensions to be rejected")
	}

	bp = &Blueprint{
		Name: "typo", Width: 10, Height: 10, Depth: 1,
		Placements: []domain.Placement{
			{Pos: domain.Position{X: 1, Y: 1, Z: 0}, Kind: "wal"},
		},
	}
	if err := bp.Validate(); err == nil {
		t.Error("Expected unknown tile kind to be rejected")
	}
}

func TestLoad_YAMLRoundout(t *testing.T) {
	yamlDoc := `
name: corridor
width: 12
height: 4
depth: 1
placements:
  - pos: {x: 5, y: 1, z: 0}
    kind: wall
  - pos: {x: 5, y: 2, z: 0}
    kind: wall
spawns:
  - name: Player
    type: PLAYER
    symbol: "@"
    color: "#ffffff"
    pos: {x: 1, y: 1, z: 0}
    blocks: true
`
	path := filepath.Join(t.TempDir(), "corridor.yaml")
	if err := os.WriteFile(path, []byte(yamlDoc), 0644); err != nil {
		t.Fatal(err)
	}

	bp, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if bp.Name != "corridor" || bp.Width != 12 {
		t.Errorf("Unexpected header: %+v", bp)
	}

	g, err := bp.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !g.TileAt(5, 1, 0).Blocked || !g.TileAt(5, 2, 0).Blocked {
		t.Error("Expected walls from the YAML placements")
	}
	if g.TileAt(6, 1, 0).Blocked {
		t.Error("Expected untouched cell to stay empty")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/map.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
}
