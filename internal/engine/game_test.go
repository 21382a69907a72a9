package engine

import (
	"encoding/json"
	"testing"

	"gridworld/internal/domain"
	"gridworld/pkg/api"
	"gridworld/pkg/atlas"
)

func moveCmd(t *testing.T, dx, dy, dz int) domain.InternalCommand {
	t.Helper()
	payload, err := json.Marshal(api.DirectionPayload{Dx: dx, Dy: dy, Dz: dz})
	if err != nil {
		t.Fatal(err)
	}
	return domain.InternalCommand{Action: domain.ActionMove, Payload: payload}
}

func newTestSim(t *testing.T, bp *atlas.Blueprint) *Simulation {
	t.Helper()
	sim, err := NewSimulation(NewConfig(), bp)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	return sim
}

func TestNewSimulation_ViewpointFromBlueprint(t *testing.T) {
	sim := newTestSim(t, atlas.Default())

	vp := sim.Viewpoint()
	if vp == nil {
		t.Fatal("Expected an explicit viewpoint handle")
	}
	if vp.Type != domain.EntityTypePlayer {
		t.Errorf("Viewpoint must be the player, got %s", vp.Type)
	}
	if vp.Pos != (domain.Position{X: 45, Y: 30, Z: 10}) {
		t.Errorf("Unexpected spawn position: %+v", vp.Pos)
	}
	if len(sim.Entities()) != 2 {
		t.Errorf("Expected player and one NPC, got %d entities", len(sim.Entities()))
	}
}

func TestNewSimulation_RequiresExactlyOnePlayer(t *testing.T) {
	bp := atlas.Default()
	bp.Spawns = bp.Spawns[1:] // drop the player
	if _, err := NewSimulation(NewConfig(), bp); err == nil {
		t.Error("Expected error for blueprint without a player spawn")
	}

	bp = atlas.Default()
	bp.Spawns = append(bp.Spawns, bp.Spawns[0]) // second player
	if _, err := NewSimulation(NewConfig(), bp); err == nil {
		t.Error("Expected error for blueprint with two player spawns")
	}
}

func TestApply_MoveAndRecompute(t *testing.T) {
	sim := newTestSim(t, atlas.Default())
	sim.RefreshVisibility()

	start := sim.Viewpoint().Pos

	// 1. A valid move shifts by exactly the delta and makes FOV stale
	sim.Apply(moveCmd(t, 1, 0, 0))
	if sim.Viewpoint().Pos != start.Shift(1, 0, 0) {
		t.Errorf("Expected position %+v, got %+v", start.Shift(1, 0, 0), sim.Viewpoint().Pos)
	}
	if !sim.RefreshVisibility() {
		t.Error("Moved viewpoint must trigger a recompute")
	}

	// 2. A turn without movement leaves FOV current
	sim.Apply(domain.InternalCommand{Action: domain.ActionStance})
	if sim.RefreshVisibility() {
		t.Error("Unmoved viewpoint must not trigger a recompute")
	}
}

func TestApply_BlockedMoveIsSilentNoop(t *testing.T) {
	bp := atlas.Default()
	// Wall directly east of the spawn
	bp.Placements = append(bp.Placements, domain.Placement{
		Pos:  domain.Position{X: 46, Y: 30, Z: 10},
		Kind: domain.TileKindWall,
	})
	sim := newTestSim(t, bp)
	sim.RefreshVisibility()

	start := sim.Viewpoint().Pos

	sim.Apply(moveCmd(t, 1, 0, 0))
	if sim.Viewpoint().Pos != start {
		t.Error("Blocked move must not change the position")
	}
	// Previous FOV stays valid for subsequent queries
	if sim.RefreshVisibility() {
		t.Error("Blocked move must not invalidate the FOV")
	}
	if !sim.IsInFov(46, 30) {
		t.Error("The wall's near face must still be lit")
	}
	if sim.IsInFov(47, 30) {
		t.Error("The cell behind the wall must still be shadowed")
	}
}

func TestApply_EntityCollision(t *testing.T) {
	sim := newTestSim(t, atlas.Default())
	sim.RefreshVisibility()

	// Walk the viewpoint right up to the NPC at (40,30,10)
	for i := 0; i < 4; i++ {
		sim.Apply(moveCmd(t, -1, 0, 0))
		sim.RefreshVisibility()
	}
	if sim.Viewpoint().Pos.X != 41 {
		t.Fatalf("Expected to stand at x=41, got %d", sim.Viewpoint().Pos.X)
	}

	// 1. Standing NPC blocks the next step
	sim.Apply(moveCmd(t, -1, 0, 0))
	if sim.Viewpoint().Pos.X != 41 {
		t.Error("Standing NPC must block the move")
	}

	// 2. After the NPC goes prone the same step succeeds
	for _, e := range sim.Entities() {
		if e.Type == domain.EntityTypeNPC {
			e.ToggleStance()
		}
	}
	sim.Apply(moveCmd(t, -1, 0, 0))
	if sim.Viewpoint().Pos.X != 40 {
		t.Error("Prone NPC must be walk-through")
	}
}

func TestApply_UnknownAndInvalidAreNoops(t *testing.T) {
	sim := newTestSim(t, atlas.Default())
	sim.RefreshVisibility()
	start := sim.Viewpoint().Pos

	// 1. Unrecognized action
	out := sim.Apply(domain.InternalCommand{Action: domain.ActionUnknown})
	if out.Quit || out.Fullscreen {
		t.Error("Unknown action must have no effects")
	}

	// 2. Diagonal payload fails validation and is dropped
	sim.Apply(moveCmd(t, 1, 1, 0))
	if sim.Viewpoint().Pos != start {
		t.Error("Invalid payload must not move the viewpoint")
	}
}

func TestApply_LoopEffects(t *testing.T) {
	sim := newTestSim(t, atlas.Default())

	if out := sim.Apply(domain.InternalCommand{Action: domain.ActionQuit}); !out.Quit {
		t.Error("QUIT must request loop termination")
	}
	out := sim.Apply(domain.InternalCommand{Action: domain.ActionFullscreen})
	if !out.Fullscreen {
		t.Error("FULLSCREEN must be delegated to the display")
	}
	if out.Quit {
		t.Error("FULLSCREEN must not quit")
	}
}

func TestBuildFrame_ColorMatrix(t *testing.T) {
	bp := atlas.Default()
	bp.Placements = append(bp.Placements,
		domain.Placement{Pos: domain.Position{X: 46, Y: 30, Z: 10}, Kind: domain.TileKindWall}, // lit wall
	)
	sim := newTestSim(t, bp)
	sim.RefreshVisibility()

	frame := sim.BuildFrame("INIT")
	if frame.Grid.Width != 80 || frame.Grid.Layer != 10 {
		t.Fatalf("Unexpected frame meta: %+v", frame.Grid)
	}
	if len(frame.Cells) != 80*50 {
		t.Fatalf("Expected a cell per map coordinate, got %d", len(frame.Cells))
	}

	cfg := NewConfig()
	at := func(x, y int) api.CellView {
		return frame.Cells[y*80+x]
	}

	// The four corners of the {visible, opaque} matrix
	if c := at(45, 30); c.Color != cfg.Colors.LightGround { // viewpoint cell
		t.Errorf("Visible ground: want %s, got %s", cfg.Colors.LightGround, c.Color)
	}
	if c := at(46, 30); c.Color != cfg.Colors.LightWall { // adjacent wall, lightWalls=true
		t.Errorf("Visible wall: want %s, got %s", cfg.Colors.LightWall, c.Color)
	}
	if c := at(10, 22); c.Color != cfg.Colors.DarkWall { // far pillar
		t.Errorf("Hidden wall: want %s, got %s", cfg.Colors.DarkWall, c.Color)
	}
	if c := at(0, 49); c.Color != cfg.Colors.DarkGround { // far corner
		t.Errorf("Hidden ground: want %s, got %s", cfg.Colors.DarkGround, c.Color)
	}

	// Entities inside the FOV are listed: player and the NPC at distance 5
	if len(frame.Entities) != 2 {
		t.Errorf("Expected 2 visible entities, got %d", len(frame.Entities))
	}
}

func TestBuildFrame_EntitiesOutsideFovHidden(t *testing.T) {
	bp := atlas.Default()
	bp.Spawns[1].Pos = domain.Position{X: 10, Y: 10, Z: 10} // NPC far beyond the torch
	sim := newTestSim(t, bp)
	sim.RefreshVisibility()

	frame := sim.BuildFrame("INIT")
	if len(frame.Entities) != 1 {
		t.Fatalf("Expected only the viewpoint to be visible, got %d", len(frame.Entities))
	}
	if frame.Entities[0].Type != domain.EntityTypePlayer {
		t.Error("The visible entity must be the player")
	}
}
