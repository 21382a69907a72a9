package domain

import "testing"

func TestEntity_ToggleStance(t *testing.T) {
	e := NewEntity("e1", EntityTypePlayer, "Hero",
		Position{X: 1, Y: 1, Z: 0},
		RenderComponent{Symbol: "@", Color: "#ffffff"}, true)

	if !e.Standing || !e.Blocks {
		t.Fatal("New entity must stand and block")
	}

	// 1. Going prone clears Blocks
	e.ToggleStance()
	if e.Standing {
		t.Error("Expected Standing=false after first toggle")
	}
	if e.Blocks {
		t.Error("Prone entity must not block")
	}

	// 2. Second toggle restores the original state (idempotent over two calls)
	e.ToggleStance()
	if !e.Standing || !e.Blocks {
		t.Error("Expected original state after two toggles")
	}

	// 3. Blocks tracks Standing on every call
	for i := 0; i < 5; i++ {
		e.ToggleStance()
		if e.Blocks != e.Standing {
			t.Fatalf("Blocks/Standing out of sync on toggle %d", i)
		}
	}
}

func TestParseAction(t *testing.T) {
	cases := map[string]ActionType{
		"MOVE":       ActionMove,
		"move":       ActionMove,
		"STANCE":     ActionStance,
		"FULLSCREEN": ActionFullscreen,
		"QUIT":       ActionQuit,
		"INIT":       ActionInit,
		"DANCE":      ActionUnknown,
		"":           ActionUnknown,
	}
	for in, want := range cases {
		if got := ParseAction(in); got != want {
			t.Errorf("ParseAction(%q) = %v, want %v", in, got, want)
		}
	}
}
