package api

import "testing"

func TestDirectionPayload_Validate(t *testing.T) {
	valid := []DirectionPayload{
		{Dx: 1}, {Dx: -1}, {Dy: 1}, {Dy: -1}, {Dz: 1}, {Dz: -1},
	}
	for _, p := range valid {
		if err := p.Validate(); err != nil {
			t.Errorf("Expected %+v to be valid, got %v", p, err)
		}
	}

	invalid := []DirectionPayload{
		{},                 // zero vector
		{Dx: 2},            // step too large
		{Dy: -3},           // step too large
		{Dx: 1, Dy: 1},     // diagonal
		{Dx: 1, Dz: -1},    // diagonal across layers
		{Dx: 1, Dy: 1, Dz: 1}, // all axes
	}
	for _, p := range invalid {
		if err := p.Validate(); err == nil {
			t.Errorf("Expected %+v to be rejected", p)
		}
	}
}
