// Package atlas поставляет авторские чертежи карт.
// Ядро карты не генерирует и не валидирует сверх границ: чертеж - это
// внешний коллаборатор, фиксированный список правок поверх пустой сетки.
package atlas

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gridworld/internal/domain"
)

// Spawn описывает стартовую сущность уровня.
type Spawn struct {
	Name   string          `yaml:"name"`
	Type   string          `yaml:"type"` // PLAYER, NPC
	Symbol string          `yaml:"symbol"`
	Color  string          `yaml:"color"`
	Pos    domain.Position `yaml:"pos"`
	Blocks bool            `yaml:"blocks"`
}

// Blueprint - полный чертеж уровня: размеры, правки тайлов, спавны.
type Blueprint struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Depth  int    `yaml:"depth"`

	Placements []domain.Placement `yaml:"placements"`
	Spawns     []Spawn            `yaml:"spawns"`
}

// Validate проверяет размеры и вхождение всех координат в границы.
func (b *Blueprint) Validate() error {
	if b.Width <= 0 || b.Height <= 0 || b.Depth <= 0 {
		return fmt.Errorf("blueprint %q: non-positive dimensions %dx%dx%d",
			b.Name, b.Width, b.Height, b.Depth)
	}
	inBounds := func(p domain.Position) bool {
		return p.X >= 0 && p.X < b.Width &&
			p.Y >= 0 && p.Y < b.Height &&
			p.Z >= 0 && p.Z < b.Depth
	}
	for i, pl := range b.Placements {
		if !inBounds(pl.Pos) {
			return fmt.Errorf("blueprint %q: placement %d at (%d,%d,%d) is out of bounds",
				b.Name, i, pl.Pos.X, pl.Pos.Y, pl.Pos.Z)
		}
		if pl.Kind != domain.TileKindEmpty && pl.Kind != domain.TileKindWall {
			return fmt.Errorf("blueprint %q: placement %d has unknown kind %q",
				b.Name, i, pl.Kind)
		}
	}
	for i, sp := range b.Spawns {
		if !inBounds(sp.Pos) {
			return fmt.Errorf("blueprint %q: spawn %d (%s) at (%d,%d,%d) is out of bounds",
				b.Name, i, sp.Name, sp.Pos.X, sp.Pos.Y, sp.Pos.Z)
		}
	}
	return nil
}

// Build валидирует чертеж и собирает сетку.
func (b *Blueprint) Build() (*domain.Grid, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return domain.BuildGrid(b.Width, b.Height, b.Depth, b.Placements)
}

// Load читает чертеж из YAML-файла.
func Load(path string) (*Blueprint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blueprint: %w", err)
	}
	var b Blueprint
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("parse blueprint: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}
