package domain

// Типы сущностей
const (
	EntityTypePlayer = "PLAYER"
	EntityTypeNPC    = "NPC"
)

// RenderComponent - Визуализация (Клиент)
type RenderComponent struct {
	Symbol string `json:"symbol"` // Символ отображения (@ - существо)
	Color  string `json:"color"`  // Цвет в hex ("#ffffff")
}

// Entity - универсальный позиционированный объект: игрок, NPC, предмет.
// Все сущности делят одно представление; точка зрения (viewpoint) - это
// явная ссылка в симуляции, а не "нулевой индекс" в списке.
type Entity struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`

	Pos    Position        `json:"pos"`
	Render RenderComponent `json:"render"`

	// Blocks - занимает ли сущность клетку для других.
	// Производное от Standing: смена стойки меняет оба поля атомарно.
	Blocks bool `json:"blocks"`

	// Alive зарезервировано под будущую боевку; движение его не читает.
	Alive bool `json:"alive"`

	// Standing - бинарная стойка (стоит/лежит), в духе Dwarf Fortress.
	Standing bool `json:"standing"`
}

// NewEntity создает сущность в стоячей позе.
func NewEntity(id, typ, name string, pos Position, render RenderComponent, blocks bool) *Entity {
	return &Entity{
		ID:       id,
		Type:     typ,
		Name:     name,
		Pos:      pos,
		Render:   render,
		Blocks:   blocks,
		Alive:    false,
		Standing: true,
	}
}

// ToggleStance переключает стойку.
// Лежачую сущность можно перешагнуть, поэтому Blocks следует за Standing.
func (e *Entity) ToggleStance() {
	if e.Standing {
		e.Standing = false
		e.Blocks = false
	} else {
		e.Standing = true
		e.Blocks = true
	}
}

// SetPos перемещает сущность в указанную клетку.
func (e *Entity) SetPos(x, y, z int) {
	e.Pos = Position{X: x, Y: y, Z: z}
}
