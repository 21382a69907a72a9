package domain

import "fmt"

// ErrOutOfBounds возвращается проверяющими методами сетки при выходе
// координаты за пределы карты. Для горячего пути есть TileAt без проверки.
type ErrOutOfBounds struct {
	X, Y, Z int
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("coordinate (%d,%d,%d) is outside the grid", e.X, e.Y, e.Z)
}

// Grid - плотная трехмерная сетка тайлов.
// Хранится одним линейным буфером, адресация через Index.
// Создается один раз при старте и после этого не мутирует.
type Grid struct {
	Width  int
	Height int
	Depth  int

	tiles []Tile
}

// NewGrid выделяет сетку Width*Height*Depth, заполненную пустыми тайлами.
func NewGrid(width, height, depth int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Depth:  depth,
		tiles:  make([]Tile, width*height*depth),
	}
}

// Index - каноническая линеаризация координат.
// Строка X, затем слои Y внутри уровня Z: x + Width*(y + Height*z).
func (g *Grid) Index(x, y, z int) int {
	return x + g.Width*(y+g.Height*z)
}

// FlatIndex - линеаризация в пределах одного уровня (для FOV и рендера).
func (g *Grid) FlatIndex(x, y int) int {
	return y*g.Width + x
}

// InBounds проверяет, лежит ли координата внутри сетки.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.Width &&
		y >= 0 && y < g.Height &&
		z >= 0 && z < g.Depth
}

// TileAt возвращает тайл без проверки границ.
// Горячий путь: вызывающий гарантирует корректность координат
// (проверки коллизий и границ выполняются до обращения).
func (g *Grid) TileAt(x, y, z int) Tile {
	return g.tiles[g.Index(x, y, z)]
}

// TileAtChecked - проверяющий вариант TileAt.
// Выход за границы - нарушение контракта вызывающего, а не игровая ситуация,
// поэтому наверху такие ошибки логируются как фатальные.
func (g *Grid) TileAtChecked(x, y, z int) (Tile, error) {
	if !g.InBounds(x, y, z) {
		return Tile{}, &ErrOutOfBounds{X: x, Y: y, Z: z}
	}
	return g.tiles[g.Index(x, y, z)], nil
}

// place укладывает тайл. Доступно только пакету domain:
// снаружи сетка строится через atlas.Blueprint и дальше неизменяема.
func (g *Grid) place(x, y, z int, t Tile) error {
	if !g.InBounds(x, y, z) {
		return &ErrOutOfBounds{X: x, Y: y, Z: z}
	}
	g.tiles[g.Index(x, y, z)] = t
	return nil
}

// Placement - одна авторская правка карты: координата и вариант тайла.
type Placement struct {
	Pos  Position `json:"pos" yaml:"pos"`
	Kind TileKind `json:"kind" yaml:"kind"`
}

// BuildGrid создает сетку и применяет список авторских правок.
// Правка вне границ - ошибка данных карты, сетка не возвращается.
func BuildGrid(width, height, depth int, placements []Placement) (*Grid, error) {
	g := NewGrid(width, height, depth)
	for i, p := range placements {
		if err := g.place(p.Pos.X, p.Pos.Y, p.Pos.Z, p.Kind.Make()); err != nil {
			return nil, fmt.Errorf("placement %d: %w", i, err)
		}
	}
	return g, nil
}
