package domain

// Tile описывает статические свойства одной клетки карты.
// Blocked и BlocksSight - независимые оси: окно блокирует движение,
// но не взгляд; высокая трава - наоборот. Тайл неизменяем после укладки.
type Tile struct {
	Blocked     bool `json:"blocked"`
	BlocksSight bool `json:"blocksSight"`
}

// EmptyTile возвращает проходимый и прозрачный тайл.
func EmptyTile() Tile {
	return Tile{Blocked: false, BlocksSight: false}
}

// WallTile возвращает непроходимый и непрозрачный тайл.
func WallTile() Tile {
	return Tile{Blocked: true, BlocksSight: true}
}

// TileKind - символическое имя варианта тайла (для чертежей карт).
type TileKind string

const (
	TileKindEmpty TileKind = "empty"
	TileKindWall  TileKind = "wall"
)

// Make возвращает тайл соответствующего варианта.
// Неизвестный вариант трактуем как пустой: чертеж уже прошел валидацию.
func (k TileKind) Make() Tile {
	if k == TileKindWall {
		return WallTile()
	}
	return EmptyTile()
}
