package api

import (
	"encoding/json"
)

// --- СИМУЛЯЦИЯ -> ДИСПЛЕЙ ---

// Frame это корневой объект, который ядро отдает дисплею-коллаборатору.
// Полный "снимок" видимого мира на момент конца хода: фоновые цвета всех
// клеток уровня и видимые сущности. Дисплей только блитит, правил в нем нет.
type Frame struct {
	// Type тип кадра: "INIT" для первого кадра, дальше "UPDATE".
	Type string `json:"type"`

	// Turn порядковый номер хода, с которого снят кадр.
	Turn int `json:"turn"`

	// Grid метаданные о размере уровня, чтобы дисплей подготовил сетку.
	Grid *GridMeta `json:"grid,omitempty"`

	// Cells фоновые цвета клеток уровня точки обзора, по строкам (y*w+x).
	// Цвет выбран матрицей {видимость}x{непрозрачность} из четырех
	// настроенных цветов.
	Cells []CellView `json:"cells,omitempty"`

	// Entities сущности, попавшие в текущее поле зрения.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs новые сообщения с прошлого кадра.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит размеры уровня.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
	Depth  int `json:"d"`
	Layer  int `json:"layer"` // Уровень точки обзора, с которого снят кадр
}

// CellView это DTO одной клетки кадра.
type CellView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Color фоновый цвет клетки в hex ("#c8b432").
	Color string `json:"color"`

	// Visible true, если клетка в текущем поле зрения.
	Visible bool `json:"visible"`

	// Opaque true, если клетка непрозрачна (стена). Вместе с Visible
	// однозначно определяет, какая из четырех граней матрицы выбрана.
	Opaque bool `json:"opaque"`
}

// EntityView это DTO видимой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, NPC
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	Standing bool `json:"standing"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- ВВОД -> СИМУЛЯЦИЯ ---

// ClientCommand это корневой объект для всех сообщений от ввода-коллаборатора.
type ClientCommand struct {
	// Action название действия: MOVE, STANCE, FULLSCREEN, QUIT, INIT.
	Action string `json:"action"`

	// Payload JSON-объект с данными действия. Структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE.
// Ходы только кардинальные и одношаговые: ровно одна из осей равна ±1.
type DirectionPayload struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
	Dz int `json:"dz,omitempty"`
}
