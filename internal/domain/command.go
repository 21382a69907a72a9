package domain

import "encoding/json"

// InternalCommand - оптимизированная команда для движка.
// Использует ActionType вместо строки: дешево сравнивать, безопасно логировать.
type InternalCommand struct {
	Action  ActionType      // Число, а не строка
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
