package handlers

import (
	"encoding/json"

	"gridworld/internal/domain"
)

// Context передает хендлеру состояние мира.
// Передаем ссылки, чтобы хендлер мог мутировать сущностей.
type Context struct {
	Grid     *domain.Grid
	Entities []*domain.Entity
	Actor    *domain.Entity // Тот, кто выполняет команду
}

// Effect - побочный эффект команды, адресованный циклу, а не миру.
// Quit завершает цикл, Fullscreen делегируется дисплею-коллаборатору
// (симуляция его не интерпретирует).
type Effect uint8

const (
	EffectNone Effect = iota
	EffectQuit
	EffectFullscreen
)

// Result - результат выполнения команды.
// Хендлер НЕ пишет в журнал симуляции напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога (пусто - нечего сказать)
	MsgType string // Тип лога (INFO, ERROR)
	Effect  Effect
}

// HandlerFunc - контракт любой команды (MOVE, STANCE, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
