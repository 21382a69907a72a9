package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionStance
	ActionFullscreen
	ActionQuit
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":       ActionInit,
	"MOVE":       ActionMove,
	"STANCE":     ActionStance,
	"FULLSCREEN": ActionFullscreen,
	"QUIT":       ActionQuit,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:       "INIT",
	ActionMove:       "MOVE",
	ActionStance:     "STANCE",
	ActionFullscreen: "FULLSCREEN",
	ActionQuit:       "QUIT",
}

// ParseAction конвертирует строку из JSON в ActionType.
// Неизвестное действие - это ActionUnknown, который движок молча игнорирует
// (нераспознанный ввод - штатная ситуация, не ошибка).
func ParseAction(s string) ActionType {
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf и логов)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
