package actions

import "gridworld/internal/engine/handlers"

func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Добро пожаловать в Gridworld.",
		MsgType: "INFO",
	}, nil
}

// HandleFullscreen делегирует переключение полноэкранного режима дисплею.
// Для симуляции это пустое действие: состояние мира не меняется.
func HandleFullscreen(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Effect: handlers.EffectFullscreen}, nil
}

// HandleQuit завершает цикл симуляции.
func HandleQuit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "До встречи.",
		MsgType: "INFO",
		Effect:  handlers.EffectQuit,
	}, nil
}
