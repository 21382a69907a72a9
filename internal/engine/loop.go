package engine

import (
	"gridworld/internal/domain"
	"gridworld/pkg/api"
	"gridworld/pkg/logger"
)

// ActionSource - ввод-коллаборатор. NextCommand блокируется до следующего
// действия; это единственная точка, где управление покидает цикл.
// ok=false означает, что источник закрыт (окно закрыто, сокет оборван) -
// цикл чисто завершается, откатывать нечего: каждое действие атомарно.
type ActionSource interface {
	NextCommand() (cmd domain.InternalCommand, ok bool)
}

// Display - дисплей-коллаборатор. Render потребляет кадр и коммитит его
// на экран (как - ядра не касается). ToggleFullscreen - делегированное
// действие без эффекта на симуляцию.
type Display interface {
	Render(frame api.Frame) error
	ToggleFullscreen()
}

// Run крутит синхронный цикл ходов:
// awaiting-input -> applying-action -> recompute-if-needed -> render.
// Работает в одном горутине-владельце состояния; фоновых задач нет.
func Run(sim *Simulation, src ActionSource, display Display) error {
	loopLogger := logger.Component("loop")

	// Первый кадр рисуем до первого ввода.
	sim.RefreshVisibility()
	if err := display.Render(sim.BuildFrame("INIT")); err != nil {
		return err
	}

	for {
		// awaiting-input
		cmd, ok := src.NextCommand()
		if !ok {
			loopLogger.Info("Action source closed, leaving the loop")
			return nil
		}

		// applying-action
		out := sim.Apply(cmd)
		if out.Fullscreen {
			display.ToggleFullscreen()
		}

		// recompute-if-needed: только если (x,y) точки обзора изменились
		sim.RefreshVisibility()

		// render
		if err := display.Render(sim.BuildFrame("UPDATE")); err != nil {
			return err
		}

		if out.Quit {
			loopLogger.WithField("turns", sim.Turn()).Info("Quit requested")
			return nil
		}
	}
}
