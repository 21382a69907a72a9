// cmd/play - локальный консольный фронтенд поверх tcell.
// Терминал выступает обоими коллабораторами ядра сразу: клавиатура -
// источник действий, экран - дисплей. Правил здесь нет, только блит и мапа
// клавиш.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"

	"gridworld/internal/domain"
	"gridworld/internal/engine"
	"gridworld/pkg/api"
	"gridworld/pkg/atlas"
	"gridworld/pkg/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to engine config YAML (empty for defaults)")
	flag.Parse()

	logger.Init()
	// Логи в stderr ломают отрисовку; пишем в файл по запросу, иначе молчим.
	if path := os.Getenv("GW_PLAY_LOG"); path != "" {
		if f, err := os.Create(path); err == nil {
			logger.Log.SetOutput(f)
			defer f.Close()
		}
	} else {
		logger.Log.SetOutput(io.Discard)
	}

	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		logger.Log.Fatal("Config error: ", err)
	}

	bp := atlas.Default()
	if cfg.BlueprintPath != "" {
		if bp, err = atlas.Load(cfg.BlueprintPath); err != nil {
			logger.Log.Fatal("Blueprint error: ", err)
		}
	}

	sim, err := engine.NewSimulation(cfg, bp)
	if err != nil {
		logger.Log.Fatal("Engine init error: ", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Log.Fatal("Screen error: ", err)
	}
	if err := screen.Init(); err != nil {
		logger.Log.Fatal("Screen init error: ", err)
	}
	defer screen.Fini()

	term := &terminal{screen: screen, moves: cfg.Moves}
	if err := engine.Run(sim, term, term); err != nil {
		screen.Fini()
		logger.Log.Fatal("Loop error: ", err)
	}
}

// terminal реализует и ActionSource, и Display: ядро крутит цикл в одном
// горутине, так что PollEvent и отрисовка никогда не пересекаются.
type terminal struct {
	screen tcell.Screen
	moves  map[string]engine.Delta
	logs   []api.LogEntry
}

// NextCommand блокируется на PollEvent и переводит клавиши в действия.
func (t *terminal) NextCommand() (domain.InternalCommand, bool) {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()

		case *tcell.EventKey:
			if cmd, ok := t.translate(ev); ok {
				return cmd, true
			}

		case nil:
			// Экран закрыт
			return domain.InternalCommand{}, false
		}
	}
}

func (t *terminal) translate(ev *tcell.EventKey) (domain.InternalCommand, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return t.moveCmd("north")
	case tcell.KeyDown:
		return t.moveCmd("south")
	case tcell.KeyLeft:
		return t.moveCmd("west")
	case tcell.KeyRight:
		return t.moveCmd("east")

	case tcell.KeyEnter:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return domain.InternalCommand{Action: domain.ActionFullscreen}, true
		}

	case tcell.KeyEscape, tcell.KeyCtrlC:
		return domain.InternalCommand{Action: domain.ActionQuit}, true

	case tcell.KeyRune:
		if ev.Rune() == 's' {
			return domain.InternalCommand{Action: domain.ActionStance}, true
		}
	}
	return domain.InternalCommand{}, false
}

func (t *terminal) moveCmd(dir string) (domain.InternalCommand, bool) {
	d, ok := t.moves[dir]
	if !ok {
		return domain.InternalCommand{}, false
	}
	raw, _ := json.Marshal(api.DirectionPayload{Dx: d.Dx, Dy: d.Dy, Dz: d.Dz})
	return domain.InternalCommand{Action: domain.ActionMove, Payload: raw}, true
}

// Render блитит кадр: фоновые цвета клеток, поверх - видимые сущности,
// под картой - хвост игрового лога.
func (t *terminal) Render(frame api.Frame) error {
	t.screen.Clear()

	for _, c := range frame.Cells {
		style := tcell.StyleDefault.Background(tcell.GetColor(c.Color))
		t.screen.SetContent(c.X, c.Y, ' ', nil, style)
	}

	for _, e := range frame.Entities {
		sym := '?'
		for _, r := range e.Render.Symbol {
			sym = r
			break
		}
		style := tcell.StyleDefault.
			Foreground(tcell.GetColor(e.Render.Color)).
			Background(tcell.GetColor(t.cellColorAt(frame, e.Pos.X, e.Pos.Y)))
		t.screen.SetContent(e.Pos.X, e.Pos.Y, sym, nil, style)
	}

	t.logs = append(t.logs, frame.Logs...)
	if frame.Grid != nil {
		t.drawLogs(frame.Grid.Height)
	}

	t.screen.Show()
	return nil
}

// ToggleFullscreen: терминал не умеет фуллскрин, но делегированное действие
// обязаны потребить - делаем полную пересинхронизацию экрана.
func (t *terminal) ToggleFullscreen() {
	t.screen.Sync()
}

func (t *terminal) cellColorAt(frame api.Frame, x, y int) string {
	if frame.Grid != nil {
		if i := y*frame.Grid.Width + x; i >= 0 && i < len(frame.Cells) {
			return frame.Cells[i].Color
		}
	}
	return "#000000"
}

func (t *terminal) drawLogs(mapHeight int) {
	_, sh := t.screen.Size()
	rows := sh - mapHeight
	if rows <= 0 {
		return
	}
	start := len(t.logs) - rows
	if start < 0 {
		start = 0
	}
	style := tcell.StyleDefault
	for i, entry := range t.logs[start:] {
		for x, r := range entry.Text {
			t.screen.SetContent(x, mapHeight+i, r, nil, style)
		}
	}
}
