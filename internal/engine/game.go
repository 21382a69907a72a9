package engine

import (
	"fmt"
	"time"

	"gridworld/internal/domain"
	"gridworld/internal/engine/handlers"
	"gridworld/internal/engine/handlers/actions"
	"gridworld/internal/systems"
	"gridworld/pkg/api"
	"gridworld/pkg/atlas"
	"gridworld/pkg/logger"
	"gridworld/pkg/utils"
)

// Simulation владеет всем состоянием мира: сеткой, сущностями, движком
// видимости. Однопоточная: один логический владелец, никаких блокировок.
// Точка обзора - явная ссылка, а не соглашение "нулевой индекс в списке".
type Simulation struct {
	cfg Config

	grid      *domain.Grid
	entities  []*domain.Entity
	viewpoint *domain.Entity
	fov       *systems.FOVEngine

	actionHandlers map[domain.ActionType]handlers.HandlerFunc

	turn int
	logs []api.LogEntry
}

// Outcome - эффекты применения команды, адресованные циклу.
type Outcome struct {
	Quit       bool
	Fullscreen bool
}

// NewSimulation собирает мир по чертежу.
// Чертеж обязан содержать ровно один спавн типа PLAYER - он становится
// точкой обзора.
func NewSimulation(cfg Config, bp *atlas.Blueprint) (*Simulation, error) {
	grid, err := bp.Build()
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}

	s := &Simulation{
		cfg:  cfg,
		grid: grid,
		fov:  systems.NewFOVEngine(grid, cfg.TorchRadius, cfg.LightWalls),
		logs: []api.LogEntry{},
	}

	for _, sp := range bp.Spawns {
		e := domain.NewEntity(
			utils.GenerateID(), sp.Type, sp.Name, sp.Pos,
			domain.RenderComponent{Symbol: sp.Symbol, Color: sp.Color},
			sp.Blocks,
		)
		s.entities = append(s.entities, e)

		if sp.Type == domain.EntityTypePlayer {
			if s.viewpoint != nil {
				return nil, fmt.Errorf("blueprint %q has more than one player spawn", bp.Name)
			}
			s.viewpoint = e
		}
	}
	if s.viewpoint == nil {
		return nil, fmt.Errorf("blueprint %q has no player spawn", bp.Name)
	}

	s.actionHandlers = map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionInit:       handlers.WithEmptyPayload(actions.HandleInit),
		domain.ActionMove:       handlers.WithPayload(actions.HandleMove),
		domain.ActionStance:     handlers.WithEmptyPayload(actions.HandleStance),
		domain.ActionFullscreen: handlers.WithEmptyPayload(actions.HandleFullscreen),
		domain.ActionQuit:       handlers.WithEmptyPayload(actions.HandleQuit),
	}

	logger.Component("engine").WithField("blueprint", bp.Name).
		Info("Simulation assembled")
	return s, nil
}

// Apply выполняет одну команду. Каждое действие атомарно: либо ход
// коммитится целиком, либо мир не меняется. Нераспознанные команды и
// невалидные полезные нагрузки - no-op, не ошибка.
func (s *Simulation) Apply(cmd domain.InternalCommand) Outcome {
	handler, ok := s.actionHandlers[cmd.Action]
	if !ok {
		logger.Component("engine").WithField("action", cmd.Action.String()).
			Debug("Ignoring unrecognized action")
		return Outcome{}
	}

	result, err := handler(handlers.Context{
		Grid:     s.grid,
		Entities: s.entities,
		Actor:    s.viewpoint,
	}, cmd.Payload)
	if err != nil {
		// Битая полезная нагрузка приравнивается к нераспознанному вводу.
		logger.Component("engine").WithError(err).
			WithField("action", cmd.Action.String()).
			Warn("Command rejected")
		return Outcome{}
	}

	if cmd.Action != domain.ActionInit {
		s.turn++
	}
	if result.Msg != "" {
		s.AddLog(result.Msg, result.MsgType)
	}

	return Outcome{
		Quit:       result.Effect == handlers.EffectQuit,
		Fullscreen: result.Effect == handlers.EffectFullscreen,
	}
}

// RefreshVisibility пересчитывает FOV, если точка обзора сместилась в XY.
// Вызывается ровно один раз за ход, после применения команды.
func (s *Simulation) RefreshVisibility() bool {
	return s.fov.Refresh(s.viewpoint.Pos)
}

// AddLog добавляет запись в журнал текущего кадра.
func (s *Simulation) AddLog(text, logType string) {
	s.logs = append(s.logs, api.LogEntry{
		ID:        utils.GenerateID(),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}

// drainLogs отдает накопленные записи и очищает журнал.
func (s *Simulation) drainLogs() []api.LogEntry {
	out := s.logs
	s.logs = []api.LogEntry{}
	return out
}

// Grid возвращает сетку (для отладочных выводов и тестов).
func (s *Simulation) Grid() *domain.Grid { return s.grid }

// Entities возвращает реестр сущностей.
func (s *Simulation) Entities() []*domain.Entity { return s.entities }

// Viewpoint возвращает сущность-точку обзора.
func (s *Simulation) Viewpoint() *domain.Entity { return s.viewpoint }

// IsInFov отвечает по последнему пересчету видимости.
func (s *Simulation) IsInFov(x, y int) bool { return s.fov.IsInFov(x, y) }

// Turn возвращает номер текущего хода.
func (s *Simulation) Turn() int { return s.turn }
