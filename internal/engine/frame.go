package engine

import (
	"gridworld/pkg/api"
)

// BuildFrame снимает кадр для дисплея-коллаборатора: фоновые цвета всех
// клеток уровня точки обзора плюс видимые сущности этого уровня.
// Кадр - производное состояние, живет до следующего рендера.
func (s *Simulation) BuildFrame(frameType string) api.Frame {
	layer := s.viewpoint.Pos.Z

	frame := api.Frame{
		Type: frameType,
		Turn: s.turn,
		Grid: &api.GridMeta{
			Width:  s.grid.Width,
			Height: s.grid.Height,
			Depth:  s.grid.Depth,
			Layer:  layer,
		},
		Cells: make([]api.CellView, 0, s.grid.Width*s.grid.Height),
		Logs:  s.drainLogs(),
	}

	for y := 0; y < s.grid.Height; y++ {
		for x := 0; x < s.grid.Width; x++ {
			visible := s.fov.IsInFov(x, y)
			opaque := s.grid.TileAt(x, y, layer).BlocksSight

			frame.Cells = append(frame.Cells, api.CellView{
				X: x, Y: y,
				Color:   s.cellColor(visible, opaque),
				Visible: visible,
				Opaque:  opaque,
			})
		}
	}

	for _, e := range s.entities {
		if e.Pos.Z != layer || !s.fov.IsInFov(e.Pos.X, e.Pos.Y) {
			continue
		}
		view := api.EntityView{
			ID:       e.ID,
			Type:     e.Type,
			Name:     e.Name,
			Standing: e.Standing,
		}
		view.Pos.X = e.Pos.X
		view.Pos.Y = e.Pos.Y
		view.Render.Symbol = e.Render.Symbol
		view.Render.Color = e.Render.Color
		frame.Entities = append(frame.Entities, view)
	}

	return frame
}

// cellColor - матрица 2x2 {видимость, непрозрачность} -> цвет.
// Этот маппинг - часть контракта визуальной достоверности, он
// воспроизводится один в один во всех фронтендах.
func (s *Simulation) cellColor(visible, opaque bool) string {
	switch {
	case visible && opaque:
		return s.cfg.Colors.LightWall
	case visible && !opaque:
		return s.cfg.Colors.LightGround
	case !visible && opaque:
		return s.cfg.Colors.DarkWall
	default:
		return s.cfg.Colors.DarkGround
	}
}
