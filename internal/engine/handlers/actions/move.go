package actions

import (
	"gridworld/internal/engine/handlers"
	"gridworld/internal/systems"
	"gridworld/pkg/api"
)

// HandleMove применяет одношаговое кардинальное движение.
// Упереться в стену или в занятую клетку - штатный исход: действие
// поглощается, позиция не меняется, ошибок и сообщений нет.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	res := systems.CalculateMove(ctx.Actor, p.Dx, p.Dy, p.Dz, ctx.Grid, ctx.Entities)

	if res.HasMoved {
		ctx.Actor.SetPos(res.NewX, res.NewY, res.NewZ)
	}

	return handlers.EmptyResult(), nil
}
