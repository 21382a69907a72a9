package actions

import (
	"fmt"

	"gridworld/internal/engine/handlers"
)

// HandleStance переключает стойку актора (стоит/лежит).
// Смена стойки безусловна и атомарна: Blocks меняется вместе со Standing.
func HandleStance(ctx handlers.Context) (handlers.Result, error) {
	ctx.Actor.ToggleStance()

	verb := "ложится"
	if ctx.Actor.Standing {
		verb = "встает"
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("%s %s.", ctx.Actor.Name, verb),
		MsgType: "INFO",
	}, nil
}
