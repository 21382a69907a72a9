package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gridworld/internal/engine"
	"gridworld/pkg/logger"
)

// DebugHandler предоставляет доступ к внутреннему состоянию симуляции.
//
// Чтения идут мимо горутины-владельца цикла, без синхронизации: это
// осознанный компромисс для диагностических ручек. Ответ может быть
// снят посреди хода (рваный снимок), на консистентность здесь никто
// не опирается. В командный канал такие запросы не ходят, чтобы не
// тратить ходы симуляции на отладку.
type DebugHandler struct {
	Service *engine.Service
}

func NewDebugHandler(s *engine.Service) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(r chi.Router) {
	r.Get("/debug/state", h.handleState)
	r.Get("/debug/entities", h.handleEntities)
	r.Get("/debug/fov", h.handleFov)
}

// /debug/state - размеры мира, номер хода, количество подписчиков
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	sim := h.Service.Sim
	g := sim.Grid()

	writeJSON(w, map[string]interface{}{
		"width":       g.Width,
		"height":      g.Height,
		"depth":       g.Depth,
		"turn":        sim.Turn(),
		"entities":    len(sim.Entities()),
		"subscribers": h.Service.Hub.SubscriberCount(),
	})
}

// /debug/entities - дамп всех сущностей, включая невидимые
func (h *DebugHandler) handleEntities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Sim.Entities())
}

// /debug/fov?x=45&y=30 - видимость конкретной клетки в последнем пересчете
func (h *DebugHandler) handleFov(w http.ResponseWriter, r *http.Request) {
	sim := h.Service.Sim

	x, errX := strconv.Atoi(r.URL.Query().Get("x"))
	y, errY := strconv.Atoi(r.URL.Query().Get("y"))
	if errX != nil || errY != nil {
		http.Error(w, "x and y query params are required", http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]interface{}{
		"x":         x,
		"y":         y,
		"visible":   sim.IsInFov(x, y),
		"viewpoint": sim.Viewpoint().Pos,
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Debug("debug write failed")
	}
}
