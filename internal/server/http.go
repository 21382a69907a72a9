package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"gridworld/internal/engine"
	"gridworld/internal/version"
	"gridworld/pkg/logger"
)

// Server - тонкая websocket/HTTP-обертка над циклом симуляции.
// Симуляцию ведет ровно один клиент (первый подключившийся);
// остальные получают кадры в режиме зрителя.
type Server struct {
	Service *engine.Service
	Port    string

	mu       sync.Mutex
	driverID string
}

func New(service *engine.Service, port string) *Server {
	return &Server{
		Service: service,
		Port:    port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	r := chi.NewRouter()
	r.Use(enableCORS)

	r.Get("/ws", s.handleWS)
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	debugHandler := NewDebugHandler(s.Service)
	debugHandler.RegisterRoutes(r)

	logger.Log.Infof("Gridworld server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next.ServeHTTP(w, r)
	})
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Log.WithError(err).Debug("health write failed")
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Get()); err != nil {
		logger.Log.WithError(err).Debug("version write failed")
	}
}

// claimDriver пытается сделать клиента ведущим.
// Возвращает true, если место свободно.
func (s *Server) claimDriver(clientID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.driverID == "" {
		s.driverID = clientID
		return true
	}
	return false
}

// releaseDriver освобождает место ведущего при отключении.
func (s *Server) releaseDriver(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.driverID == clientID {
		s.driverID = ""
	}
}
