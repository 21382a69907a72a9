package engine

import (
	"sync"

	"gridworld/internal/domain"
	"gridworld/internal/network"
	"gridworld/pkg/api"
	"gridworld/pkg/atlas"
	"gridworld/pkg/logger"
)

// Service запускает цикл симуляции в отдельном горутине-владельце и
// связывает его с удаленными коллаборатором ввода (канал команд) и
// дисплеем (Broadcaster). Состояние мира трогает только горутина цикла.
type Service struct {
	Sim *Simulation
	Hub *network.Broadcaster

	commands chan domain.InternalCommand
	done     chan struct{}

	// Защищает закрытие канала команд: клиенты зовут Submit из своих
	// горутин и могут успеть после Stop.
	mu     sync.Mutex
	closed bool
}

func NewService(cfg Config, bp *atlas.Blueprint) (*Service, error) {
	sim, err := NewSimulation(cfg, bp)
	if err != nil {
		return nil, err
	}
	return &Service{
		Sim:      sim,
		Hub:      network.NewBroadcaster(),
		commands: make(chan domain.InternalCommand, 64),
		done:     make(chan struct{}),
	}, nil
}

// Start запускает цикл. Возврат из Run закрывает done.
func (s *Service) Start() {
	go func() {
		defer close(s.done)
		if err := Run(s.Sim, channelSource{s.commands}, hubDisplay{s.Hub}); err != nil {
			logger.Component("service").WithError(err).Error("Simulation loop failed")
		}
	}()
}

// Submit передает команду в цикл, не блокируясь.
// Полный канал означает, что ввод опережает симуляцию - лишнее роняем.
// После Stop команды молча игнорируются: клиент мог прислать ввод в окне
// между сигналом остановки и обрывом соединения.
func (s *Service) Submit(cmd domain.InternalCommand) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		logger.Component("service").WithField("action", cmd.Action.String()).
			Debug("Service stopped, dropping input")
		return
	}

	select {
	case s.commands <- cmd:
	default:
		logger.Component("service").WithField("action", cmd.Action.String()).
			Warn("Command queue full, dropping input")
	}
}

// Stop закрывает источник команд; цикл дорабатывает текущий ход и выходит.
// Повторный Stop - no-op.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.commands)
}

// Done сигнализирует о завершении цикла.
func (s *Service) Done() <-chan struct{} {
	return s.done
}

// channelSource адаптирует канал команд под ActionSource.
type channelSource struct {
	ch chan domain.InternalCommand
}

func (c channelSource) NextCommand() (domain.InternalCommand, bool) {
	cmd, ok := <-c.ch
	return cmd, ok
}

// hubDisplay адаптирует Broadcaster под Display.
// Полноэкранный режим - дело клиента: шлем ему служебный кадр.
type hubDisplay struct {
	hub *network.Broadcaster
}

func (d hubDisplay) Render(frame api.Frame) error {
	d.hub.Broadcast(frame)
	return nil
}

func (d hubDisplay) ToggleFullscreen() {
	d.hub.Broadcast(api.Frame{Type: "FULLSCREEN"})
}
