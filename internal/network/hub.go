package network

import (
	"sync"

	"gridworld/pkg/api"
)

// Broadcaster занимается только рассылкой кадров подписчикам.
// Подписчики - websocket-клиенты: один ведет симуляцию, остальные смотрят.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ClientID -> Личный канал
	subscribers map[string]chan api.Frame
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.Frame),
	}
}

// Register создает личный канал для клиента.
func (b *Broadcaster) Register(clientID string) chan api.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал уже был, закрываем старый
	if old, ok := b.subscribers[clientID]; ok {
		close(old)
	}

	ch := make(chan api.Frame, 64)
	b.subscribers[clientID] = ch
	return ch
}

// Unregister удаляет подписчика и закрывает его канал.
func (b *Broadcaster) Unregister(clientID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[clientID]; ok {
		close(ch)
		delete(b.subscribers, clientID)
	}
}

// Broadcast отправляет кадр всем подписчикам.
// Переполненный канал пропускаем: медленный зритель теряет кадры,
// но не тормозит цикл симуляции.
func (b *Broadcaster) Broadcast(frame api.Frame) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- frame:
		default:
		}
	}
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
