package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"gridworld/internal/domain"
	"gridworld/pkg/api"
	"gridworld/pkg/logger"
	"gridworld/pkg/utils"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и циклом симуляции.
// Ведущий клиент шлет команды; зрители только получают кадры.
type Client struct {
	Server *Server
	Conn   *websocket.Conn
	Send   chan api.Frame

	// Закрывается на выходе writePump: перекачка кадров не должна
	// зависнуть навсегда на полном Send мертвого клиента.
	done chan struct{}

	ID       string
	IsDriver bool
}

func NewClient(server *Server, conn *websocket.Conn) *Client {
	return &Client{
		Server: server,
		Conn:   conn,
		Send:   make(chan api.Frame, 64),
		done:   make(chan struct{}),
		ID:     utils.GenerateID(),
	}
}

// forwardFrames перекачивает кадры из личного канала хаба в Send.
// Завершается при закрытии канала хаба (Unregister) или при смерти
// writePump (done).
func (c *Client) forwardFrames(frames <-chan api.Frame) {
	defer close(c.Send)
	for frame := range frames {
		select {
		case c.Send <- frame:
		case <-c.done:
			return
		}
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Server.Service.Hub.Unregister(c.ID)
		c.Server.releaseDriver(c.ID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.WithField("client_id", c.ID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. РАСПРЕДЕЛЕНИЕ РОЛЕЙ
	c.IsDriver = c.Server.claimDriver(c.ID)

	// 2. ПОДПИСКА НА КАДРЫ
	gameFrames := c.Server.Service.Hub.Register(c.ID)
	go c.forwardFrames(gameFrames)

	logger.Log.WithFields(logrus.Fields{
		"client_id": c.ID,
		"driver":    c.IsDriver,
	}).Info("Client connected")

	// Триггер первой отрисовки для новоприбывшего
	c.Server.Service.Submit(domain.InternalCommand{Action: domain.ActionInit})

	// 3. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}

		// Зрители не управляют симуляцией
		if !c.IsDriver {
			continue
		}

		c.Server.Service.Submit(domain.InternalCommand{
			Action:  domain.ParseAction(cmd.Action),
			Payload: cmd.Payload,
		})
	}
}

// writePump отправляет кадры клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case frame, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(frame); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
