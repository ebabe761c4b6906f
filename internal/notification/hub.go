package notification

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/metrics"
	"github.com/wb-go/wbf/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 512
	sendBuffer     = 32
)

// Message is the frame written to websocket clients.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type client struct {
	id     string
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

// Hub keeps the live websocket sessions of every connected user and pushes
// notifications to them. A user may hold several sessions.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]struct{}
	logger  logger.Logger
}

func NewHub(logger logger.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		logger:  logger,
	}
}

// Serve registers conn for userID and blocks until the connection closes.
func (h *Hub) Serve(ctx context.Context, userID string, conn *websocket.Conn) {
	c := &client{
		id:     uuid.New().String(),
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
	}
	h.register(c)

	go h.writePump(c)
	h.readPump(ctx, c)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c.userID]; !ok {
		h.clients[c.userID] = make(map[*client]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
	total := len(h.clients[c.userID])
	h.mu.Unlock()

	h.logger.Debug("ws connected",
		logger.String("user_id", c.userID),
		logger.String("client_id", c.id),
		logger.Int("sessions", total),
	)
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if conns, ok := h.clients[c.userID]; ok {
		if _, ok := conns[c]; ok {
			delete(conns, c)
			close(c.send)
		}
		if len(conns) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()

	h.logger.Debug("ws disconnected",
		logger.String("user_id", c.userID),
		logger.String("client_id", c.id),
	)
}

// Sessions reports how many live sessions userID has.
func (h *Hub) Sessions(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) Push(_ context.Context, user *domain.User, n *domain.Notification) {
	data, err := json.Marshal(Message{Type: "notification", Data: n})
	if err != nil {
		h.logger.Error("failed to marshal ws message",
			logger.String("user_id", user.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[user.ID] {
		select {
		case c.send <- data:
			metrics.NotificationsDelivered.WithLabelValues("ws", "ok").Inc()
		default:
			metrics.NotificationsDelivered.WithLabelValues("ws", "dropped").Inc()
			h.logger.Warn("ws send buffer full",
				logger.String("user_id", user.ID),
				logger.String("client_id", c.id),
			)
		}
	}
}

// Close drops every session.
func (h *Hub) Close() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conns := range h.clients {
		for c := range conns {
			_ = c.conn.Close()
		}
	}
}

func (h *Hub) readPump(ctx context.Context, c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if ctx.Err() != nil {
			return
		}
		// Клиент ничего не присылает, чтение нужно только для pong и закрытия
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("ws read error",
					logger.String("client_id", c.id),
					logger.String("error", err.Error()),
				)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
