package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/ginext"
)

type StreamHub interface {
	Serve(ctx context.Context, userID string, conn *websocket.Conn)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// мобильный клиент и дашборд ходят с других origin
	CheckOrigin: func(*http.Request) bool { return true },
}

// Stream upgrades to a websocket and pushes the caller's notifications until either side closes.
func (h *Handler) Stream(c *ginext.Context) {
	userID := actor(c).ID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		c.Set("error", err.Error())
		return
	}

	h.hub.Serve(c.Request.Context(), userID, conn)
}
