// internal/debug/ws.go
package debug

import (
	"net/http"
	"time"

	"corridor-defense/internal/app"
	"corridor-defense/pkg/logger"

	"github.com/gorilla/websocket"
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

// /debug/ws - поток снимков, по одному на тик
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	updates, unsubscribe := h.Hub.Subscribe()
	latest, ok := h.Hub.Latest()

	go readPump(conn, unsubscribe)
	writePump(conn, updates, latest, ok)
}

// readPump нужен только для control-фреймов и обнаружения закрытия.
func readPump(conn *websocket.Conn, unsubscribe func()) {
	defer unsubscribe()

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Debug("debug stream closed")
			}
			return
		}
	}
}

// writePump отправляет снимки клиенту + Ping
func writePump(conn *websocket.Conn, updates <-chan app.Snapshot, first app.Snapshot, hasFirst bool) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	if hasFirst {
		if err := writeSnapshot(conn, first); err != nil {
			return
		}
	}

	for {
		select {
		case snapshot, ok := <-updates:
			if !ok {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := writeSnapshot(conn, snapshot); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}

func writeSnapshot(conn *websocket.Conn, snapshot app.Snapshot) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set write deadline")
	}
	if err := conn.WriteJSON(snapshot); err != nil {
		logger.Log.WithError(err).Debug("write json message failed")
		return err
	}
	return nil
}
