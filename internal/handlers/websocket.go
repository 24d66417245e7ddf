package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"watchparty/internal/hub"
	"watchparty/internal/metrics"
)

// wsConn serializes writes to a gorilla connection, which does not support
// concurrent writers. Broadcasts for different reader goroutines may target
// the same connection at once.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// WebSocketHandler upgrades per-room, per-participant connections and relays
// inbound frames through the hub.
type WebSocketHandler struct {
	hub      *hub.Hub
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a WebSocketHandler over the given hub.
func NewWebSocketHandler(h *hub.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: h,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve handles GET /ws/{roomID}/{userID}.
//
// On connect the participant joins the room's registry; each inbound text
// frame is parsed as a JSON event and relayed to the other connected
// participants. Malformed frames are dropped without surfacing an error to
// the sender. On disconnect the participant is removed from the registry.
func (h *WebSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	roomID := normalizeID(chi.URLParam(r, "roomID"))
	userID := normalizeID(chi.URLParam(r, "userID"))
	if roomID == "" || userID == "" {
		respondError(w, http.StatusBadRequest, "room and user are required")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "room_id", roomID, "error", err)
		return
	}

	h.hub.Join(roomID, userID, &wsConn{conn: conn})
	metrics.WSConnections.Inc()
	defer func() {
		h.hub.Leave(roomID, userID)
		metrics.WSConnections.Dec()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				slog.Warn("WebSocket read error", "room_id", roomID, "user_id", userID, "error", err)
			}
			return
		}

		var event hub.Event
		if err := json.Unmarshal(data, &event); err != nil {
			// Malformed frame: drop silently, keep the connection.
			continue
		}

		h.hub.Broadcast(roomID, userID, event)
	}
}
