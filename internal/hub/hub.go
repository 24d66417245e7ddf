// Package hub implements the per-room realtime registry: which participants
// are connected to which room, with fan-out of relayed events.
//
// The hub is an explicitly owned object injected into the websocket handler;
// there is no package-level registry. Operations on different rooms never
// block one another; operations on the same room are serialized by that
// room's lock.
package hub

import (
	"log/slog"
	"sync"
)

// Conn is the write side of a participant connection. *websocket.Conn
// satisfies it; tests supply fakes.
type Conn interface {
	WriteJSON(v any) error
}

// Event is the wire shape of relayed messages. Inbound frames carry a type
// plus arbitrary fields; the hub forwards them untouched and adds its own
// membership events in the same shape.
type Event map[string]any

// Hub tracks connected participants per room.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]*room
}

type room struct {
	mu      sync.RWMutex
	members map[string]Conn // userID -> connection
}

// New creates an empty hub.
func New() *Hub {
	return &Hub{rooms: make(map[string]*room)}
}

// Join registers a participant's connection in a room and notifies the other
// members. A reconnect with the same user ID replaces the old connection.
//
// The member insert happens while still holding the hub lock: a lookup that
// released it first could race the last Leave's empty-room delete and strand
// the joiner in a room object the hub no longer references.
func (h *Hub) Join(roomID, userID string, conn Conn) {
	h.mu.Lock()
	r, ok := h.rooms[roomID]
	if !ok {
		r = &room{members: make(map[string]Conn)}
		h.rooms[roomID] = r
	}
	r.mu.Lock()
	r.members[userID] = conn
	r.mu.Unlock()
	h.mu.Unlock()

	h.Broadcast(roomID, userID, Event{"type": "user_joined", "user_id": userID})
	slog.Info("Participant joined room", "room_id", roomID, "user_id", userID)
}

// Leave removes a participant from a room's registry and notifies the
// remaining members. Empty rooms are dropped from the hub.
func (h *Hub) Leave(roomID, userID string) {
	h.mu.Lock()
	r, ok := h.rooms[roomID]
	h.mu.Unlock()
	if !ok {
		return
	}

	r.mu.Lock()
	_, present := r.members[userID]
	delete(r.members, userID)
	empty := len(r.members) == 0
	r.mu.Unlock()

	if !present {
		return
	}
	if empty {
		h.mu.Lock()
		// Re-check under the hub lock: someone may have joined meanwhile.
		r.mu.RLock()
		if len(r.members) == 0 {
			delete(h.rooms, roomID)
		}
		r.mu.RUnlock()
		h.mu.Unlock()
	}

	h.Broadcast(roomID, userID, Event{"type": "user_left", "user_id": userID})
	slog.Info("Participant left room", "room_id", roomID, "user_id", userID)
}

// Broadcast sends an event to every member of a room except the sender.
// Write errors are logged and skipped; delivery is best effort.
func (h *Hub) Broadcast(roomID, senderID string, event Event) {
	h.mu.RLock()
	r, ok := h.rooms[roomID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	// Snapshot the recipients so a slow or stalled connection write never
	// holds the room lock and blocks joins and leaves on the same room.
	type recipient struct {
		userID string
		conn   Conn
	}
	r.mu.RLock()
	recipients := make([]recipient, 0, len(r.members))
	for userID, conn := range r.members {
		if userID == senderID {
			continue
		}
		recipients = append(recipients, recipient{userID: userID, conn: conn})
	}
	r.mu.RUnlock()

	for _, rcpt := range recipients {
		if err := rcpt.conn.WriteJSON(event); err != nil {
			slog.Warn("Failed to relay event", "room_id", roomID, "user_id", rcpt.userID, "error", err)
		}
	}
}

// RoomSize reports how many participants are connected to a room.
func (h *Hub) RoomSize(roomID string) int {
	h.mu.RLock()
	r, ok := h.rooms[roomID]
	h.mu.RUnlock()
	if !ok {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}
