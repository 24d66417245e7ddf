package handlers

import (
	"net/http"

	"watchparty/internal/models"
	"watchparty/internal/service"
)

// roomPayload is the wire shape of a room, both on creation and in listings.
type roomPayload struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	StartTimeUTC string `json:"start_time_utc"`
	HostUserID   string `json:"host_user_id"`
}

type roomListResponse struct {
	Rooms []roomPayload `json:"rooms"`
}

// RoomHandler serves the /rooms endpoints.
type RoomHandler struct {
	svc *service.RoomService
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(svc *service.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

// List handles GET /rooms.
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.svc.ListRooms(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list rooms")
		return
	}

	payload := make([]roomPayload, 0, len(rooms))
	for _, room := range rooms {
		payload = append(payload, roomPayload{
			ID:           room.ID,
			Title:        room.Title,
			StartTimeUTC: room.StartTimeUTC,
			HostUserID:   room.HostUserID,
		})
	}
	respondJSON(w, http.StatusOK, roomListResponse{Rooms: payload})
}

// Create handles POST /rooms.
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body roomPayload
	if !decodeJSON(w, r, &body) {
		return
	}
	if normalizeID(body.Title) == "" || normalizeID(body.StartTimeUTC) == "" || normalizeID(body.HostUserID) == "" {
		respondError(w, http.StatusBadRequest, "title, start_time_utc, and host_user_id are required")
		return
	}

	room, err := h.svc.CreateRoom(r.Context(), &models.Room{
		ID:           normalizeID(body.ID),
		Title:        body.Title,
		StartTimeUTC: body.StartTimeUTC,
		HostUserID:   body.HostUserID,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create room")
		return
	}

	respondJSON(w, http.StatusOK, roomPayload{
		ID:           room.ID,
		Title:        room.Title,
		StartTimeUTC: room.StartTimeUTC,
		HostUserID:   room.HostUserID,
	})
}
