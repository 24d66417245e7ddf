// Package service implements the application services invoked by the HTTP
// layer: rooms, expenses/balances, and votes/tallies. Services hold no state
// beyond their storage backend; derived values are recomputed per call.
package service

import (
	"context"
	"log/slog"

	"watchparty/internal/models"
	"watchparty/internal/storage"
)

// RoomService manages viewing-session rooms.
type RoomService struct {
	store storage.Store
}

// NewRoomService creates a new RoomService with the given storage backend.
func NewRoomService(store storage.Store) *RoomService {
	return &RoomService{store: store}
}

// CreateRoom persists a new room and echoes it back.
func (s *RoomService) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	if err := s.store.CreateRoom(ctx, room); err != nil {
		slog.Error("CreateRoom failed", "room_id", room.ID, "error", err)
		return nil, err
	}
	slog.Info("Room created", "room_id", room.ID, "host_user_id", room.HostUserID)
	return room, nil
}

// ListRooms returns all rooms, newest scheduled start first.
func (s *RoomService) ListRooms(ctx context.Context) ([]*models.Room, error) {
	rooms, err := s.store.ListRooms(ctx)
	if err != nil {
		slog.Error("ListRooms failed", "error", err)
		return nil, err
	}
	return rooms, nil
}
