package models

// Vote records a participant's current choice in a room.
// At most one vote exists per (room, voter) pair; a new vote from the same
// voter replaces the previous one atomically (upsert in the storage layer).
type Vote struct {
	RoomID    string
	ContentID string
	UserID    string
}
