package models

// Room represents a scheduled viewing session.
// Rooms are immutable after creation: title, start time, and host never change.
type Room struct {
	// ID is the unique identifier for the room.
	// Client-supplied; generated (UUID) when omitted.
	ID string

	// Title is the human-readable name for the session.
	Title string

	// StartTimeUTC is the scheduled start time as a UTC timestamp string.
	// Stored and echoed as-is; the service does not reinterpret it.
	StartTimeUTC string

	// HostUserID is the participant who created the room.
	HostUserID string
}
