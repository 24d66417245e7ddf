package models

// CatalogEntry represents a piece of watchable content.
type CatalogEntry struct {
	// ContentID is the unique identifier for the content.
	ContentID string

	// Title is the display title.
	Title string

	// Type is the content kind (e.g., "movie", "series").
	Type string

	// DurationMin is the runtime in minutes.
	DurationMin int

	// Tags is a free-form comma-separated tag string.
	Tags string
}

// Candidate is a catalog entry nominated for voting in a specific room.
// Candidates are read-only in request scope; they are seeded out of band.
type Candidate struct {
	RoomID    string
	ContentID string
}
