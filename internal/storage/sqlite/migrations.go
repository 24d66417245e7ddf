package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// The votes primary key carries the one-active-vote-per-voter invariant:
// UpsertVote relies on ON CONFLICT against it.
const schema = `
CREATE TABLE IF NOT EXISTS rooms (
    room_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    start_at TEXT NOT NULL,
    host_id TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
    expense_id TEXT PRIMARY KEY,
    room_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    amount REAL NOT NULL,
    note TEXT NOT NULL,
    weight REAL NOT NULL,
    FOREIGN KEY (room_id) REFERENCES rooms(room_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS catalog (
    content_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    type TEXT NOT NULL,
    duration_min INTEGER NOT NULL,
    tags TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS candidates (
    room_id TEXT NOT NULL,
    content_id TEXT NOT NULL,
    PRIMARY KEY (room_id, content_id),
    FOREIGN KEY (content_id) REFERENCES catalog(content_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS votes (
    room_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    content_id TEXT NOT NULL,
    PRIMARY KEY (room_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_expenses_room_id ON expenses(room_id);
CREATE INDEX IF NOT EXISTS idx_candidates_room_id ON candidates(room_id);
CREATE INDEX IF NOT EXISTS idx_votes_room_id ON votes(room_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
