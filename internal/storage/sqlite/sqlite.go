// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"watchparty/internal/calculator"
	"watchparty/internal/models"
	"watchparty/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateRoom persists a new room.
func (s *SQLiteStore) CreateRoom(ctx context.Context, room *models.Room) error {
	if room.ID == "" {
		room.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO rooms (room_id, title, start_at, host_id) VALUES (?, ?, ?, ?)",
		room.ID, room.Title, room.StartTimeUTC, room.HostUserID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert room: %w", err)
	}
	return nil
}

// ListRooms returns all rooms, newest scheduled start first.
func (s *SQLiteStore) ListRooms(ctx context.Context) ([]*models.Room, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT room_id, title, start_at, host_id FROM rooms ORDER BY start_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		room := &models.Room{}
		if err := rows.Scan(&room.ID, &room.Title, &room.StartTimeUTC, &room.HostUserID); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rooms: %w", err)
	}
	return rooms, nil
}

// CreateExpense persists a new expense.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO expenses (expense_id, room_id, user_id, amount, note, weight) VALUES (?, ?, ?, ?, ?, ?)",
		expense.ID, expense.RoomID, expense.UserID, expense.Amount, expense.Note, expense.Weight,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// ListExpenses returns all expenses for a room ordered by expense ID.
func (s *SQLiteStore) ListExpenses(ctx context.Context, roomID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT expense_id, room_id, user_id, amount, note, weight FROM expenses WHERE room_id = ? ORDER BY expense_id",
		roomID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		if err := rows.Scan(&expense.ID, &expense.RoomID, &expense.UserID,
			&expense.Amount, &expense.Note, &expense.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

// ListExpenseEntries returns the (user, amount, weight) snapshot consumed by
// the balance calculator. The snapshot is read in one query so the calculator
// never sees partial data.
func (s *SQLiteStore) ListExpenseEntries(ctx context.Context, roomID string) ([]calculator.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id, amount, weight FROM expenses WHERE room_id = ?",
		roomID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense entries: %w", err)
	}
	defer rows.Close()

	var entries []calculator.Entry
	for rows.Next() {
		var e calculator.Entry
		if err := rows.Scan(&e.UserID, &e.Amount, &e.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan expense entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense entries: %w", err)
	}
	return entries, nil
}

// AddCatalogEntry persists a catalog entry.
func (s *SQLiteStore) AddCatalogEntry(ctx context.Context, entry *models.CatalogEntry) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO catalog (content_id, title, type, duration_min, tags) VALUES (?, ?, ?, ?, ?)",
		entry.ContentID, entry.Title, entry.Type, entry.DurationMin, entry.Tags,
	)
	if err != nil {
		return fmt.Errorf("failed to insert catalog entry: %w", err)
	}
	return nil
}

// AddCandidate nominates catalog content for voting in a room.
func (s *SQLiteStore) AddCandidate(ctx context.Context, candidate *models.Candidate) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO candidates (room_id, content_id) VALUES (?, ?)",
		candidate.RoomID, candidate.ContentID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert candidate: %w", err)
	}
	return nil
}

// ListCandidates returns a room's candidates joined with catalog metadata.
func (s *SQLiteStore) ListCandidates(ctx context.Context, roomID string) ([]*models.CatalogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.content_id, cat.title, cat.type, cat.duration_min, cat.tags
		 FROM candidates c
		 JOIN catalog cat ON c.content_id = cat.content_id
		 WHERE c.room_id = ?`,
		roomID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*models.CatalogEntry
	for rows.Next() {
		entry := &models.CatalogEntry{}
		if err := rows.Scan(&entry.ContentID, &entry.Title, &entry.Type,
			&entry.DurationMin, &entry.Tags); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return candidates, nil
}

// UpsertVote records a vote, replacing any prior vote by the same voter in the
// same room. The conflict target is the votes primary key (room_id, user_id),
// so the replace is a single atomic statement rather than delete-then-insert.
func (s *SQLiteStore) UpsertVote(ctx context.Context, vote *models.Vote) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO votes (room_id, user_id, content_id) VALUES (?, ?, ?)
		 ON CONFLICT(room_id, user_id) DO UPDATE SET content_id = excluded.content_id`,
		vote.RoomID, vote.UserID, vote.ContentID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert vote: %w", err)
	}
	return nil
}

// ListVotes returns the current vote snapshot for a room.
func (s *SQLiteStore) ListVotes(ctx context.Context, roomID string) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT room_id, content_id, user_id FROM votes WHERE room_id = ?",
		roomID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	var votes []models.Vote
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.RoomID, &v.ContentID, &v.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate votes: %w", err)
	}
	return votes, nil
}
