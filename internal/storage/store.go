// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"watchparty/internal/calculator"
	"watchparty/internal/models"
)

// Store defines the interface for watch-party storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateRoom persists a new room.
	// A missing room.ID is populated by the store.
	CreateRoom(ctx context.Context, room *models.Room) error

	// ListRooms returns all rooms ordered by start time descending.
	ListRooms(ctx context.Context) ([]*models.Room, error)

	// CreateExpense persists a new expense.
	// A missing expense.ID is populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns all expenses for a room ordered by expense ID.
	ListExpenses(ctx context.Context, roomID string) ([]*models.Expense, error)

	// ListExpenseEntries returns the (user, amount, weight) snapshot for a
	// room, the exact input shape of calculator.ComputeBalances.
	ListExpenseEntries(ctx context.Context, roomID string) ([]calculator.Entry, error)

	// AddCatalogEntry persists a catalog entry (seed/admin path).
	AddCatalogEntry(ctx context.Context, entry *models.CatalogEntry) error

	// AddCandidate nominates catalog content for voting in a room.
	AddCandidate(ctx context.Context, candidate *models.Candidate) error

	// ListCandidates returns a room's candidates joined with catalog metadata.
	ListCandidates(ctx context.Context, roomID string) ([]*models.CatalogEntry, error)

	// UpsertVote records a vote, atomically replacing any prior vote by the
	// same voter in the same room. The one-row-per-(room, voter) invariant is
	// guaranteed here, not by callers.
	UpsertVote(ctx context.Context, vote *models.Vote) error

	// ListVotes returns the current vote snapshot for a room.
	ListVotes(ctx context.Context, roomID string) ([]models.Vote, error)

	// Close releases any resources held by the store.
	Close() error
}
