package service

import (
	"context"
	"log/slog"

	"watchparty/internal/calculator"
	"watchparty/internal/models"
	"watchparty/internal/storage"
)

// ExpenseService manages a room's shared expense pool and derives settlement
// balances from it.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// AddExpense persists a new expense and echoes the normalized record.
// Weight defaulting is a wire concern; by this point the expense carries its
// final weight, zero included.
func (s *ExpenseService) AddExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "room_id", expense.RoomID, "error", err)
		return nil, err
	}
	slog.Info("Expense added",
		"expense_id", expense.ID,
		"room_id", expense.RoomID,
		"user_id", expense.UserID,
		"amount", expense.Amount,
	)
	return expense, nil
}

// ListExpenses returns a room's stored expenses.
func (s *ExpenseService) ListExpenses(ctx context.Context, roomID string) ([]*models.Expense, error) {
	expenses, err := s.store.ListExpenses(ctx, roomID)
	if err != nil {
		slog.Error("ListExpenses failed", "room_id", roomID, "error", err)
		return nil, err
	}
	return expenses, nil
}

// ComputeBalances reads the room's full expense snapshot and hands it to the
// balance calculator. The snapshot read either succeeds entirely or fails
// before any aggregation happens.
func (s *ExpenseService) ComputeBalances(ctx context.Context, roomID string) ([]calculator.Balance, error) {
	entries, err := s.store.ListExpenseEntries(ctx, roomID)
	if err != nil {
		slog.Error("ComputeBalances failed to read expenses", "room_id", roomID, "error", err)
		return nil, err
	}
	balances := calculator.ComputeBalances(entries)
	slog.Debug("Balances computed", "room_id", roomID, "participants", len(balances))
	return balances, nil
}
