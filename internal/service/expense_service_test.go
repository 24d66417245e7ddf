package service

import (
	"context"
	"math"
	"testing"

	"watchparty/internal/models"
)

func TestExpenseService_AddGeneratesID(t *testing.T) {
	svc := NewExpenseService(newTestStore(t))
	ctx := context.Background()

	expense := &models.Expense{RoomID: "r1", UserID: "u1", Amount: 10.0, Note: "snacks", Weight: 1.0}
	echoed, err := svc.AddExpense(ctx, expense)
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if echoed.ID == "" {
		t.Error("expected expense ID to be generated")
	}
}

func TestExpenseService_ComputeBalances(t *testing.T) {
	svc := NewExpenseService(newTestStore(t))
	ctx := context.Background()

	for _, e := range []*models.Expense{
		{ID: "e1", RoomID: "r1", UserID: "u1", Amount: 90.0, Note: "tickets", Weight: 1.0},
		{ID: "e2", RoomID: "r1", UserID: "u2", Amount: 0.0, Note: "", Weight: 2.0},
	} {
		if _, err := svc.AddExpense(ctx, e); err != nil {
			t.Fatalf("AddExpense failed: %v", err)
		}
	}

	balances, err := svc.ComputeBalances(ctx, "r1")
	if err != nil {
		t.Fatalf("ComputeBalances failed: %v", err)
	}
	if len(balances) != 2 {
		t.Fatalf("expected 2 balances, got %d", len(balances))
	}

	for _, b := range balances {
		switch b.UserID {
		case "u1":
			if math.Abs(b.Owed-30.0) > 0.01 || math.Abs(b.Net-60.0) > 0.01 {
				t.Errorf("u1 balance = %+v, want owed=30 net=60", b)
			}
		case "u2":
			if math.Abs(b.Owed-60.0) > 0.01 || math.Abs(b.Net+60.0) > 0.01 {
				t.Errorf("u2 balance = %+v, want owed=60 net=-60", b)
			}
		default:
			t.Errorf("unexpected participant %s", b.UserID)
		}
	}
}

func TestExpenseService_BalancesEmptyRoom(t *testing.T) {
	svc := NewExpenseService(newTestStore(t))

	balances, err := svc.ComputeBalances(context.Background(), "empty-room")
	if err != nil {
		t.Fatalf("ComputeBalances failed: %v", err)
	}
	if len(balances) != 0 {
		t.Errorf("expected no balances, got %d", len(balances))
	}
}
