package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"watchparty/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "watchparty-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSQLiteStore_Rooms(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateRoom generates ID when omitted", func(t *testing.T) {
		room := &models.Room{
			Title:        "Friday Movie Night",
			StartTimeUTC: "2026-09-04T20:00:00Z",
			HostUserID:   "alice",
		}
		if err := store.CreateRoom(ctx, room); err != nil {
			t.Fatalf("CreateRoom failed: %v", err)
		}
		if room.ID == "" {
			t.Error("Expected room ID to be generated")
		}
	})

	t.Run("ListRooms orders by start time descending", func(t *testing.T) {
		early := &models.Room{ID: "room-early", Title: "Early", StartTimeUTC: "2026-09-01T18:00:00Z", HostUserID: "bob"}
		late := &models.Room{ID: "room-late", Title: "Late", StartTimeUTC: "2026-09-10T18:00:00Z", HostUserID: "bob"}
		for _, r := range []*models.Room{early, late} {
			if err := store.CreateRoom(ctx, r); err != nil {
				t.Fatalf("CreateRoom failed: %v", err)
			}
		}

		rooms, err := store.ListRooms(ctx)
		if err != nil {
			t.Fatalf("ListRooms failed: %v", err)
		}
		if rooms[0].ID != "room-late" {
			t.Errorf("expected room-late first, got %s", rooms[0].ID)
		}
	})
}

func TestSQLiteStore_Expenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	room := &models.Room{ID: "r1", Title: "Room", StartTimeUTC: "2026-09-05T20:00:00Z", HostUserID: "u1"}
	if err := store.CreateRoom(ctx, room); err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}

	expenses := []*models.Expense{
		{ID: "e1", RoomID: "r1", UserID: "u1", Amount: 12.50, Note: "pizza", Weight: 1.0},
		{ID: "e2", RoomID: "r1", UserID: "u2", Amount: 7.25, Note: "drinks", Weight: 2.0},
	}
	for _, e := range expenses {
		if err := store.CreateExpense(ctx, e); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
	}

	t.Run("ListExpenses returns full rows ordered by ID", func(t *testing.T) {
		got, err := store.ListExpenses(ctx, "r1")
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 expenses, got %d", len(got))
		}
		if got[0].ID != "e1" || got[1].ID != "e2" {
			t.Errorf("expenses out of order: %s, %s", got[0].ID, got[1].ID)
		}
		if got[0].Note != "pizza" || got[0].Amount != 12.50 || got[0].Weight != 1.0 {
			t.Errorf("expense e1 round-trip mismatch: %+v", got[0])
		}
	})

	t.Run("ListExpenseEntries returns calculator snapshot", func(t *testing.T) {
		entries, err := store.ListExpenseEntries(ctx, "r1")
		if err != nil {
			t.Fatalf("ListExpenseEntries failed: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
	})

	t.Run("unknown room yields empty result", func(t *testing.T) {
		got, err := store.ListExpenses(ctx, "nope")
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no expenses, got %d", len(got))
		}
	})
}

func TestSQLiteStore_Candidates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry := &models.CatalogEntry{ContentID: "c1", Title: "Blade Runner", Type: "movie", DurationMin: 117, Tags: "scifi,classic"}
	if err := store.AddCatalogEntry(ctx, entry); err != nil {
		t.Fatalf("AddCatalogEntry failed: %v", err)
	}
	if err := store.AddCandidate(ctx, &models.Candidate{RoomID: "r1", ContentID: "c1"}); err != nil {
		t.Fatalf("AddCandidate failed: %v", err)
	}

	candidates, err := store.ListCandidates(ctx, "r1")
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	got := candidates[0]
	if got.Title != "Blade Runner" || got.DurationMin != 117 || got.Tags != "scifi,classic" {
		t.Errorf("candidate join mismatch: %+v", got)
	}
}

func TestSQLiteStore_VoteUpsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	vote := func(content string) *models.Vote {
		return &models.Vote{RoomID: "r1", ContentID: content, UserID: "u1"}
	}

	if err := store.UpsertVote(ctx, vote("c1")); err != nil {
		t.Fatalf("UpsertVote failed: %v", err)
	}
	if err := store.UpsertVote(ctx, vote("c2")); err != nil {
		t.Fatalf("UpsertVote failed: %v", err)
	}

	votes, err := store.ListVotes(ctx, "r1")
	if err != nil {
		t.Fatalf("ListVotes failed: %v", err)
	}
	if len(votes) != 1 {
		t.Fatalf("expected exactly 1 vote after replace, got %d", len(votes))
	}
	if votes[0].ContentID != "c2" {
		t.Errorf("vote content = %s, want c2 (latest wins)", votes[0].ContentID)
	}

	// A different voter in the same room keeps their own row.
	other := &models.Vote{RoomID: "r1", ContentID: "c1", UserID: "u2"}
	if err := store.UpsertVote(ctx, other); err != nil {
		t.Fatalf("UpsertVote failed: %v", err)
	}
	votes, err = store.ListVotes(ctx, "r1")
	if err != nil {
		t.Fatalf("ListVotes failed: %v", err)
	}
	if len(votes) != 2 {
		t.Errorf("expected 2 votes (one per voter), got %d", len(votes))
	}
}
