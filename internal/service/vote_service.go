package service

import (
	"context"
	"log/slog"

	"watchparty/internal/calculator"
	"watchparty/internal/models"
	"watchparty/internal/storage"
)

// VoteService manages per-room content voting.
type VoteService struct {
	store storage.Store
}

// NewVoteService creates a new VoteService with the given storage backend.
func NewVoteService(store storage.Store) *VoteService {
	return &VoteService{store: store}
}

// RecordVote records a participant's choice, replacing any prior vote by the
// same voter in the same room. Atomicity comes from the store's upsert.
//
// The candidate is not checked against the room's candidate list: a vote for
// unregistered content is accepted and simply never shows up in the candidate
// listing.
func (s *VoteService) RecordVote(ctx context.Context, vote *models.Vote) (*models.Vote, error) {
	if err := s.store.UpsertVote(ctx, vote); err != nil {
		slog.Error("RecordVote failed", "room_id", vote.RoomID, "user_id", vote.UserID, "error", err)
		return nil, err
	}
	slog.Info("Vote recorded",
		"room_id", vote.RoomID,
		"content_id", vote.ContentID,
		"user_id", vote.UserID,
	)
	return vote, nil
}

// ListCandidates returns a room's voting candidates with catalog metadata.
func (s *VoteService) ListCandidates(ctx context.Context, roomID string) ([]*models.CatalogEntry, error) {
	candidates, err := s.store.ListCandidates(ctx, roomID)
	if err != nil {
		slog.Error("ListCandidates failed", "room_id", roomID, "error", err)
		return nil, err
	}
	return candidates, nil
}

// Tally reads the room's current vote snapshot and counts votes per candidate,
// ordered by count descending.
func (s *VoteService) Tally(ctx context.Context, roomID string) ([]calculator.TallyEntry, error) {
	votes, err := s.store.ListVotes(ctx, roomID)
	if err != nil {
		slog.Error("Tally failed to read votes", "room_id", roomID, "error", err)
		return nil, err
	}
	tally := calculator.TallyVotes(votes)
	slog.Debug("Tally computed", "room_id", roomID, "candidates", len(tally))
	return tally, nil
}
