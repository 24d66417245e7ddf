package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"watchparty/internal/metrics"
	"watchparty/internal/models"
	"watchparty/internal/service"
)

// votePayload is both the POST /votes body and its echo.
type votePayload struct {
	RoomID    string `json:"room_id"`
	ContentID string `json:"content_id"`
	UserID    string `json:"user_id"`
}

// candidatePayload is a voting candidate joined with catalog metadata.
type candidatePayload struct {
	ContentID   string `json:"content_id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	DurationMin string `json:"duration_min"`
	Tags        string `json:"tags"`
}

// tallyEntryPayload is one candidate's vote count.
type tallyEntryPayload struct {
	ContentID string `json:"content_id"`
	Votes     string `json:"votes"`
}

type candidateListResponse struct {
	Candidates []candidatePayload `json:"candidates"`
}

type tallyResponse struct {
	Tally []tallyEntryPayload `json:"tally"`
}

// VoteHandler serves the /votes endpoints.
type VoteHandler struct {
	svc *service.VoteService
}

// NewVoteHandler creates a new VoteHandler.
func NewVoteHandler(svc *service.VoteService) *VoteHandler {
	return &VoteHandler{svc: svc}
}

// Candidates handles GET /votes/{roomID}/candidates.
func (h *VoteHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	roomID := normalizeID(chi.URLParam(r, "roomID"))

	candidates, err := h.svc.ListCandidates(r.Context(), roomID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list candidates")
		return
	}

	payload := make([]candidatePayload, 0, len(candidates))
	for _, c := range candidates {
		payload = append(payload, candidatePayload{
			ContentID:   c.ContentID,
			Title:       c.Title,
			Type:        c.Type,
			DurationMin: strconv.Itoa(c.DurationMin),
			Tags:        c.Tags,
		})
	}
	respondJSON(w, http.StatusOK, candidateListResponse{Candidates: payload})
}

// Tally handles GET /votes/{roomID}/tally.
func (h *VoteHandler) Tally(w http.ResponseWriter, r *http.Request) {
	roomID := normalizeID(chi.URLParam(r, "roomID"))

	tally, err := h.svc.Tally(r.Context(), roomID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to tally votes")
		return
	}

	payload := make([]tallyEntryPayload, 0, len(tally))
	for _, entry := range tally {
		payload = append(payload, tallyEntryPayload{
			ContentID: entry.ContentID,
			Votes:     strconv.Itoa(entry.Votes),
		})
	}
	respondJSON(w, http.StatusOK, tallyResponse{Tally: payload})
}

// Record handles POST /votes.
func (h *VoteHandler) Record(w http.ResponseWriter, r *http.Request) {
	var body votePayload
	if !decodeJSON(w, r, &body) {
		return
	}
	if normalizeID(body.RoomID) == "" || normalizeID(body.ContentID) == "" || normalizeID(body.UserID) == "" {
		respondError(w, http.StatusBadRequest, "room_id, content_id, and user_id are required")
		return
	}

	vote, err := h.svc.RecordVote(r.Context(), &models.Vote{
		RoomID:    normalizeID(body.RoomID),
		ContentID: normalizeID(body.ContentID),
		UserID:    normalizeID(body.UserID),
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to record vote")
		return
	}
	metrics.VotesRecorded.Inc()

	respondJSON(w, http.StatusOK, votePayload{
		RoomID:    vote.RoomID,
		ContentID: vote.ContentID,
		UserID:    vote.UserID,
	})
}
