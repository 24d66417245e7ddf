package calculator

import (
	"sort"

	"watchparty/internal/models"
)

// TallyEntry represents the vote count for one candidate.
type TallyEntry struct {
	ContentID string
	Votes     int
}

// TallyVotes counts votes per candidate from a room's current vote snapshot,
// ordered by vote count descending. The relative order of tied candidates is
// unspecified. An empty snapshot yields an empty result.
//
// The one-vote-per-voter invariant is enforced by the storage layer's upsert;
// this function simply counts whatever rows it is handed.
func TallyVotes(votes []models.Vote) []TallyEntry {
	if len(votes) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, v := range votes {
		counts[v.ContentID]++
	}

	tally := make([]TallyEntry, 0, len(counts))
	for contentID, n := range counts {
		tally = append(tally, TallyEntry{ContentID: contentID, Votes: n})
	}
	sort.Slice(tally, func(i, j int) bool {
		return tally[i].Votes > tally[j].Votes
	})
	return tally
}
