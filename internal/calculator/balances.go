// Package calculator contains the pure domain math for the watch-party
// service: weighted expense balances and vote tallies. Functions here are
// total over their inputs, perform no I/O, and hold no state.
package calculator

// Entry represents an expense row with the minimal information needed for
// balance calculations.
type Entry struct {
	UserID string
	Amount float64
	Weight float64
}

// Balance represents the settlement position of one room participant.
type Balance struct {
	UserID string
	Paid   float64 // Total amount this person paid
	Owed   float64 // This person's fair share of the pool
	Net    float64 // Paid - Owed; positive = owed money, negative = owes money
}

// ComputeBalances computes each participant's fair share, amount paid, and net
// balance from the full expense set of one room.
//
// Algorithm:
//   - Aggregate weight per user and the grand amount total across all entries.
//   - share_per_weight = total_amount / total_weight
//   - Per user: owed = share_per_weight * user_weight, paid = sum of that
//     user's amounts, net = paid - owed.
//
// Every user appearing in the entries gets exactly one balance record.
// An empty input yields an empty result. A total weight of exactly zero is
// substituted with 1.0 to avoid dividing by zero; the numeric output in that
// degenerate case is defined but not meaningful.
//
// Accumulation uses full float64 precision; rounding to currency precision is
// a presentation concern and happens at the API layer.
func ComputeBalances(entries []Entry) []Balance {
	if len(entries) == 0 {
		return nil
	}

	weightByUser := make(map[string]float64)
	paidByUser := make(map[string]float64)
	var order []string // first-appearance order, for stable output
	var totalAmount float64

	for _, e := range entries {
		if _, seen := weightByUser[e.UserID]; !seen {
			order = append(order, e.UserID)
		}
		weightByUser[e.UserID] += e.Weight
		paidByUser[e.UserID] += e.Amount
		totalAmount += e.Amount
	}

	var totalWeight float64
	for _, w := range weightByUser {
		totalWeight += w
	}
	if totalWeight == 0 {
		totalWeight = 1.0
	}
	sharePerWeight := totalAmount / totalWeight

	balances := make([]Balance, 0, len(order))
	for _, userID := range order {
		owed := sharePerWeight * weightByUser[userID]
		paid := paidByUser[userID]
		balances = append(balances, Balance{
			UserID: userID,
			Paid:   paid,
			Owed:   owed,
			Net:    paid - owed,
		})
	}
	return balances
}
