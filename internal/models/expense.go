package models

// Expense represents a single monetary entry in a room's shared pool.
// The same user ID acts as both payer and weight bearer: the amount is what
// they paid, the weight is their proportional share of the room's total pool.
// Expenses are append-only; they are never mutated or deleted.
type Expense struct {
	// ID is the unique identifier for the expense.
	// Client-supplied; generated (UUID) when omitted.
	ID string

	// RoomID is the room this expense belongs to.
	RoomID string

	// UserID is the participant who paid and carries the weight.
	UserID string

	// Amount is the non-negative amount paid.
	Amount float64

	// Note is a free-text description of the expense.
	Note string

	// Weight is the participant's proportional share of the pool.
	// Defaults to 1.0 when the caller omits it.
	Weight float64
}
