package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"watchparty/internal/models"
	"watchparty/internal/service"
)

// expenseRequest is the POST /expenses body. Weight is optional and defaults
// to an equal share of 1.0; an explicit zero is stored as zero.
type expenseRequest struct {
	ExpenseID   string   `json:"expense_id"`
	RoomID      string   `json:"room_id"`
	UserID      string   `json:"user_id"`
	Amount      float64  `json:"amount"`
	Description string   `json:"description"`
	Weight      *float64 `json:"weight"`
}

// expensePayload is the wire shape of a stored expense. Amount and weight are
// echoed as strings, as the persistence layer formats them.
type expensePayload struct {
	ExpenseID string `json:"expense_id"`
	RoomID    string `json:"room_id"`
	UserID    string `json:"user_id"`
	Amount    string `json:"amount"`
	Note      string `json:"note"`
	Weight    string `json:"weight"`
}

// balancePayload is one participant's settlement position, all money fields
// rounded to two decimals at presentation.
type balancePayload struct {
	UserID string `json:"user_id"`
	Paid   string `json:"paid"`
	Owed   string `json:"owed"`
	Net    string `json:"net"`
}

type expenseListResponse struct {
	Expenses []expensePayload `json:"expenses"`
}

type balancesResponse struct {
	Balances []balancePayload `json:"balances"`
}

// ExpenseHandler serves the /expenses endpoints.
type ExpenseHandler struct {
	svc *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(svc *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

// List handles GET /expenses/{roomID}.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	roomID := normalizeID(chi.URLParam(r, "roomID"))

	expenses, err := h.svc.ListExpenses(r.Context(), roomID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list expenses")
		return
	}

	payload := make([]expensePayload, 0, len(expenses))
	for _, e := range expenses {
		payload = append(payload, toExpensePayload(e))
	}
	respondJSON(w, http.StatusOK, expenseListResponse{Expenses: payload})
}

// Balances handles GET /expenses/{roomID}/balances.
func (h *ExpenseHandler) Balances(w http.ResponseWriter, r *http.Request) {
	roomID := normalizeID(chi.URLParam(r, "roomID"))

	balances, err := h.svc.ComputeBalances(r.Context(), roomID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to compute balances")
		return
	}

	payload := make([]balancePayload, 0, len(balances))
	for _, b := range balances {
		payload = append(payload, balancePayload{
			UserID: b.UserID,
			Paid:   formatAmount(b.Paid),
			Owed:   formatAmount(b.Owed),
			Net:    formatAmount(b.Net),
		})
	}
	respondJSON(w, http.StatusOK, balancesResponse{Balances: payload})
}

// Create handles POST /expenses.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body expenseRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if normalizeID(body.RoomID) == "" || normalizeID(body.UserID) == "" {
		respondError(w, http.StatusBadRequest, "room_id and user_id are required")
		return
	}
	if body.Amount < 0 {
		respondError(w, http.StatusBadRequest, "amount must be non-negative")
		return
	}
	weight := 1.0
	if body.Weight != nil {
		weight = *body.Weight
	}
	if weight < 0 {
		respondError(w, http.StatusBadRequest, "weight must not be negative")
		return
	}

	expense, err := h.svc.AddExpense(r.Context(), &models.Expense{
		ID:     normalizeID(body.ExpenseID),
		RoomID: normalizeID(body.RoomID),
		UserID: normalizeID(body.UserID),
		Amount: body.Amount,
		Note:   body.Description,
		Weight: weight,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to add expense")
		return
	}

	respondJSON(w, http.StatusOK, toExpensePayload(expense))
}

func toExpensePayload(e *models.Expense) expensePayload {
	return expensePayload{
		ExpenseID: e.ID,
		RoomID:    e.RoomID,
		UserID:    e.UserID,
		Amount:    formatNumber(e.Amount),
		Note:      e.Note,
		Weight:    formatNumber(e.Weight),
	}
}
