// Package handlers contains the HTTP and websocket handlers for the
// watch-party API.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// errorResponse is the wire shape of error replies.
type errorResponse struct {
	Message string `json:"message"`
}

// respondJSON writes a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// respondError writes a JSON error reply.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Message: msg})
}

// decodeJSON decodes the request body into dst. On failure it writes a 400
// response and returns false. Bodies are capped at 1MB. Unknown fields are
// ignored so clients may send extras without breaking.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return false
	}
	return true
}

// normalizeID trims surrounding whitespace from an identifier.
func normalizeID(id string) string {
	return strings.TrimSpace(id)
}

// formatAmount renders a monetary value with exactly two decimal places.
// Rounding happens here, at presentation, never during accumulation.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatNumber renders a float the shortest way that round-trips, matching
// how stored amounts and weights are echoed back.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
