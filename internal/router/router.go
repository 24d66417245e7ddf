// Package router wires the HTTP surface: REST endpoints, the websocket
// entrypoint, the liveness probe, and metrics exposition.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"watchparty/internal/handlers"
	"watchparty/internal/metrics"
	"watchparty/internal/middleware"
)

// Handlers bundles the per-area handlers the router mounts.
type Handlers struct {
	Rooms    *handlers.RoomHandler
	Expenses *handlers.ExpenseHandler
	Votes    *handlers.VoteHandler
	WS       *handlers.WebSocketHandler
}

// New builds the service router.
func New(h Handlers, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Recoverer)
	r.Use(middleware.Logging)
	r.Use(metrics.Middleware)

	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", handlers.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", h.Rooms.List)
		r.Post("/", h.Rooms.Create)
	})

	r.Route("/expenses", func(r chi.Router) {
		r.Post("/", h.Expenses.Create)
		r.Get("/{roomID}", h.Expenses.List)
		r.Get("/{roomID}/balances", h.Expenses.Balances)
	})

	r.Route("/votes", func(r chi.Router) {
		r.Post("/", h.Votes.Record)
		r.Get("/{roomID}/candidates", h.Votes.Candidates)
		r.Get("/{roomID}/tally", h.Votes.Tally)
	})

	r.Get("/ws/{roomID}/{userID}", h.WS.Serve)

	return r
}
