package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"banter-backend/internal/handlers"
	"banter-backend/internal/middleware"
)

func New(
	debateHandler *handlers.DebateHandler,
	scoreHandler *handlers.ScoreHandler,
	allowedOrigins string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(allowedOrigins))

	r.Get("/", handlers.Root)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/debate", debateHandler.Debate)
	r.Post("/score", scoreHandler.Score)

	return r
}
