package wire

import (
	"cinema-tickets/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSession(r chi.Router, h *adaptor.SessionHandler) {
	r.Route("/api/movie_sessions", func(r chi.Router) {
		r.Get("/", h.GetSessions)
		r.Post("/", h.CreateSession)
		r.Get("/{id}", h.GetSessionByID)
		r.Put("/{id}", h.UpdateSession)
		r.Delete("/{id}", h.DeleteSession)
	})
}
