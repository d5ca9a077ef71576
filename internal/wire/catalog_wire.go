package wire

import (
	"cinema-tickets/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGenre(r chi.Router, h *adaptor.GenreHandler) {
	r.Route("/api/genres", func(r chi.Router) {
		r.Get("/", h.GetGenres)
		r.Post("/", h.CreateGenre)
		r.Get("/{id}", h.GetGenreByID)
		r.Put("/{id}", h.UpdateGenre)
		r.Delete("/{id}", h.DeleteGenre)
	})
}

func wireActor(r chi.Router, h *adaptor.ActorHandler) {
	r.Route("/api/actors", func(r chi.Router) {
		r.Get("/", h.GetActors)
		r.Post("/", h.CreateActor)
		r.Get("/{id}", h.GetActorByID)
		r.Put("/{id}", h.UpdateActor)
		r.Delete("/{id}", h.DeleteActor)
	})
}

func wireHall(r chi.Router, h *adaptor.HallHandler) {
	r.Route("/api/cinema_halls", func(r chi.Router) {
		r.Get("/", h.GetHalls)
		r.Post("/", h.CreateHall)
		r.Get("/{id}", h.GetHallByID)
		r.Put("/{id}", h.UpdateHall)
		r.Delete("/{id}", h.DeleteHall)
	})
}
